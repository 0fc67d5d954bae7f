package storage

import (
	"strings"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// Document is a vector plus the opaque metadata bag stored for a profile.
type Document struct {
	ID       string
	Vector   []float32
	Metadata map[string]string
}

// Hit is a single Query result.
type Hit struct {
	ID       string
	Score    float32
	Metadata map[string]string
}

// DocumentFor builds the index document for a profile and its embedding.
func DocumentFor(p *core.Profile, vector []float32) Document {
	return Document{
		ID:       p.EmployeeID,
		Vector:   vector,
		Metadata: p.Metadata(),
	}
}

// ProfileFromMetadata rebuilds the display view of a profile from a metadata
// bag. Skills, courses and certifications carry names only.
func ProfileFromMetadata(md map[string]string) *core.Profile {
	p := &core.Profile{
		EmployeeID: md[core.MetaEmployeeID],
		Name:       md[core.MetaName],
		JobLevel:   md[core.MetaJobLevel],
		Company:    md[core.MetaCompany],
		Email:      md[core.MetaEmail],
	}
	for _, name := range splitList(md[core.MetaSkillsList]) {
		p.Skills = append(p.Skills, core.Skill{Name: name})
	}
	for _, name := range splitList(md[core.MetaCoursesList]) {
		p.Courses = append(p.Courses, core.Course{Name: name})
	}
	for _, name := range splitList(md[core.MetaCertsList]) {
		p.Certifications = append(p.Certifications, core.Certification{Name: name})
	}
	return p
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
