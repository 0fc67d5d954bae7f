package ingestion

import (
	"log/slog"
	"strings"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// BuildProfiles turns raw records into profiles.
//
// Skills with an empty path are dropped and the rest are deduplicated by
// normalized name, keeping the first. Courses and certifications with an
// empty name are dropped. Records without an empID, or repeating one already
// seen, are skipped with a warning.
func BuildProfiles(records []RawRecord) []*core.Profile {
	return buildProfiles(records, slog.Default())
}

func buildProfiles(records []RawRecord, logger *slog.Logger) []*core.Profile {
	profiles := make([]*core.Profile, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, rec := range records {
		emp := rec.Employee
		if emp == nil || strings.TrimSpace(emp.EmpID) == "" {
			logger.Warn("skipping record without empID", "index", i)
			continue
		}
		if _, dup := seen[emp.EmpID]; dup {
			logger.Warn("skipping duplicate empID", "index", i, "empID", emp.EmpID)
			continue
		}
		seen[emp.EmpID] = struct{}{}
		profiles = append(profiles, buildProfile(emp))
	}
	return profiles
}

func buildProfile(emp *RawEmployee) *core.Profile {
	p := &core.Profile{
		EmployeeID: emp.EmpID,
		Name:       emp.Name,
		JobLevel:   emp.JobLevel,
		Company:    emp.Company,
		Email:      emp.MailID,
	}

	names := make(map[string]struct{}, len(emp.Skills))
	for _, s := range emp.Skills {
		key := core.Normalize(s.Skill.Path)
		if key == "" {
			continue
		}
		if _, dup := names[key]; dup {
			continue
		}
		names[key] = struct{}{}
		p.Skills = append(p.Skills, core.Skill{
			Name:             s.Skill.Path,
			Proficiency:      core.ParseProficiency(string(s.Proficiency)),
			IsPrimary:        core.Flag(s.IsPrimary),
			IsCurrent:        core.Flag(s.IsCurrent),
			ExperienceMonths: max(int(s.ExperienceProjectMths), 0),
		})
	}

	for _, c := range emp.Courses {
		if c.Course.CourseName == "" {
			continue
		}
		p.Courses = append(p.Courses, core.Course{
			Name:        c.Course.CourseName,
			CompletedOn: string(c.CompletedOn),
		})
	}

	for _, c := range emp.Certifications {
		if c.Certification.CertificationName == "" {
			continue
		}
		p.Certifications = append(p.Certifications, core.Certification{
			Name:        c.Certification.CertificationName,
			CertifiedOn: string(c.CertifiedOn),
		})
	}

	return p
}
