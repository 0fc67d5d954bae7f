package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a storage identifier for domain entities.
// It is generated using content-based hashing of a natural key.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Proficiency is the self-reported skill level attached to a Skill.
type Proficiency string

const (
	ProficiencyExpert     Proficiency = "EXPERT"
	ProficiencyProficient Proficiency = "PROFICIENT"
	ProficiencyCompetent  Proficiency = "COMPETENT"
	ProficiencyBeginner   Proficiency = "BEGINNER"
	// ProficiencyAbsent is used when the source record carries no level
	// or one we don't recognize.
	ProficiencyAbsent Proficiency = ""
)

// ParseProficiency maps a raw level to a Proficiency, ignoring case.
func ParseProficiency(raw string) Proficiency {
	switch p := Proficiency(strings.ToUpper(strings.TrimSpace(raw))); p {
	case ProficiencyExpert, ProficiencyProficient, ProficiencyCompetent, ProficiencyBeginner:
		return p
	default:
		return ProficiencyAbsent
	}
}

// Rank orders proficiencies from EXPERT (4) down to absent (0).
func (p Proficiency) Rank() int {
	switch p {
	case ProficiencyExpert:
		return 4
	case ProficiencyProficient:
		return 3
	case ProficiencyCompetent:
		return 2
	case ProficiencyBeginner:
		return 1
	default:
		return 0
	}
}

// Flag is a raw "YES"/"NO" marker as it appears in source records.
type Flag string

const (
	FlagYes Flag = "YES"
	FlagNo  Flag = "NO"
)

// IsSet reports whether the flag reads YES. Empty flags are unset.
func (f Flag) IsSet() bool {
	return strings.EqualFold(strings.TrimSpace(string(f)), string(FlagYes))
}

// Skill is a single skill entry on a profile.
type Skill struct {
	Name             string // raw skill path
	Proficiency      Proficiency
	IsPrimary        Flag
	IsCurrent        Flag
	ExperienceMonths int
}

// Course is a completed training course.
type Course struct {
	Name        string
	CompletedOn string // opaque, never parsed
}

// Certification is an earned certification. Certifications are carried on the
// profile and into the embedded summary but are never matched symbolically.
type Certification struct {
	Name        string
	CertifiedOn string
}

// Profile is the normalized record for one employee.
// No two skills share a normalized name.
type Profile struct {
	EmployeeID     string
	Name           string
	JobLevel       string
	Company        string
	Email          string
	Skills         []Skill
	Courses        []Course
	Certifications []Certification
}

// StorageID returns the content-derived key used to persist the profile.
func (p *Profile) StorageID() ID {
	return IDFromContent(p.EmployeeID)
}

// SkillNames returns the raw skill names in profile order.
func (p *Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

// CourseNames returns the course names in profile order.
func (p *Profile) CourseNames() []string {
	names := make([]string, 0, len(p.Courses))
	for _, c := range p.Courses {
		names = append(names, c.Name)
	}
	return names
}

// CertificationNames returns the certification names in profile order.
func (p *Profile) CertificationNames() []string {
	names := make([]string, 0, len(p.Certifications))
	for _, c := range p.Certifications {
		names = append(names, c.Name)
	}
	return names
}

// Summary renders the text that gets embedded for the profile.
func (p *Profile) Summary() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(" (ID: ")
	b.WriteString(p.EmployeeID)
	b.WriteString(") is at Job Level ")
	b.WriteString(p.JobLevel)
	b.WriteString(" in ")
	b.WriteString(p.Company)
	b.WriteString(". Skills: ")
	b.WriteString(strings.Join(p.SkillNames(), ", "))
	b.WriteString(". Courses: ")
	b.WriteString(strings.Join(p.CourseNames(), ", "))
	b.WriteString(". Certifications: ")
	b.WriteString(strings.Join(p.CertificationNames(), ", "))
	b.WriteString(".")
	return b.String()
}

// Metadata keys stored alongside a profile's vector.
const (
	MetaEmployeeID     = "empID"
	MetaName           = "name"
	MetaJobLevel       = "jobLevel"
	MetaCompany        = "company"
	MetaEmail          = "mailID"
	MetaSkills         = "skills"
	MetaSkillsList     = "skills_list"
	MetaCourses        = "courses"
	MetaCoursesList    = "courses_list"
	MetaCertifications = "certifications"
	MetaCertsList      = "certs_list"
)

// Metadata renders the opaque bag stored next to the profile's vector.
// The *_list keys are semicolon-joined, the plain keys comma-joined.
func (p *Profile) Metadata() map[string]string {
	skills := p.SkillNames()
	courses := p.CourseNames()
	certs := p.CertificationNames()
	return map[string]string{
		MetaEmployeeID:     p.EmployeeID,
		MetaName:           p.Name,
		MetaJobLevel:       p.JobLevel,
		MetaCompany:        p.Company,
		MetaEmail:          p.Email,
		MetaSkills:         strings.Join(skills, ", "),
		MetaSkillsList:     strings.Join(skills, ";"),
		MetaCourses:        strings.Join(courses, ", "),
		MetaCoursesList:    strings.Join(courses, ";"),
		MetaCertifications: strings.Join(certs, ", "),
		MetaCertsList:      strings.Join(certs, ";"),
	}
}

// MatchType names the tier that produced a Match.
type MatchType string

const (
	MatchExact    MatchType = "EXACT"
	MatchAnd      MatchType = "AND"
	MatchOr       MatchType = "OR"
	MatchPartial  MatchType = "PARTIAL"
	MatchCourse   MatchType = "COURSE"
	MatchSemantic MatchType = "SEMANTIC"
)

// Priority orders tiers from EXACT (0) to SEMANTIC (5). Unknown types sort last.
func (m MatchType) Priority() int {
	switch m {
	case MatchExact:
		return 0
	case MatchAnd:
		return 1
	case MatchOr:
		return 2
	case MatchPartial:
		return 3
	case MatchCourse:
		return 4
	case MatchSemantic:
		return 5
	default:
		return 6
	}
}

// Match associates a profile with the tier that found it and, when the tier
// is skill or course based, the entry that justified it.
type Match struct {
	Profile *Profile
	Skill   *Skill
	Course  *Course
	Type    MatchType
}

// EmployeeID returns the identity of the matched profile.
func (m Match) EmployeeID() string {
	if m.Profile == nil {
		return ""
	}
	return m.Profile.EmployeeID
}
