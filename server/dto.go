package server

import (
	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/search"
)

type SearchResponse struct {
	Phrase        string      `json:"phrase"`
	Parts         []string    `json:"parts"`
	Results       []MatchView `json:"results"`
	FallbackUsed  bool        `json:"fallback_used"`
	FallbackError string      `json:"fallback_error,omitempty"`
}

type MatchView struct {
	EmployeeID string      `json:"emp_id"`
	Name       string      `json:"name"`
	JobLevel   string      `json:"job_level,omitempty"`
	Company    string      `json:"company,omitempty"`
	Email      string      `json:"email,omitempty"`
	MatchType  string      `json:"match_type"`
	Skill      *SkillView  `json:"skill,omitempty"`
	Course     *CourseView `json:"course,omitempty"`
	Skills     []string    `json:"skills,omitempty"`
}

type SkillView struct {
	Name             string `json:"name"`
	Proficiency      string `json:"proficiency,omitempty"`
	IsPrimary        bool   `json:"is_primary"`
	IsCurrent        bool   `json:"is_current"`
	ExperienceMonths int    `json:"experience_months"`
}

type CourseView struct {
	Name        string `json:"name"`
	CompletedOn string `json:"completed_on,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Profiles int    `json:"profiles"`
}

type ReloadResponse struct {
	Profiles int `json:"profiles"`
}

func toSearchResponse(r *search.Result) SearchResponse {
	out := SearchResponse{
		Phrase:       r.Phrase.Raw,
		Parts:        r.Phrase.Parts,
		Results:      make([]MatchView, 0, len(r.Ranked)),
		FallbackUsed: r.FallbackUsed,
	}
	if r.FallbackErr != nil {
		out.FallbackError = r.FallbackErr.Error()
	}
	for _, m := range r.Ranked {
		out.Results = append(out.Results, toMatchView(m))
	}
	return out
}

func toMatchView(m core.Match) MatchView {
	v := MatchView{MatchType: string(m.Type)}
	if p := m.Profile; p != nil {
		v.EmployeeID = p.EmployeeID
		v.Name = p.Name
		v.JobLevel = p.JobLevel
		v.Company = p.Company
		v.Email = p.Email
		v.Skills = p.SkillNames()
	}
	if s := m.Skill; s != nil {
		v.Skill = &SkillView{
			Name:             s.Name,
			Proficiency:      string(s.Proficiency),
			IsPrimary:        s.IsPrimary.IsSet(),
			IsCurrent:        s.IsCurrent.IsSet(),
			ExperienceMonths: s.ExperienceMonths,
		}
	}
	if c := m.Course; c != nil {
		v.Course = &CourseView{Name: c.Name, CompletedOn: c.CompletedOn}
	}
	return v
}
