package main

import (
	"fmt"
	"io"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/search"
)

const topSkills = 5

func printResult(w io.Writer, result *search.Result) {
	fmt.Fprintf(w, "Skill phrase for matching: %s\n", result.Phrase.Raw)
	if result.FallbackErr != nil {
		fmt.Fprintf(w, "\nSemantic fallback unavailable: %v\n", result.FallbackErr)
	}
	if len(result.Ranked) == 0 {
		fmt.Fprintln(w, "\nNo matching employees found.")
		return
	}

	fmt.Fprintf(w, "\nTop %d relevant employees:\n", len(result.Ranked))
	for _, m := range result.Ranked {
		printMatch(w, m)
	}
}

func printMatch(w io.Writer, m core.Match) {
	p := m.Profile
	if m.Type == core.MatchSemantic {
		fmt.Fprintf(w, "\nName: %s (ID: %s), Job Level: %s, Company: %s [%s]\n", p.Name, p.EmployeeID, p.JobLevel, p.Company, m.Type)
		fmt.Fprintf(w, "Email: %s\n", p.Email)
		skills := p.SkillNames()
		if len(skills) == 0 {
			return
		}
		fmt.Fprintln(w, "Top skills:")
		for _, s := range skills[:min(len(skills), topSkills)] {
			fmt.Fprintf(w, "- %s\n", s)
		}
		if len(skills) > topSkills {
			fmt.Fprintf(w, "...and %d more.\n", len(skills)-topSkills)
		}
		return
	}

	fmt.Fprintf(w, "\n%s (ID: %s), Email: %s [%s]\n", p.Name, p.EmployeeID, p.Email, m.Type)
	switch {
	case m.Skill != nil:
		s := m.Skill
		fmt.Fprintf(w, "Skill: %s, Experience: %d months, Proficiency: %s, Current: %s, Primary: %s\n",
			s.Name, s.ExperienceMonths, s.Proficiency, s.IsCurrent, s.IsPrimary)
	case m.Course != nil:
		fmt.Fprintf(w, "Related course: %s (Completed On: %s)\n", m.Course.Name, m.Course.CompletedOn)
	}
}
