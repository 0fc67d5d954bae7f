package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "employee id", content: "E1001"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IDFromContent(tt.content) != IDFromContent(tt.content) {
				t.Errorf("IDFromContent() produced different IDs for same content")
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("E1") == IDFromContent("E2") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestParseProficiency(t *testing.T) {
	tests := []struct {
		raw  string
		want Proficiency
		rank int
	}{
		{"EXPERT", ProficiencyExpert, 4},
		{"proficient", ProficiencyProficient, 3},
		{" Competent ", ProficiencyCompetent, 2},
		{"beginner", ProficiencyBeginner, 1},
		{"", ProficiencyAbsent, 0},
		{"guru", ProficiencyAbsent, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := ParseProficiency(tt.raw)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.rank, p.Rank())
		})
	}
}

func TestFlagIsSet(t *testing.T) {
	assert.True(t, Flag("YES").IsSet())
	assert.True(t, Flag("yes").IsSet())
	assert.False(t, Flag("NO").IsSet())
	assert.False(t, Flag("").IsSet())
	assert.False(t, Flag("Y").IsSet())
}

func TestMatchTypePriority(t *testing.T) {
	order := []MatchType{MatchExact, MatchAnd, MatchOr, MatchPartial, MatchCourse, MatchSemantic}
	for i, m := range order {
		assert.Equal(t, i, m.Priority(), m)
	}
	assert.Greater(t, MatchType("BOGUS").Priority(), MatchSemantic.Priority())
}

func testProfile() *Profile {
	return &Profile{
		EmployeeID: "E1",
		Name:       "Asha Rao",
		JobLevel:   "L3",
		Company:    "Acme",
		Email:      "asha@acme.test",
		Skills: []Skill{
			{Name: "Python"},
			{Name: "Big Data"},
		},
		Courses:        []Course{{Name: "Spark Fundamentals", CompletedOn: "2023-01-10"}},
		Certifications: []Certification{{Name: "AWS SAA"}},
	}
}

func TestProfileSummary(t *testing.T) {
	got := testProfile().Summary()
	assert.Equal(t,
		"Asha Rao (ID: E1) is at Job Level L3 in Acme. Skills: Python, Big Data. Courses: Spark Fundamentals. Certifications: AWS SAA.",
		got)
}

func TestProfileSummary_Empty(t *testing.T) {
	p := &Profile{EmployeeID: "E9"}
	assert.Equal(t, " (ID: E9) is at Job Level  in . Skills: . Courses: . Certifications: .", p.Summary())
}

func TestProfileMetadata(t *testing.T) {
	md := testProfile().Metadata()
	assert.Equal(t, "E1", md[MetaEmployeeID])
	assert.Equal(t, "asha@acme.test", md[MetaEmail])
	assert.Equal(t, "Python, Big Data", md[MetaSkills])
	assert.Equal(t, "Python;Big Data", md[MetaSkillsList])
	assert.Equal(t, "Spark Fundamentals", md[MetaCoursesList])
	assert.Equal(t, "AWS SAA", md[MetaCertsList])
}

func TestMatchEmployeeID(t *testing.T) {
	assert.Equal(t, "", Match{}.EmployeeID())
	assert.Equal(t, "E1", Match{Profile: testProfile()}.EmployeeID())
}
