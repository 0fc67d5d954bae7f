package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekhya-chintada/skillmatrix/core"
)

func skillMatch(id string, kind core.MatchType, skill core.Skill) core.Match {
	return core.Match{Profile: &core.Profile{EmployeeID: id}, Skill: &skill, Type: kind}
}

func bare(id string, kind core.MatchType) core.Match {
	return core.Match{Profile: &core.Profile{EmployeeID: id}, Type: kind}
}

func employeeIDs(matches []core.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.EmployeeID())
	}
	return out
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name  string
		match core.Match
		want  SortKey
	}{
		{
			name:  "no skill",
			match: bare("E1", core.MatchCourse),
			want:  SortKey{},
		},
		{
			name: "full skill",
			match: skillMatch("E1", core.MatchExact, core.Skill{
				ExperienceMonths: 24, IsCurrent: "YES", IsPrimary: "YES", Proficiency: core.ProficiencyExpert,
			}),
			want: SortKey{Experience: -24, Current: -1, Primary: 1, Proficiency: -4},
		},
		{
			name:  "flags unset",
			match: skillMatch("E1", core.MatchExact, core.Skill{IsCurrent: "NO", IsPrimary: "no"}),
			want:  SortKey{},
		},
		{
			name:  "negative experience clamps",
			match: skillMatch("E1", core.MatchExact, core.Skill{ExperienceMonths: -5}),
			want:  SortKey{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyOf(tt.match))
		})
	}
}

func TestSortKeyCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b SortKey
		want int
	}{
		{"equal", SortKey{}, SortKey{}, 0},
		{"experience first", SortKey{Experience: -36}, SortKey{Experience: -12, Current: -1}, -1},
		{"current breaks experience tie", SortKey{Experience: -12, Current: -1}, SortKey{Experience: -12}, -1},
		{"secondary before primary", SortKey{Primary: 0}, SortKey{Primary: 1}, -1},
		{"proficiency last", SortKey{Primary: 1, Proficiency: -4}, SortKey{Primary: 1, Proficiency: -1}, -1},
		{"greater", SortKey{Experience: -1}, SortKey{Experience: -2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestBest_ExperienceOutranksCurrent(t *testing.T) {
	matches := []core.Match{
		skillMatch("young", core.MatchExact, core.Skill{Name: "Python", ExperienceMonths: 12, IsCurrent: "YES"}),
		skillMatch("veteran", core.MatchExact, core.Skill{Name: "Python", ExperienceMonths: 36, IsCurrent: "NO"}),
	}

	best, ok := Best(matches, core.MatchExact)
	require.True(t, ok)
	assert.Equal(t, "veteran", best.EmployeeID())
}

func TestBest_StableOnTies(t *testing.T) {
	matches := []core.Match{
		skillMatch("first", core.MatchAnd, core.Skill{ExperienceMonths: 6}),
		skillMatch("second", core.MatchAnd, core.Skill{ExperienceMonths: 6}),
	}
	best, ok := Best(matches, core.MatchAnd)
	require.True(t, ok)
	assert.Equal(t, "first", best.EmployeeID())

	_, ok = Best(matches, core.MatchExact)
	assert.False(t, ok)
}

func TestSelect(t *testing.T) {
	t.Run("exact wins over and", func(t *testing.T) {
		matches := []core.Match{
			skillMatch("E1", core.MatchExact, core.Skill{ExperienceMonths: 1}),
			skillMatch("A1", core.MatchAnd, core.Skill{ExperienceMonths: 100}),
			skillMatch("O1", core.MatchOr, core.Skill{ExperienceMonths: 5}),
			skillMatch("O2", core.MatchOr, core.Skill{ExperienceMonths: 50}),
			bare("C1", core.MatchCourse),
		}
		assert.Equal(t, []string{"E1", "O2", "O1"}, employeeIDs(Select(matches, 3)))
	})

	t.Run("and used when no exact", func(t *testing.T) {
		matches := []core.Match{
			skillMatch("A1", core.MatchAnd, core.Skill{ExperienceMonths: 3}),
			skillMatch("A2", core.MatchAnd, core.Skill{ExperienceMonths: 9}),
			skillMatch("P1", core.MatchPartial, core.Skill{}),
		}
		assert.Equal(t, []string{"A2", "P1"}, employeeIDs(Select(matches, 3)))
	})

	t.Run("only weaker tiers", func(t *testing.T) {
		matches := []core.Match{
			bare("S1", core.MatchSemantic),
			skillMatch("P1", core.MatchPartial, core.Skill{ExperienceMonths: 2}),
			bare("C1", core.MatchCourse),
		}
		assert.Equal(t, []string{"P1", "S1"}, employeeIDs(Select(matches, 3)))
	})

	t.Run("skill evidence sorts before bare matches", func(t *testing.T) {
		matches := []core.Match{
			bare("C1", core.MatchCourse),
			skillMatch("P1", core.MatchPartial, core.Skill{IsCurrent: "YES"}),
		}
		assert.Equal(t, []string{"P1", "C1"}, employeeIDs(Select(matches, 3)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Select(nil, 3))
	})

	t.Run("limit caps result", func(t *testing.T) {
		matches := []core.Match{
			skillMatch("E1", core.MatchExact, core.Skill{}),
			bare("O1", core.MatchOr),
			bare("O2", core.MatchOr),
		}
		assert.Equal(t, []string{"E1", "O1"}, employeeIDs(Select(matches, 2)))
		assert.Len(t, Select(matches, 0), DefaultLimit)
	})
}

func TestSelect_NoDuplicates(t *testing.T) {
	matches := []core.Match{
		skillMatch("E1", core.MatchExact, core.Skill{}),
		skillMatch("E2", core.MatchExact, core.Skill{}),
		skillMatch("A1", core.MatchAnd, core.Skill{}),
		bare("O1", core.MatchOr),
		bare("P1", core.MatchPartial),
		bare("S1", core.MatchSemantic),
	}
	got := Select(matches, 3)
	require.LessOrEqual(t, len(got), 3)

	seen := map[string]bool{}
	for _, m := range got {
		assert.False(t, seen[m.EmployeeID()], m.EmployeeID())
		seen[m.EmployeeID()] = true
	}
}
