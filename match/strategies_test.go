package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekhya-chintada/skillmatrix/core"
)

func profile(id string, skills []string, courses ...string) *core.Profile {
	p := &core.Profile{EmployeeID: id, Name: "Employee " + id}
	for _, s := range skills {
		p.Skills = append(p.Skills, core.Skill{Name: s})
	}
	for _, c := range courses {
		p.Courses = append(p.Courses, core.Course{Name: c})
	}
	return p
}

func ids(matches []core.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.EmployeeID())
	}
	return out
}

func TestExact(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{
		profile("P1", []string{"Java", "Big Data"}),
		profile("P2", []string{"Big-Data Engineering"}),
		profile("P3", []string{"big_data"}),
	})

	got := Exact(corpus, ParsePhrase("big data"))
	require.Equal(t, []string{"P1", "P3"}, ids(got))
	assert.Equal(t, core.MatchExact, got[0].Type)
	assert.Equal(t, "Big Data", got[0].Skill.Name)
	assert.Nil(t, got[0].Course)
}

func TestExact_FirstSkillOnly(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{profile("P1", []string{"Go", "Golang", "go"})})
	got := Exact(corpus, ParsePhrase("go"))
	require.Len(t, got, 1)
	assert.Equal(t, "Go", got[0].Skill.Name)
}

func TestConjunctiveAndDisjunctive(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{
		profile("P1", []string{"NLP-BigData-Engineering"}),
		profile("P2", []string{"NLP Basics"}),
		profile("P3", []string{"Hadoop"}),
	})
	phrase := ParsePhrase("nlp|big data")

	and := Conjunctive(corpus, phrase)
	assert.Equal(t, []string{"P1"}, ids(and))
	assert.Equal(t, core.MatchAnd, and[0].Type)

	or := Disjunctive(corpus, phrase)
	assert.Equal(t, []string{"P1", "P2"}, ids(or))
	for _, m := range or {
		assert.Equal(t, core.MatchOr, m.Type)
	}
}

func TestConjunctive_RequiresCompound(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{profile("P1", []string{"NLP"})})
	assert.Empty(t, Conjunctive(corpus, ParsePhrase("nlp")))
	assert.Empty(t, Disjunctive(corpus, ParsePhrase("nlp")))
}

func TestPartial(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{
		profile("P1", []string{"Python Scripting"}),
		profile("P2", []string{"Java"}),
		profile("P3", []string{"python"}),
	})

	got := Partial(corpus, ParsePhrase("python"))
	assert.Equal(t, []string{"P1", "P3"}, ids(got))
	for _, m := range got {
		assert.Equal(t, core.MatchPartial, m.Type)
	}
}

func TestCourses(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{
		profile("P1", nil, "Intro to Java", "Big Data with Spark", "Big Data Advanced"),
		profile("P2", []string{"Big Data"}),
		profile("P3", nil, "nlp for beginners"),
	})

	got := Courses(corpus, ParsePhrase("big data|nlp"))
	require.Equal(t, []string{"P1", "P3"}, ids(got))
	assert.Equal(t, "Big Data with Spark", got[0].Course.Name)
	assert.Nil(t, got[0].Skill)
	assert.Equal(t, core.MatchCourse, got[0].Type)
}

func TestStrategies_EmptyPhrase(t *testing.T) {
	corpus := core.NewCorpus([]*core.Profile{profile("P1", []string{"Go"}, "Go 101")})
	empty := ParsePhrase("")
	assert.Empty(t, Exact(corpus, empty))
	assert.Empty(t, Partial(corpus, empty))
	assert.Empty(t, Courses(corpus, empty))
}

func TestStrategies_DoNotMutateCorpus(t *testing.T) {
	p := profile("P1", []string{"Big-Data"}, "NLP 101")
	corpus := core.NewCorpus([]*core.Profile{p})
	phrase := ParsePhrase("big data|nlp")

	for _, tier := range Cascade(phrase) {
		tier.Strategy(corpus, phrase)
	}
	assert.Equal(t, "Big-Data", p.Skills[0].Name)
	assert.Equal(t, "NLP 101", p.Courses[0].Name)
	assert.Equal(t, 1, corpus.Len())
}

func TestCascade(t *testing.T) {
	types := func(tiers []Tier) []core.MatchType {
		out := make([]core.MatchType, 0, len(tiers))
		for _, tier := range tiers {
			out = append(out, tier.Type)
		}
		return out
	}

	assert.Equal(t,
		[]core.MatchType{core.MatchExact, core.MatchPartial, core.MatchCourse},
		types(Cascade(ParsePhrase("python"))))
	assert.Equal(t,
		[]core.MatchType{core.MatchExact, core.MatchAnd, core.MatchOr, core.MatchPartial, core.MatchCourse},
		types(Cascade(ParsePhrase("big data|nlp"))))
}
