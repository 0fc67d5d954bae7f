package match

import (
	"strings"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// Strategy scans a corpus for profiles satisfying a phrase.
type Strategy func(corpus *core.Corpus, phrase Phrase) []core.Match

type skillPredicate func(normalized string) bool

// scanSkills records one match per profile for the first skill accepted by pred.
func scanSkills(corpus *core.Corpus, kind core.MatchType, pred skillPredicate) []core.Match {
	var out []core.Match
	for _, p := range corpus.Profiles() {
		for i := range p.Skills {
			if pred(core.Normalize(p.Skills[i].Name)) {
				out = append(out, core.Match{Profile: p, Skill: &p.Skills[i], Type: kind})
				break
			}
		}
	}
	return out
}

// Exact matches skills whose normalized name equals the full phrase.
func Exact(corpus *core.Corpus, phrase Phrase) []core.Match {
	if phrase.Full == "" {
		return nil
	}
	return scanSkills(corpus, core.MatchExact, func(name string) bool {
		return name == phrase.Full
	})
}

// Conjunctive matches skills containing every part. Only compound phrases apply.
func Conjunctive(corpus *core.Corpus, phrase Phrase) []core.Match {
	if !phrase.Compound() {
		return nil
	}
	return scanSkills(corpus, core.MatchAnd, phrase.containsAll)
}

// Disjunctive matches skills containing any part. Only compound phrases apply.
func Disjunctive(corpus *core.Corpus, phrase Phrase) []core.Match {
	if !phrase.Compound() {
		return nil
	}
	return scanSkills(corpus, core.MatchOr, phrase.containsAny)
}

// Partial runs for every phrase and matches skills equal to the full phrase
// or containing any part.
func Partial(corpus *core.Corpus, phrase Phrase) []core.Match {
	if phrase.Empty() {
		return nil
	}
	return scanSkills(corpus, core.MatchPartial, func(name string) bool {
		return name == phrase.Full || phrase.containsAny(name)
	})
}

// Courses matches the first course whose normalized name contains the full
// phrase or any part.
func Courses(corpus *core.Corpus, phrase Phrase) []core.Match {
	if phrase.Empty() {
		return nil
	}
	var out []core.Match
	for _, p := range corpus.Profiles() {
		for i := range p.Courses {
			name := core.Normalize(p.Courses[i].Name)
			if strings.Contains(name, phrase.Full) || phrase.containsAny(name) {
				out = append(out, core.Match{Profile: p, Course: &p.Courses[i], Type: core.MatchCourse})
				break
			}
		}
	}
	return out
}

// Tier pairs a strategy with the match type it produces.
type Tier struct {
	Type     core.MatchType
	Strategy Strategy
}

// Cascade returns the tiers to run for phrase in priority order.
// AND and OR are omitted for single-part phrases.
func Cascade(phrase Phrase) []Tier {
	tiers := []Tier{{Type: core.MatchExact, Strategy: Exact}}
	if phrase.Compound() {
		tiers = append(tiers,
			Tier{Type: core.MatchAnd, Strategy: Conjunctive},
			Tier{Type: core.MatchOr, Strategy: Disjunctive},
		)
	}
	return append(tiers,
		Tier{Type: core.MatchPartial, Strategy: Partial},
		Tier{Type: core.MatchCourse, Strategy: Courses},
	)
}
