// Package rank selects the final result set from merged tier matches.
package rank

import (
	"cmp"
	"slices"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// DefaultLimit is the size of the final result set.
const DefaultLimit = 3

// secondaryPicks is how many matches from the weaker tiers join the best
// EXACT or AND match.
const secondaryPicks = 2

// SortKey orders matches within a tier. Lower keys rank first and fields are
// compared in declaration order.
type SortKey struct {
	// Experience is -experienceMonths: more experience first.
	Experience int
	// Current is -1 when the skill is current, else 0: current skills first.
	Current int
	// Primary is 1 when the skill is primary, else 0. Secondary skills sort
	// ahead of primary ones at equal experience and currency.
	Primary int
	// Proficiency is -rank (EXPERT=4 ... absent=0): higher proficiency first.
	Proficiency int
}

// KeyOf computes the sort key for a match. Matches without a skill (course
// and semantic matches) get the zero key.
func KeyOf(m core.Match) SortKey {
	if m.Skill == nil {
		return SortKey{}
	}
	k := SortKey{
		Experience:  -max(m.Skill.ExperienceMonths, 0),
		Proficiency: -m.Skill.Proficiency.Rank(),
	}
	if m.Skill.IsCurrent.IsSet() {
		k.Current = -1
	}
	if m.Skill.IsPrimary.IsSet() {
		k.Primary = 1
	}
	return k
}

// Compare orders keys lexicographically, returning -1, 0 or +1.
func (k SortKey) Compare(other SortKey) int {
	return cmp.Or(
		cmp.Compare(k.Experience, other.Experience),
		cmp.Compare(k.Current, other.Current),
		cmp.Compare(k.Primary, other.Primary),
		cmp.Compare(k.Proficiency, other.Proficiency),
	)
}

func byKey(a, b core.Match) int {
	return KeyOf(a).Compare(KeyOf(b))
}

// Best returns the lowest-keyed match of the given type. Ties keep the
// earlier match.
func Best(matches []core.Match, kind core.MatchType) (core.Match, bool) {
	var (
		best  core.Match
		found bool
	)
	for _, m := range matches {
		if m.Type != kind {
			continue
		}
		if !found || byKey(m, best) < 0 {
			best, found = m, true
		}
	}
	return best, found
}

// Select builds the final list: the best EXACT match, or failing that the best
// AND match, followed by the two lowest-keyed matches from the OR, PARTIAL,
// COURSE and SEMANTIC tiers, capped at limit. A non-positive limit selects
// DefaultLimit.
func Select(matches []core.Match, limit int) []core.Match {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]core.Match, 0, limit)
	if m, ok := Best(matches, core.MatchExact); ok {
		out = append(out, m)
	} else if m, ok := Best(matches, core.MatchAnd); ok {
		out = append(out, m)
	}

	var rest []core.Match
	for _, m := range matches {
		if m.Type != core.MatchExact && m.Type != core.MatchAnd {
			rest = append(rest, m)
		}
	}
	slices.SortStableFunc(rest, byKey)
	if len(rest) > secondaryPicks {
		rest = rest[:secondaryPicks]
	}

	out = append(out, rest...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
