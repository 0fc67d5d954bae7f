package match

import (
	"strings"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// Delimiter separates alternative terms in a skill phrase.
const Delimiter = "|"

// Phrase is a skill phrase split into normalized alternative terms.
type Phrase struct {
	Raw   string   // phrase as received
	Full  string   // normalized undelimited phrase
	Parts []string // normalized non-empty parts
}

// ParsePhrase normalizes raw and splits it on Delimiter. Empty parts are dropped.
func ParsePhrase(raw string) Phrase {
	p := Phrase{Raw: raw, Full: core.Normalize(raw)}
	for _, piece := range strings.Split(raw, Delimiter) {
		if n := core.Normalize(piece); n != "" {
			p.Parts = append(p.Parts, n)
		}
	}
	return p
}

// Empty reports whether the phrase carries no searchable text.
func (p Phrase) Empty() bool {
	return p.Full == "" || len(p.Parts) == 0
}

// Compound reports whether the phrase has at least two parts.
func (p Phrase) Compound() bool {
	return len(p.Parts) >= 2
}

func (p Phrase) containsAll(s string) bool {
	for _, part := range p.Parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return len(p.Parts) > 0
}

func (p Phrase) containsAny(s string) bool {
	for _, part := range p.Parts {
		if strings.Contains(s, part) {
			return true
		}
	}
	return false
}
