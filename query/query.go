// Package query turns a free-text question into a skill phrase the matching
// strategies accept.
package query

import (
	"context"
	"regexp"
	"strings"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/match"
)

var whoKnows = regexp.MustCompile(`who knows (.+?)(\?|$)`)

// PatternExtractor extracts the phrase following "who knows" up to the first
// question mark or the end of the text.
type PatternExtractor struct{}

var _ ai.PhraseExtractor = PatternExtractor{}

// ExtractPhrase implements ai.PhraseExtractor. The text is lower-cased before
// matching; core.ErrNoPhrase is returned when the pattern is absent or empty.
func (PatternExtractor) ExtractPhrase(ctx context.Context, text string) (string, error) {
	m := whoKnows.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", core.ErrNoPhrase
	}
	phrase := strings.Trim(m[1], " ?")
	if phrase == "" {
		return "", core.ErrNoPhrase
	}
	return phrase, nil
}

var conjunctions = strings.NewReplacer(" and ", match.Delimiter, " or ", match.Delimiter)

// Rewrite replaces the natural-language conjunctions " and " and " or " with
// match.Delimiter. Matching is case-sensitive; extractors lower-case first.
func Rewrite(phrase string) string {
	return conjunctions.Replace(phrase)
}

// Parse extracts, rewrites and parses text in one step.
func Parse(ctx context.Context, extractor ai.PhraseExtractor, text string) (match.Phrase, error) {
	raw, err := extractor.ExtractPhrase(ctx, text)
	if err != nil {
		return match.Phrase{}, err
	}
	phrase := match.ParsePhrase(Rewrite(raw))
	if phrase.Empty() {
		return match.Phrase{}, core.ErrNoPhrase
	}
	return phrase, nil
}
