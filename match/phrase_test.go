package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePhrase(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		full     string
		parts    []string
		compound bool
	}{
		{name: "single term", raw: "Python", full: "python", parts: []string{"python"}},
		{name: "compound", raw: "big data|nlp", full: "bigdata|nlp", parts: []string{"bigdata", "nlp"}, compound: true},
		{name: "empty pieces dropped", raw: "|go||", full: "|go||", parts: []string{"go"}},
		{name: "hyphens", raw: "Machine-Learning | Deep_Learning", full: "machinelearning|deeplearning", parts: []string{"machinelearning", "deeplearning"}, compound: true},
		{name: "empty", raw: "   ", full: "", parts: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePhrase(tt.raw)
			assert.Equal(t, tt.raw, p.Raw)
			assert.Equal(t, tt.full, p.Full)
			assert.Equal(t, tt.parts, p.Parts)
			assert.Equal(t, tt.compound, p.Compound())
		})
	}
}

func TestPhraseEmpty(t *testing.T) {
	assert.True(t, ParsePhrase("").Empty())
	assert.True(t, ParsePhrase("|").Empty())
	assert.False(t, ParsePhrase("go").Empty())
}
