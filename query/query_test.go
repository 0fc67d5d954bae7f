package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekhya-chintada/skillmatrix/ai/mock"
	"github.com/alekhya-chintada/skillmatrix/core"
)

func TestPatternExtractor(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		wantErr error
	}{
		{text: "who knows Big Data and NLP?", want: "big data and nlp"},
		{text: "Who Knows Python", want: "python"},
		{text: "hey, who knows go? asking for a friend", want: "go"},
		{text: "who knows  kafka  ?", want: "kafka"},
		{text: "does anyone know rust?", wantErr: core.ErrNoPhrase},
		{text: "who knows ?", wantErr: core.ErrNoPhrase},
		{text: "", wantErr: core.ErrNoPhrase},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := PatternExtractor{}.ExtractPhrase(context.Background(), tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewrite(t *testing.T) {
	assert.Equal(t, "big data|nlp", Rewrite("big data and nlp"))
	assert.Equal(t, "java|scala|go", Rewrite("java or scala and go"))
	assert.Equal(t, "android", Rewrite("android"))
	assert.Equal(t, "sandor", Rewrite("sandor"))
}

func TestParse(t *testing.T) {
	phrase, err := Parse(context.Background(), PatternExtractor{}, "who knows Big Data and NLP?")
	require.NoError(t, err)

	assert.Equal(t, "big data|nlp", phrase.Raw)
	assert.Equal(t, []string{"bigdata", "nlp"}, phrase.Parts)
	assert.True(t, phrase.Compound())
}

func TestParse_ExtractorFailure(t *testing.T) {
	extractor := mock.NewMockPhraseExtractor()
	boom := errors.New("model offline")
	extractor.ExtractPhraseFunc = func(ctx context.Context, text string) (string, error) {
		return "", boom
	}

	_, err := Parse(context.Background(), extractor, "who knows go?")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, extractor.CallCount())
}

func TestParse_OnlyDelimiters(t *testing.T) {
	extractor := mock.NewMockPhraseExtractor()
	extractor.ExtractPhraseFunc = func(ctx context.Context, text string) (string, error) {
		return " and ", nil
	}

	_, err := Parse(context.Background(), extractor, "who knows and?")
	assert.ErrorIs(t, err, core.ErrNoPhrase)
}
