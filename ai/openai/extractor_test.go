package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// scriptedModel replies with the queued responses in order.
type scriptedModel struct {
	replies []string
	err     error
	calls   int
}

func (m *scriptedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.replies) == 0 {
		return &llms.ContentResponse{}, nil
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: reply}}}, nil
}

func (m *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestPhraseExtractor_ExtractPhrase(t *testing.T) {
	tests := []struct {
		name      string
		replies   []string
		want      string
		wantErr   error
		wantCalls int
	}{
		{
			name:      "plain json",
			replies:   []string{`{"skill_phrase": "Big Data and NLP"}`},
			want:      "big data and nlp",
			wantCalls: 1,
		},
		{
			name:      "fenced json",
			replies:   []string{"```json\n{\"skill_phrase\": \"kubernetes\"}\n```"},
			want:      "kubernetes",
			wantCalls: 1,
		},
		{
			name:      "repaired key",
			replies:   []string{`{skill_phrase": "java or scala"}`},
			want:      "java or scala",
			wantCalls: 1,
		},
		{
			name:      "retry after garbage",
			replies:   []string{"not json", `{"skill_phrase": "go"}`},
			want:      "go",
			wantCalls: 2,
		},
		{
			name:      "empty phrase",
			replies:   []string{`{"skill_phrase": "  "}`},
			wantErr:   core.ErrNoPhrase,
			wantCalls: 1,
		},
		{
			name:      "no choices",
			replies:   nil,
			wantErr:   core.ErrNoPhrase,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &scriptedModel{replies: tt.replies}
			e := newPhraseExtractorWithModel(model, 3)

			got, err := e.ExtractPhrase(context.Background(), "who knows something?")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantCalls, model.calls)
		})
	}
}

func TestPhraseExtractor_GivesUpAfterAttempts(t *testing.T) {
	model := &scriptedModel{replies: []string{"x", "y", "z", `{"skill_phrase": "late"}`}}
	e := newPhraseExtractorWithModel(model, 3)

	_, err := e.ExtractPhrase(context.Background(), "who knows go?")
	require.Error(t, err)
	assert.Equal(t, 3, model.calls)
}

func TestPhraseExtractor_ModelError(t *testing.T) {
	boom := errors.New("connection refused")
	model := &scriptedModel{err: boom}
	e := newPhraseExtractorWithModel(model, 3)

	_, err := e.ExtractPhrase(context.Background(), "who knows go?")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, model.calls)
}

func TestPhraseExtractor_EmptyInput(t *testing.T) {
	model := &scriptedModel{}
	e := newPhraseExtractorWithModel(model, 3)

	_, err := e.ExtractPhrase(context.Background(), "   ")
	assert.ErrorIs(t, err, core.ErrNoPhrase)
	assert.Zero(t, model.calls)
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"skill_phrase": "go"}`, `{"skill_phrase": "go"}`},
		{`{skill_phrase": "go"}`, `{"skill_phrase": "go"}`},
		{`{ skill_phrase": "go"}`, `{ "skill_phrase": "go"}`},
		{`{skill_phrase: "go"}`, `{"skill_phrase": "go"}`},
		{`{"skill_phrase": "go",}`, `{"skill_phrase": "go"}`},
		{`[1, 2]`, `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.in))
		})
	}
}

func TestDecodeReply(t *testing.T) {
	var got extraction
	require.NoError(t, decodeReply(`{"skill_phrase": "ml, ai: basics"}`, &got))
	assert.Equal(t, "ml, ai: basics", got.SkillPhrase, "valid replies are not rewritten")

	got = extraction{}
	require.NoError(t, decodeReply("```json\n{skill_phrase\": \"go\",}\n```", &got))
	assert.Equal(t, "go", got.SkillPhrase)

	assert.Error(t, decodeReply("sorry, no idea", &got))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`  {"a":1} `))
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := buildSystemPrompt()
	assert.Contains(t, prompt, `"skill_phrase"`)
	assert.Contains(t, prompt, "draft-07")
	assert.NotContains(t, prompt, "%!")
}
