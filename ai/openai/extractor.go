package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/core"
)

// PhraseExtractor implements ai.PhraseExtractor using OpenAI-compatible chat APIs.
type PhraseExtractor struct {
	client   llms.Model
	attempts int
	logger   *slog.Logger
}

// extraction is the structure of the model's JSON reply.
type extraction struct {
	SkillPhrase string `json:"skill_phrase"`
}

// newPhraseExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newPhraseExtractor(config *ai.Config) (*PhraseExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return newPhraseExtractorWithModel(client, config.ExtractorAttempts), nil
}

func newPhraseExtractorWithModel(client llms.Model, attempts int) *PhraseExtractor {
	return &PhraseExtractor{
		client:   client,
		attempts: max(attempts, 1),
		logger:   slog.Default().With("component", "openai-extractor"),
	}
}

// NewPhraseExtractor creates a new phrase extractor using the provided configuration.
//
// Returns ai.PhraseExtractor interface to enforce abstraction.
func NewPhraseExtractor(config *ai.Config) (ai.PhraseExtractor, error) {
	return newPhraseExtractor(config)
}

// ExtractPhrase asks the model for the skill phrase in text.
// Malformed replies are retried; an empty phrase yields core.ErrNoPhrase.
func (e *PhraseExtractor) ExtractPhrase(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", core.ErrNoPhrase
	}

	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, buildSystemPrompt()),
		llms.TextParts(llms.ChatMessageTypeHuman, text),
	}

	var result extraction
	var lastErr error
	for attempt := 0; attempt < e.attempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return "", err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return "", core.ErrNoPhrase
		}

		reply := response.Choices[0].Content
		if err := decodeReply(reply, &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", reply,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
		return "", fmt.Errorf("extract phrase: %w", lastErr)
	}

	phrase := strings.ToLower(strings.TrimSpace(result.SkillPhrase))
	if phrase == "" {
		return "", core.ErrNoPhrase
	}
	e.logger.Debug("extracted phrase", "phrase", phrase)
	return phrase, nil
}
