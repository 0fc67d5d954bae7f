package ai

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultHost           = "http://localhost:11434/v1"
	DefaultEmbeddingModel = "embeddinggemma"
	DefaultExtractorModel = "qwen2.5:3b"

	maxExtractorAttempts = 10
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid ai config")

// Config locates the embedding service and the chat model behind the
// optional LLM phrase extractor. Both speak the OpenAI API.
type Config struct {
	EmbeddingHost  string // e.g. "http://localhost:11434/v1"
	ExtractorHost  string
	EmbeddingModel string // e.g. "embeddinggemma", "text-embedding-3-small"
	ExtractorModel string // e.g. "qwen2.5:3b", "gpt-4o-mini"

	// APIKey is sent as the bearer token. Local servers ignore it; Normalize
	// fills in "none" when it is empty.
	APIKey string

	// ExtractorAttempts is how many times the extractor re-asks the model
	// when its reply is not valid JSON. Between 1 and 10.
	ExtractorAttempts int
}

type ConfigOption func(*Config)

func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) { c.EmbeddingHost = host }
}

func WithExtractorHost(host string) ConfigOption {
	return func(c *Config) { c.ExtractorHost = host }
}

// WithHost points both services at the same server.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.ExtractorHost = host
	}
}

func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) { c.EmbeddingModel = model }
}

func WithExtractorModel(model string) ConfigOption {
	return func(c *Config) { c.ExtractorModel = model }
}

func WithAPIKey(key string) ConfigOption {
	return func(c *Config) { c.APIKey = key }
}

func WithExtractorAttempts(n int) ConfigOption {
	return func(c *Config) { c.ExtractorAttempts = n }
}

// DefaultConfig targets a local Ollama serving both models.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:     DefaultHost,
		ExtractorHost:     DefaultHost,
		EmbeddingModel:    DefaultEmbeddingModel,
		ExtractorModel:    DefaultExtractorModel,
		APIKey:            "none",
		ExtractorAttempts: 3,
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize trims the hosts and appends the /v1 path OpenAI-compatible
// servers expect when it is missing.
func (c *Config) Normalize() {
	c.EmbeddingHost = withV1(c.EmbeddingHost)
	c.ExtractorHost = withV1(c.ExtractorHost)
	if c.APIKey == "" {
		c.APIKey = "none"
	}
}

func withV1(host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate normalizes c and reports every missing or out-of-range field in
// one error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	c.Normalize()

	var problems []string
	if c.EmbeddingHost == "" {
		problems = append(problems, "embedding host is required")
	}
	if c.ExtractorHost == "" {
		problems = append(problems, "extractor host is required")
	}
	if c.EmbeddingModel == "" {
		problems = append(problems, "embedding model is required")
	}
	if c.ExtractorModel == "" {
		problems = append(problems, "extractor model is required")
	}
	if c.ExtractorAttempts < 1 || c.ExtractorAttempts > maxExtractorAttempts {
		problems = append(problems, fmt.Sprintf("extractor attempts must be between 1 and %d, got %d",
			maxExtractorAttempts, c.ExtractorAttempts))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
