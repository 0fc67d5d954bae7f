// Package config loads the skillmatrix configuration from a YAML file with
// SKILLMATRIX_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alekhya-chintada/skillmatrix/ai"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SKILLMATRIX_"

var errInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Datasets  string          `yaml:"datasets"`
	Database  DatabaseConfig  `yaml:"database"`
	AI        AIConfig        `yaml:"ai"`
	Search    SearchConfig    `yaml:"search"`
	Ingestion IngestionConfig `yaml:"ingestion"`
	Server    ServerConfig    `yaml:"server"`
}

type DatabaseConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

type AIConfig struct {
	EmbeddingHost     string `yaml:"embedding_host"`
	ExtractorHost     string `yaml:"extractor_host"`
	EmbeddingModel    string `yaml:"embedding_model"`
	ExtractorModel    string `yaml:"extractor_model"`
	APIKey            string `yaml:"api_key"`
	ExtractorAttempts int    `yaml:"extractor_attempts"`
	// UseLLMExtractor routes free-text questions through the chat model
	// instead of the "who knows" pattern.
	UseLLMExtractor bool `yaml:"use_llm_extractor"`
}

type SearchConfig struct {
	Limit     int `yaml:"limit"`
	FallbackK int `yaml:"fallback_k"`
}

type IngestionConfig struct {
	PoolSize   int           `yaml:"pool_size"`
	BatchSize  int           `yaml:"batch_size"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		LogLevel: "info",
		Datasets: "datasets/*.json",
		Database: DatabaseConfig{Path: "skillmatrix.db"},
		AI: AIConfig{
			EmbeddingHost:     aiDefaults.EmbeddingHost,
			ExtractorHost:     aiDefaults.ExtractorHost,
			EmbeddingModel:    aiDefaults.EmbeddingModel,
			ExtractorModel:    aiDefaults.ExtractorModel,
			APIKey:            aiDefaults.APIKey,
			ExtractorAttempts: aiDefaults.ExtractorAttempts,
		},
		Search: SearchConfig{Limit: 3, FallbackK: 3},
		Ingestion: IngestionConfig{
			BatchSize:  32,
			MaxRetries: 3,
			RetryDelay: 500 * time.Millisecond,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errInvalidConfig, path, err)
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SKILLMATRIX_* variables read through getenv.
// Unset or blank variables leave the field alone.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	opt := func(key string) (string, bool) {
		v := strings.TrimSpace(getenv(EnvPrefix + key))
		return v, v != ""
	}
	str := func(key string, dst *string) {
		if v, ok := opt(key); ok {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := opt(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := opt(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	str("LOG_LEVEL", &c.LogLevel)
	str("DATASETS", &c.Datasets)
	str("DB_PATH", &c.Database.Path)
	flag("DB_IN_MEMORY", &c.Database.InMemory)
	str("EMBEDDING_HOST", &c.AI.EmbeddingHost)
	str("EXTRACTOR_HOST", &c.AI.ExtractorHost)
	str("EMBEDDING_MODEL", &c.AI.EmbeddingModel)
	str("EXTRACTOR_MODEL", &c.AI.ExtractorModel)
	str("API_KEY", &c.AI.APIKey)
	num("EXTRACTOR_ATTEMPTS", &c.AI.ExtractorAttempts)
	flag("LLM_EXTRACTOR", &c.AI.UseLLMExtractor)
	num("SEARCH_LIMIT", &c.Search.Limit)
	num("FALLBACK_K", &c.Search.FallbackK)
	num("POOL_SIZE", &c.Ingestion.PoolSize)
	num("BATCH_SIZE", &c.Ingestion.BatchSize)
	str("ADDR", &c.Server.Addr)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var problems []string
	if c.Database.Path == "" && !c.Database.InMemory {
		problems = append(problems, "database.path is required unless database.in_memory is set")
	}
	if c.Search.Limit < 1 {
		problems = append(problems, "search.limit must be positive")
	}
	if c.Search.FallbackK < 1 {
		problems = append(problems, "search.fallback_k must be positive")
	}
	if c.Ingestion.PoolSize < 0 {
		problems = append(problems, "ingestion.pool_size must not be negative")
	}
	if c.Ingestion.BatchSize < 1 {
		problems = append(problems, "ingestion.batch_size must be positive")
	}
	if c.Ingestion.MaxRetries < 1 {
		problems = append(problems, "ingestion.max_retries must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if err := c.AIConfig().Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// AIConfig converts the ai section into an ai.Config.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.AI.EmbeddingHost),
		ai.WithExtractorHost(c.AI.ExtractorHost),
		ai.WithEmbeddingModel(c.AI.EmbeddingModel),
		ai.WithExtractorModel(c.AI.ExtractorModel),
		ai.WithAPIKey(c.AI.APIKey),
		ai.WithExtractorAttempts(c.AI.ExtractorAttempts),
	)
}
