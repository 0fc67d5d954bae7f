package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/alekhya-chintada/skillmatrix"
	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/ai/openai"
	"github.com/alekhya-chintada/skillmatrix/config"
)

const configKey = "config"

// newProvider builds the AI provider for every command. Tests swap it out.
var newProvider = func(cfg *ai.Config) (ai.AIProvider, error) {
	return openai.NewProvider(cfg)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "skillmatrix",
		Usage: "Find employees by skill, course or profile similarity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				EnvVars: []string{config.EnvPrefix + "CONFIG"},
			},
		},
		Before:   setup,
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Load dataset files, store the profiles and index their summaries",
				Action: ingestCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:  "datasets",
						Usage: "Glob matching the dataset JSON files",
					},
					&cli.BoolFlag{
						Name:  "in-memory",
						Usage: "Keep the database in memory",
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Ask who knows a skill",
				ArgsUsage: "<question>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:    "phrase",
						Aliases: []string{"p"},
						Usage:   "Skill phrase to match directly, skipping extraction",
					},
					&cli.BoolFlag{
						Name:  "llm",
						Usage: "Extract the skill phrase with the chat model",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the search API over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed every stored profile",
				Action: reindexCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of profiles to embed in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N profiles",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed batches",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay between retries",
						Value: time.Second,
					},
				},
			},
		},
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB database directory",
	}
}

// setup loads the configuration and installs the default logger.
// --log-level wins over the configured level when given.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := setupLogger(c, cfg.LogLevel); err != nil {
		return err
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func setupLogger(c *cli.Context, levelStr string) error {
	level, err := config.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

// loadConfig returns the configuration prepared by setup with the command's
// own flags applied.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, ok := c.App.Metadata[configKey].(*config.Config)
	if !ok {
		return nil, fmt.Errorf("configuration not loaded")
	}
	if c.IsSet("db") {
		cfg.Database.Path = c.String("db")
	}
	if c.IsSet("in-memory") {
		cfg.Database.InMemory = c.Bool("in-memory")
	}
	if c.IsSet("datasets") {
		cfg.Datasets = c.String("datasets")
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}
	if c.IsSet("llm") {
		cfg.AI.UseLLMExtractor = c.Bool("llm")
	}
	return cfg, cfg.Validate()
}

func openEngine(cfg *config.Config) (*skillmatrix.Engine, error) {
	provider, err := newProvider(cfg.AIConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	opts := []skillmatrix.Option{skillmatrix.WithProvider(provider)}
	if cfg.Database.InMemory {
		opts = append(opts, skillmatrix.WithInMemory())
	}
	engine, err := skillmatrix.Open(cfg.Database.Path, opts...)
	if err != nil {
		provider.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return engine, nil
}
