package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/ingestion"
	"github.com/alekhya-chintada/skillmatrix/match"
	"github.com/alekhya-chintada/skillmatrix/query"
	"github.com/alekhya-chintada/skillmatrix/reindex"
	"github.com/alekhya-chintada/skillmatrix/search"
	"github.com/alekhya-chintada/skillmatrix/server"
)

const shutdownTimeout = 10 * time.Second

func ingestCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	records, err := ingestion.LoadDir(cfg.Datasets)
	if err != nil {
		return fmt.Errorf("failed to load datasets: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found in %s", cfg.Datasets)
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	opts := []ingestion.Option{
		ingestion.WithBatchSize(cfg.Ingestion.BatchSize),
		ingestion.WithRetry(cfg.Ingestion.MaxRetries, cfg.Ingestion.RetryDelay),
	}
	if cfg.Ingestion.PoolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(cfg.Ingestion.PoolSize))
	}

	report, err := engine.Ingest(c.Context, records, opts...)
	if report != nil {
		fmt.Fprintf(c.App.Writer, "Stored %d profiles, indexed %d summaries.\n", report.Profiles, report.Embedded)
	}
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	return nil
}

func queryCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	opts := []search.Option{
		search.WithLimit(cfg.Search.Limit),
		search.WithFallbackK(cfg.Search.FallbackK),
	}
	if cfg.AI.UseLLMExtractor {
		opts = append(opts, search.WithExtractor(engine.Provider().PhraseExtractor()))
	}
	searcher, err := engine.NewSearcher(opts...)
	if err != nil {
		return err
	}

	var result *search.Result
	if raw := strings.TrimSpace(c.String("phrase")); raw != "" {
		result, err = searcher.Search(c.Context, match.ParsePhrase(query.Rewrite(strings.ToLower(raw))), raw)
	} else {
		text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
		if text == "" {
			return fmt.Errorf("a question or --phrase is required")
		}
		result, err = searcher.SearchText(c.Context, text)
	}
	if errors.Is(err, core.ErrNoPhrase) {
		return fmt.Errorf("could not extract skill phrase from query")
	}
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	printResult(c.App.Writer, result)
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	reg := prometheus.NewRegistry()
	opts := []search.Option{
		search.WithLimit(cfg.Search.Limit),
		search.WithFallbackK(cfg.Search.FallbackK),
		search.WithMonitor(search.NewMetricsMonitor(reg)),
	}
	if cfg.AI.UseLLMExtractor {
		opts = append(opts, search.WithExtractor(engine.Provider().PhraseExtractor()))
	}
	searcher, err := engine.NewSearcher(opts...)
	if err != nil {
		return err
	}

	srv, err := server.New(searcher, engine, server.WithGatherer(reg))
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.Server.Addr)
	}()
	fmt.Fprintf(c.App.ErrWriter, "Serving %d profiles on %s\n", engine.Corpus().Len(), cfg.Server.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if _, err := engine.NewReindexer(config, c.App.ErrWriter).Run(c.Context); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	return nil
}
