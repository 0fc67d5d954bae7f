package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

// Config holds configuration for a reindex run.
type Config struct {
	// BatchSize is the number of profiles embedded per request
	BatchSize int

	// ReportInterval is how often to report progress (number of profiles)
	ReportInterval int

	// MaxRetries is the maximum number of embedding attempts per batch
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer rebuilds the vector index from the stored profiles.
type Reindexer struct {
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *ProfileIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.ProfileRepository, index storage.VectorIndex, embedder ai.Embedder, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reindexer{
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(index, embedder, config.MaxRetries, config.RetryDelay),
		iterator:  NewProfileIterator(repo, config.BatchSize),
	}
}

// Run re-embeds every stored profile and returns the number of documents
// written to the index.
func (r *Reindexer) Run(ctx context.Context) (int, error) {
	profiles, err := r.iterator.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	total := len(profiles)
	if total == 0 {
		fmt.Fprintf(r.progress, "No profiles found in database (0 profiles)\n")
		return 0, nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d profiles (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	written := 0
	err = r.iterator.ForEach(ctx, profiles, func(batch []*core.Profile) error {
		n, err := r.processor.Process(ctx, batch)
		if err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}
		written += n
		tracker.Increment(len(batch))
		return nil
	})
	if err != nil {
		return written, err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d profiles in %v (%.1f profiles/sec)\n",
		total, elapsed.Round(time.Millisecond), float64(total)/max(elapsed.Seconds(), 1e-9))

	return written, nil
}
