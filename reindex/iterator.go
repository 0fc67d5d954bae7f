package reindex

import (
	"context"
	"slices"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

// DefaultBatchSize is the number of profiles handed to fn per call.
const DefaultBatchSize = 100

// ProfileIterator walks every stored profile in ingestion order.
type ProfileIterator struct {
	repo      storage.ProfileRepository
	batchSize int
}

// NewProfileIterator creates an iterator. Non-positive batch sizes fall back
// to DefaultBatchSize.
func NewProfileIterator(repo storage.ProfileRepository, batchSize int) *ProfileIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ProfileIterator{repo: repo, batchSize: batchSize}
}

// List loads every stored profile in ingestion order.
func (it *ProfileIterator) List(ctx context.Context) ([]*core.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return it.repo.ListProfiles(ctx)
}

// ForEach calls fn with consecutive batches of profiles. Iteration stops at
// the first error from fn or when ctx is done.
func (it *ProfileIterator) ForEach(ctx context.Context, profiles []*core.Profile, fn func([]*core.Profile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for batch := range slices.Chunk(profiles, it.batchSize) {
		if err := fn(batch); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
