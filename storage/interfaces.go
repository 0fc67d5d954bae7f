package storage

import (
	"context"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// ProfileRepository persists the normalized profile set.
// Implementations must be thread-safe and support concurrent access.
type ProfileRepository interface {
	// ReplaceProfiles atomically replaces the stored profile set.
	// Order is preserved and reported back by ListProfiles.
	ReplaceProfiles(ctx context.Context, profiles ...*core.Profile) error

	// GetProfile retrieves a single profile by employee ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, employeeID string) (*core.Profile, error)

	// ListProfiles returns every stored profile in ingestion order.
	ListProfiles(ctx context.Context) ([]*core.Profile, error)

	// Close releases repository resources. The backend stays open.
	Close() error
}

// VectorIndex stores profile vectors and answers nearest-neighbor queries.
type VectorIndex interface {
	// Upsert inserts or replaces documents keyed by Document.ID.
	Upsert(ctx context.Context, docs ...Document) error

	// Query returns up to k documents ordered by decreasing similarity to vector.
	// Returns ErrInvalidQuery if k is not positive.
	Query(ctx context.Context, vector []float32, k int) ([]Hit, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Clear removes every document.
	Clear(ctx context.Context) error

	// Close releases index resources. The backend stays open.
	Close() error
}
