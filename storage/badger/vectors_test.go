package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekhya-chintada/skillmatrix/storage"
)

func hitIDs(hits []storage.Hit) []string {
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestVectorIndex_Query(t *testing.T) {
	_, index := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx,
		storage.Document{ID: "north", Vector: []float32{0, 1}, Metadata: map[string]string{"empID": "north"}},
		storage.Document{ID: "east", Vector: []float32{1, 0}, Metadata: map[string]string{"empID": "east"}},
		storage.Document{ID: "northeast", Vector: []float32{1, 1}, Metadata: map[string]string{"empID": "northeast"}},
	))

	hits, err := index.Query(ctx, []float32{0.9, 0.1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"east", "northeast"}, hitIDs(hits))
	assert.InDelta(t, 0.9939, hits[0].Score, 0.001)
	assert.Equal(t, "east", hits[0].Metadata["empID"])

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestVectorIndex_TiesKeepInsertionOrder(t *testing.T) {
	_, index := newTestStores(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, index.Upsert(ctx, storage.Document{ID: id, Vector: []float32{1, 0}}))
	}

	hits, err := index.Query(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, hitIDs(hits))
}

func TestVectorIndex_UpsertReplaces(t *testing.T) {
	_, index := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx,
		storage.Document{ID: "a", Vector: []float32{1, 0}},
		storage.Document{ID: "b", Vector: []float32{1, 0}},
	))
	require.NoError(t, index.Upsert(ctx, storage.Document{ID: "a", Vector: []float32{1, 0}, Metadata: map[string]string{"v": "2"}}))

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	hits, err := index.Query(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, hitIDs(hits))
	assert.Equal(t, "2", hits[0].Metadata["v"])
}

func TestVectorIndex_InvalidInput(t *testing.T) {
	_, index := newTestStores(t)
	ctx := context.Background()

	_, err := index.Query(ctx, []float32{1}, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)

	err = index.Upsert(ctx, storage.Document{Vector: []float32{1}})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestVectorIndex_SkipsEmptyVectors(t *testing.T) {
	_, index := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx,
		storage.Document{ID: "empty"},
		storage.Document{ID: "full", Vector: []float32{1}},
	))
	hits, err := index.Query(ctx, []float32{1}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"full"}, hitIDs(hits))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{2, 0}, []float32{5, 0}), 1e-6)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.Equal(t, float32(0), cosine([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, float32(0), cosine(nil, []float32{1}))
}

func TestVectorIndex_Clear(t *testing.T) {
	_, index := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx,
		storage.Document{ID: "a", Vector: []float32{1, 0}},
		storage.Document{ID: "b", Vector: []float32{0, 1}},
	))
	require.NoError(t, index.Clear(ctx))

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// New documents still rank by insertion after a clear.
	require.NoError(t, index.Upsert(ctx, storage.Document{ID: "c", Vector: []float32{1, 0}}))
	require.NoError(t, index.Upsert(ctx, storage.Document{ID: "a", Vector: []float32{1, 0}}))
	hits, err := index.Query(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, hitIDs(hits))
}
