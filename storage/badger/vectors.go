package badger

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

// VectorIndex implements storage.VectorIndex for BadgerDB with a brute-force
// cosine scan. Equal scores keep insertion order.
type VectorIndex struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.VectorIndex = (*VectorIndex)(nil)

// NewVectorIndex creates a new VectorIndex.
func NewVectorIndex(backend *Backend) (*VectorIndex, error) {
	seq, err := backend.GetSequence(vectorSeq)
	if err != nil {
		return nil, err
	}
	return &VectorIndex{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the insertion sequence.
func (v *VectorIndex) Close() error {
	return v.seq.Release()
}

// Upsert inserts or replaces documents. A replaced document keeps its
// original insertion position.
func (v *VectorIndex) Upsert(ctx context.Context, docs ...storage.Document) error {
	return v.backend.Update(func(tx *badger.Txn) error {
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if doc.ID == "" {
				return fmt.Errorf("%w: document id is empty", storage.ErrInvalidQuery)
			}
			key := makeVectorKey(core.IDFromContent(doc.ID))

			seq, err := v.existingSeq(tx, key)
			if err != nil {
				return err
			}
			if seq == 0 {
				if seq, err = v.nextSeq(); err != nil {
					return err
				}
			}
			if err := tx.Set(key, storage.MarshalDocument(doc, seq)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Query returns up to k hits ordered by decreasing cosine similarity.
func (v *VectorIndex) Query(ctx context.Context, vector []float32, k int) ([]storage.Hit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", storage.ErrInvalidQuery, k)
	}

	type scored struct {
		hit storage.Hit
		seq uint64
	}
	var results []scored

	err := v.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				doc storage.Document
				seq uint64
			)
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, seq, err = storage.UnmarshalDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			if len(doc.Vector) == 0 {
				continue
			}
			results = append(results, scored{
				hit: storage.Hit{ID: doc.ID, Score: cosine(vector, doc.Vector), Metadata: doc.Metadata},
				seq: seq,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, then insertion order
	slices.SortFunc(results, func(a, b scored) int {
		return cmp.Or(cmp.Compare(b.hit.Score, a.hit.Score), cmp.Compare(a.seq, b.seq))
	})

	if len(results) > k {
		results = results[:k]
	}
	hits := make([]storage.Hit, len(results))
	for i, r := range results {
		hits[i] = r.hit
	}
	return hits, nil
}

// Count returns the number of stored documents.
func (v *VectorIndex) Count(ctx context.Context) (int, error) {
	count := 0
	err := v.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Clear removes every stored document. Insertion sequence numbers are not
// reused afterwards.
func (v *VectorIndex) Clear(ctx context.Context) error {
	return v.backend.Update(func(tx *badger.Txn) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return deletePrefix(tx, []byte(vectorPrefix))
	})
}

func (v *VectorIndex) existingSeq(tx *badger.Txn, key []byte) (uint64, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	var seq uint64
	err = item.Value(func(val []byte) error {
		var err error
		_, seq, err = storage.UnmarshalDocument(val)
		return err
	})
	return seq, err
}

// nextSeq returns a non-zero insertion sequence number.
func (v *VectorIndex) nextSeq() (uint64, error) {
	next, err := v.seq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if next == 0 {
		return v.seq.Next()
	}
	return next, nil
}

// cosine returns the cosine similarity of a and b over their common prefix.
// Zero vectors score 0.
func cosine(a, b []float32) float32 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
