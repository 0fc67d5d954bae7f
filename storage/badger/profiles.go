package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) *ProfileRepository {
	return &ProfileRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (r *ProfileRepository) Close() error {
	return nil
}

// ReplaceProfiles drops the stored profile set and writes profiles in its
// place within a single transaction.
func (r *ProfileRepository) ReplaceProfiles(ctx context.Context, profiles ...*core.Profile) error {
	err := r.backend.Update(func(tx *badger.Txn) error {
		if err := deletePrefix(tx, []byte(profilePrefix)); err != nil {
			return err
		}
		if err := deletePrefix(tx, []byte(profileOrderPrefix)); err != nil {
			return err
		}

		for i, p := range profiles {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := core.ValidateProfile(p); err != nil {
				return err
			}
			id := p.StorageID()
			if err := tx.Set(makeProfileKey(id), storage.MarshalProfile(p)); err != nil {
				return err
			}
			if err := tx.Set(makeProfileOrderKey(uint64(i)), storage.MarshalID(id)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace profiles: %w", err)
	}

	r.backend.logger.Debug("replaced profile set", "count", len(profiles))
	return nil
}

// GetProfile retrieves a single profile by employee ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, employeeID string) (*core.Profile, error) {
	var profile *core.Profile
	err := r.backend.View(func(tx *badger.Txn) error {
		var err error
		profile, err = readProfile(tx, core.IDFromContent(employeeID))
		return err
	})
	return profile, err
}

// ListProfiles returns every stored profile in ingestion order.
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*core.Profile, error) {
	var profiles []*core.Profile
	err := r.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileOrderPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}
			p, err := readProfile(tx, id)
			if err != nil {
				return err
			}
			profiles = append(profiles, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func readProfile(tx *badger.Txn, id core.ID) (*core.Profile, error) {
	item, err := tx.Get(makeProfileKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var profile *core.Profile
	err = item.Value(func(val []byte) error {
		var err error
		profile, err = storage.UnmarshalProfile(val)
		return err
	})
	return profile, err
}
