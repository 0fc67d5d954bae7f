package badger

import "github.com/alekhya-chintada/skillmatrix/storage"

// NewMemoryStores creates in-memory profile and vector stores for testing.
// Returns profiles, index, backend, and error.
// Caller must close both stores and the backend when done.
func NewMemoryStores() (storage.ProfileRepository, storage.VectorIndex, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	index, err := NewVectorIndex(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	return NewProfileRepository(backend), index, backend, nil
}
