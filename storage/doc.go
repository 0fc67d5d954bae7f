// Package storage defines where profiles and their vectors live between
// ingestion runs.
//
// ProfileRepository holds the normalized profile set, replaced wholesale on
// every ingest and read back in ingestion order to build the in-memory
// corpus. VectorIndex holds one Document per profile (the embedded summary
// plus the metadata bag the semantic fallback turns back into a profile) and
// answers nearest-neighbour queries by cosine similarity.
//
// Values are encoded with mus-go (serialization.go). storage/badger is the
// only backend; NewMemoryStores opens it in memory for tests:
//
//	profiles, index, backend, err := badger.NewMemoryStores()
//
// Implementations are safe for concurrent use and honour context
// cancellation between records.
package storage
