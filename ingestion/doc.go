// Package ingestion loads employee dataset files, normalizes them into
// profiles and indexes them.
//
// The Pipeline type manages the ingestion workflow:
//   - Building profiles from raw records (BuildProfiles)
//   - Replacing the stored profile set
//   - Embedding profile summaries concurrently on a worker pool
//   - Upserting the vectors into the vector index
//
// Ingest waits for every embedding batch and returns the first failure.
package ingestion
