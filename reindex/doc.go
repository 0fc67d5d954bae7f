// Package reindex re-embeds stored profiles into the vector index, typically
// after the embedding model changes.
//
// Profiles are read from the profile repository in ingestion order, embedded
// in batches with retry and exponential backoff, normalized to unit length
// and upserted. Progress is written to a caller-supplied writer.
package reindex
