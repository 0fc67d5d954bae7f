package storage

import "errors"

var (
	// ErrNotFound is returned when no profile is stored under an employee ID.
	ErrNotFound = errors.New("profile not found")

	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidQuery reports a malformed upsert or nearest-neighbour request,
	// such as a document without an ID or a non-positive k.
	ErrInvalidQuery = errors.New("invalid vector index request")

	// ErrSerializationFailed wraps mus-go decode failures and corrupt length
	// prefixes.
	ErrSerializationFailed = errors.New("decode stored value")

	// ErrTruncatedData reports a stored value shorter than its encoding claims.
	ErrTruncatedData = errors.New("stored value truncated")
)
