package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrEmptyEmployeeID indicates the EmployeeID field is empty.
	ErrEmptyEmployeeID = errors.New("employee id cannot be empty")

	// ErrDuplicateSkill indicates two skills on a profile share a normalized name.
	ErrDuplicateSkill = errors.New("duplicate skill")

	// ErrNoPhrase indicates no skill phrase could be obtained from a query.
	ErrNoPhrase = errors.New("no phrase available")
)
