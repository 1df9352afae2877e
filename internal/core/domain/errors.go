package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingID indicates a source document arrived without an id.
	// This is a contract violation of the loading collaborator and
	// fails fast rather than being absorbed by the chunkers.
	ErrMissingID = errors.New("document id is required")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateSection indicates two chunks collided on the same
	// (doc, section) key while building a corpus snapshot.
	ErrDuplicateSection = errors.New("duplicate section key")

	// ErrGeneratorUnavailable indicates no answer generator is
	// configured. Answer assembly is disabled without one.
	ErrGeneratorUnavailable = errors.New("generator unavailable")
)
