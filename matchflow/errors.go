package matchflow

import "errors"

// Error taxonomy for the match request workflow. Handlers map these to HTTP
// statuses; everything else coming out of the engine is an internal failure.
var (
	// ErrNotFound means a referenced match request, mentee, mentor or answer
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateRequest means the mentee already has a live request toward
	// this mentor.
	ErrDuplicateRequest = errors.New("an active match request already exists for this pair")

	// ErrInvalidStateTransition means the request is not in the state the
	// operation requires, e.g. a guardian decision submitted twice.
	ErrInvalidStateTransition = errors.New("decision already made")

	// ErrWindowExpired means the guardian responded after the consent
	// deadline. Detecting this also performs the expiry transition.
	ErrWindowExpired = errors.New("consent window expired")

	// ErrValidation means malformed input, rejected before any mutation.
	ErrValidation = errors.New("validation failed")
)
