package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP status
// codes; everything else is a 500.
var (
	// ErrNotFound: the referenced document does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation: the request violates a business rule (bad offset,
	// non-contiguous merge run, empty script, ...).
	ErrValidation = errors.New("validation failed")
	// ErrConflict: the operation races with existing state (active QA job,
	// duplicate version number that kept conflicting).
	ErrConflict = errors.New("conflict")
	// ErrExtraction: a web page yielded no usable text.
	ErrExtraction = errors.New("extraction failed")
	// ErrJobFailed: an async QA job ended in failure.
	ErrJobFailed = errors.New("job failed")
)
