package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidResource indicates a resource could not be decoded.
	ErrInvalidResource = errors.New("invalid resource")

	// ErrHierarchyCycle indicates the organisation hierarchy contains
	// a parent loop.
	ErrHierarchyCycle = errors.New("hierarchy cycle")
)

// EnrichmentError reports a failed enrichment of a single document.
// It carries the location of the resource being enriched and the
// stage that failed, and wraps the originating cause. One document's
// failure never aborts the indexing run as a whole.
type EnrichmentError struct {
	// Location of the resource whose document could not be enriched.
	Location string

	// Stage is a fixed, component-specific message.
	Stage string

	// Err is the originating cause.
	Err error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Stage, e.Location, e.Err)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

// NewEnrichmentError wraps cause into an EnrichmentError for the
// resource at location.
func NewEnrichmentError(location, stage string, cause error) *EnrichmentError {
	return &EnrichmentError{Location: location, Stage: stage, Err: cause}
}
