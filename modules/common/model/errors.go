package model

import "fmt"

// ErrorKind - classification of a generation failure. The orchestrator treats
// every kind the same way (apply the offline fallback); the kind is kept for
// logging and for tests.
type ErrorKind string

const (
	// ErrNetwork - transport failure, timeout or non-2xx status
	ErrNetwork ErrorKind = "network"
	// ErrEnvelope - response envelope had no usable candidates/parts
	ErrEnvelope ErrorKind = "envelope"
	// ErrFormat - extracted text was not the expected JSON shape
	ErrFormat ErrorKind = "format"
	// ErrStore - history persistence failure, non-fatal for generation
	ErrStore ErrorKind = "store"
)

// GenerationError - typed failure from the generation client or store.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation error (%s)", e.Kind)
	}
	return fmt.Sprintf("generation error (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError - wrap err with a failure kind
func NewGenerationError(kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}
