// Package faults defines the error taxonomy shared by the program state
// machine, the chat protocol, and the session registry. Callers classify
// failures with errors.Is against the sentinel values or errors.As against
// the typed wrappers.
package faults

import (
	"errors"
	"fmt"
)

// Sentinel kinds for errors.Is checks.
var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidState = errors.New("invalid state")
	ErrGeneration   = errors.New("generation error")
	ErrNotFound     = errors.New("not found")
)

// ValidationError reports malformed or incomplete caller input.
// The operation is rejected without any state change.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return "validation: " + e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidStateError reports an operation attempted in a state that forbids
// it, e.g. re-submitting a diagnostic on an active program.
type InvalidStateError struct {
	Entity string // "program", "lesson", "session"
	State  string // the state the entity is in
	Op     string // the rejected operation
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s in state %q does not allow %s", e.Entity, e.State, e.Op)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// GenerationError reports that the content gateway produced empty or
// malformed output. The enclosing operation is aborted and prior state
// is left intact.
type GenerationError struct {
	Stage string // "quiz", "evaluate", "lesson", "mastery"
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
	}
	return "generation failed at " + e.Stage
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

// NotFoundError reports an unknown program, lesson, or session identifier.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
