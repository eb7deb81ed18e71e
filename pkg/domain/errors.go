package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by errors.Is for every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// ErrDateNotFound is returned by a DateStore when no target date is persisted.
var ErrDateNotFound = errors.New("date not found")

// ErrTransitionLimit is matched by errors.Is for every *TransitionLimitError.
var ErrTransitionLimit = errors.New("transition limit exceeded")

// InvalidInputError reports a value that does not have the shape of an Input.
type InvalidInputError struct {
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: expected {id: string, parameters: map}, got %T", e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// TransitionLimitError reports a dispatch that kept transitioning (or nesting
// dispatches) beyond the configured bound.
type TransitionLimitError struct {
	Input InputID
	State StateName
	Limit int
}

func (e *TransitionLimitError) Error() string {
	return fmt.Sprintf("input '%s' exceeded %d transitions (last state '%s')", e.Input, e.Limit, e.State)
}

func (e *TransitionLimitError) Unwrap() error {
	return ErrTransitionLimit
}
