package propfolio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every parameter validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivisionByZero is returned when a ratio has a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
)

// FieldError reports an out-of-domain parameter.
type FieldError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes every FieldError match ErrInvalidInput.
func (e *FieldError) Unwrap() error { return ErrInvalidInput }
