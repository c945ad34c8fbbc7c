package bar

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a frame carries no series
	ErrEmptyInput = errors.New("bar: empty input")
	// ErrTooWide is returned when the series do not fit the surface at the cell width
	ErrTooWide = errors.New("bar: cannot fit data on screen")
	// ErrOutOfRange is returned when a value falls outside the display range
	ErrOutOfRange = errors.New("bar: value outside display range")
)

// InitError reports a surface that cannot host the renderer
type InitError struct {
	Reason string
	Err    error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bar: init: %s: %v", e.Reason, e.Err)
	}
	return "bar: init: " + e.Reason
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OptionError reports a rejected option value
type OptionError struct {
	Field  string
	Value  any
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("bar: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
