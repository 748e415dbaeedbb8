package menu

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error class raised by the menu core.
var ErrInvalidArgument = errors.New("invalid argument")

// IndexError reports a selection outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("menu index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidArgument
}
