package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a simulation is created with a non-positive size.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidRun is returned by Start for a negative delay or iteration count other than Forever.
	ErrInvalidRun = errors.New("invalid run parameters")
)

// OutOfBoundsError reports a mutation addressed to a cell outside the grid.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("there is no such position in the world as [%d,%d]", e.X, e.Y)
}

// IsOutOfBounds reports whether err carries an *OutOfBoundsError
func IsOutOfBounds(err error) bool {
	var oob *OutOfBoundsError
	return errors.As(err, &oob)
}
