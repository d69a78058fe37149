package hexgrid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a position whose coordinates exceed the grid radius.
// Callers moving along the grid edge are expected to handle it, typically by
// trying another direction.
var ErrOutOfBounds = errors.New("hexgrid: position out of bounds")

// SumNotZeroError reports components that violate the cube-coordinate
// identity x + y + z == 0.
type SumNotZeroError struct {
	X, Y, Z int
}

func (e *SumNotZeroError) Error() string {
	return fmt.Sprintf("hexgrid: components (%d, %d, %d) do not sum to zero", e.X, e.Y, e.Z)
}

// InvalidParamError reports a caller-supplied parameter that makes the
// requested operation unsatisfiable.
type InvalidParamError struct {
	Param string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("hexgrid: invalid parameter: %s", e.Param)
}
