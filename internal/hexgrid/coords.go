// Package hexgrid implements the cube-coordinate algebra for the hexagonal
// world grid, along with the six-direction enums and iteration support.
//
// (0, 0, 0) is the centermost hexagon. The X, Y, and Z axes point "East",
// "NorthWest", and "SouthWest" respectively, and every valid coordinate
// triple sums to zero. The six neighbors of the origin are:
//
//	NorthEast ( 1,  0, -1)    North ( 0,  1, -1)    NorthWest (-1,  1,  0)
//	SouthWest (-1,  0,  1)    South ( 0, -1,  1)    SouthEast ( 1, -1,  0)
package hexgrid

import (
	"fmt"
	"math/rand"

	"github.com/talgya/hexforge/internal/game"
)

// Position is a point on the hex grid in cube coordinates. The zero value is
// the origin. Positions are value types; the only mutating operation is
// Translate, which re-validates before committing.
type Position struct {
	x, y, z int
}

// Translation is a displacement between two grid cells. It satisfies the
// same sum-to-zero identity as Position but is grid-independent, so it is
// never bounds-checked.
type Translation struct {
	x, y, z int
}

// NewPosition validates the components against the cube-coordinate identity
// and the grid radius before constructing a Position.
func NewPosition(x, y, z int, ctx game.Context) (Position, error) {
	pos := Position{x, y, z}
	if err := pos.validate(ctx); err != nil {
		return Position{}, err
	}
	return pos, nil
}

// Origin returns the center cell (0, 0, 0), valid for any positive radius.
func Origin() Position {
	return Position{}
}

// RandomPosition returns a uniformly random valid Position within the grid.
func RandomPosition(rng *rand.Rand, ctx game.Context) Position {
	pos, _ := RandomPositionConstrained(rng, ctx, 0)
	return pos
}

// RandomPositionConstrained returns a random valid Position at least
// distFromEdge cells away from the grid boundary. Fails with an
// InvalidParamError when the margin is negative or leaves no room inside
// the grid.
//
// The second coordinate's sampling range depends on the sign of the first,
// which keeps the result inside the hexagonal bound rather than its bounding
// parallelogram.
func RandomPositionConstrained(rng *rand.Rand, ctx game.Context, distFromEdge int) (Position, error) {
	if distFromEdge < 0 || distFromEdge >= ctx.GridRadius {
		return Position{}, &InvalidParamError{Param: "distFromEdge"}
	}

	maxDist := ctx.GridRadius - distFromEdge

	x := rng.Intn(2*maxDist) - maxDist
	var y int
	switch {
	case x < 0:
		y = rng.Intn(-x) // X is negative, generate a bounded-positive Y
	case x == 0:
		y = rng.Intn(2*maxDist) - maxDist // X is 0, generate an unbounded Y
	default:
		y = rng.Intn(x) - x // X is positive, generate a bounded-negative Y
	}
	z := 0 - x - y // Position must meet the x + y + z == 0 requirement

	return Position{x, y, z}, nil
}

// X returns the x component.
func (p Position) X() int { return p.x }

// Y returns the y component.
func (p Position) Y() int { return p.y }

// Z returns the z component.
func (p Position) Z() int { return p.z }

// DeltaFrom returns the translation required to move from the given
// position to this one.
func (p Position) DeltaFrom(other Position) Translation {
	return Translation{
		x: p.x - other.x,
		y: p.y - other.y,
		z: p.z - other.z,
	}
}

// DeltaTo returns the translation required to move from this position to
// the given one.
func (p Position) DeltaTo(other Position) Translation {
	return Translation{
		x: other.x - p.x,
		y: other.y - p.y,
		z: other.z - p.z,
	}
}

// Translate moves the position by the given translation. The move is
// validated first; on failure the position is left unchanged.
func (p *Position) Translate(trans Translation, ctx game.Context) error {
	moved := Position{
		x: p.x + trans.x,
		y: p.y + trans.y,
		z: p.z + trans.z,
	}
	if err := moved.validate(ctx); err != nil {
		return err
	}
	*p = moved
	return nil
}

// IsNeighbor reports whether the given position is adjacent to this one.
func (p Position) IsNeighbor(other Position) bool {
	// A translation magnitude of one means the cells share an edge.
	return p.DeltaFrom(other).Magnitude() == 1
}

// String renders the position as "(x,y,z)". ParsePosition is the inverse.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.x, p.y, p.z)
}

// ParsePosition parses the "(x,y,z)" form produced by Position.String and
// validates the result against the given context.
func ParsePosition(s string, ctx game.Context) (Position, error) {
	var x, y, z int
	if _, err := fmt.Sscanf(s, "(%d,%d,%d)", &x, &y, &z); err != nil {
		return Position{}, fmt.Errorf("hexgrid: parse position %q: %w", s, err)
	}
	return NewPosition(x, y, z, ctx)
}

func (p Position) validate(ctx game.Context) error {
	if p.x+p.y+p.z != 0 {
		return &SumNotZeroError{X: p.x, Y: p.y, Z: p.z}
	}
	if abs(p.x) > ctx.GridRadius || abs(p.y) > ctx.GridRadius || abs(p.z) > ctx.GridRadius {
		return ErrOutOfBounds
	}
	return nil
}

// NewTranslation validates the components against the cube-coordinate
// identity. Translations carry no bounds, so the grid radius is not checked.
func NewTranslation(x, y, z int) (Translation, error) {
	if x+y+z != 0 {
		return Translation{}, &SumNotZeroError{X: x, Y: y, Z: z}
	}
	return Translation{x, y, z}, nil
}

// X returns the x component.
func (t Translation) X() int { return t.x }

// Y returns the y component.
func (t Translation) Y() int { return t.y }

// Z returns the z component.
func (t Translation) Z() int { return t.z }

// Magnitude returns the minimum number of hops required to accomplish the
// translation, which for cube coordinates is the largest absolute component.
func (t Translation) Magnitude() int {
	m := abs(t.x)
	if abs(t.y) > m {
		m = abs(t.y)
	}
	if abs(t.z) > m {
		m = abs(t.z)
	}
	return m
}

// Neg returns the opposite translation.
func (t Translation) Neg() Translation {
	return Translation{x: -t.x, y: -t.y, z: -t.z}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
