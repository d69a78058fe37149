package hexgrid

import (
	"math"
	"math/rand"
)

// Direction constrains Provider to the two hex direction enums.
type Direction interface {
	Side | Vertex
	Angle() float64
}

// Provider walks the six directions in rotational order starting immediately
// after an arbitrary start direction. It is a finite iterator: exactly six
// directions are yielded, each exactly once, and a fresh Provider is
// constructed for every new search.
type Provider[T Direction] struct {
	cur T
	idx int
}

// NewProvider returns a Provider whose first yielded direction is the one
// after start. The start direction itself is yielded last.
func NewProvider[T Direction](start T) *Provider[T] {
	return &Provider[T]{cur: start}
}

// NewRandomProvider returns a Provider started at a uniformly random
// direction, used to avoid directional bias when searching for a free
// neighbor cell.
func NewRandomProvider[T Direction](rng *rand.Rand) *Provider[T] {
	return NewProvider(directionFromAngle[T](rng.Float64() * 2 * math.Pi))
}

// Count returns the total number of directions the Provider yields.
func (p *Provider[T]) Count() int {
	return NumDirections
}

// Next advances the current direction by π/3 and yields it. The second
// return is false once all six directions have been produced.
func (p *Provider[T]) Next() (T, bool) {
	theta := p.cur.Angle() + math.Pi/3
	p.idx++
	p.cur = directionFromAngle[T](theta)

	if p.idx > NumDirections {
		var zero T
		return zero, false
	}
	return p.cur, true
}

func directionFromAngle[T Direction](theta float64) T {
	var zero T
	switch any(zero).(type) {
	case Side:
		return any(SideFromAngle(theta)).(T)
	case Vertex:
		return any(VertexFromAngle(theta)).(T)
	default:
		panic("hexgrid: unsupported direction type")
	}
}
