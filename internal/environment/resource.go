package environment

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

// ResourceState is the six-step fill level of a resource. Consumption steps
// it down one level at a time; replenishment steps it back up.
type ResourceState uint8

const (
	StateDepleted ResourceState = iota
	StateLow
	StatePartial
	StateHigh
	StateFull
	StateOverflow
)

// Resource is an actor-usable feature of the environment — a campfire, a
// pond, and the like — that boosts elementally-aligned abilities for actors
// within its radius.
type Resource struct {
	uid     uuid.UUID
	element game.Element
	state   ResourceState
	origin  hexgrid.Position
	radius  int
}

// NewResource builds a resource at the given origin.
func NewResource(element game.Element, state ResourceState, origin hexgrid.Position, radius int) *Resource {
	return &Resource{
		uid:     uuid.New(),
		element: element,
		state:   state,
		origin:  origin,
		radius:  radius,
	}
}

// RestoreResource rebuilds a persisted resource with its original identity.
func RestoreResource(uid uuid.UUID, element game.Element, state ResourceState, origin hexgrid.Position, radius int) *Resource {
	return &Resource{uid: uid, element: element, state: state, origin: origin, radius: radius}
}

// RandomResource generates a random resource whose disc lies fully inside
// the grid, tagged with a uniformly random element.
func RandomResource(rng *rand.Rand, ctx game.Context) *Resource {
	r := randomResourcePlacement(rng, ctx)
	r.element = game.RandomElement(rng)
	return r
}

// RandomResourceInField generates a random resource tagged with the field's
// element at its origin.
func RandomResourceInField(rng *rand.Rand, ctx game.Context, field *ElementField) *Resource {
	r := randomResourcePlacement(rng, ctx)
	r.element = field.ElementAt(r.origin)
	return r
}

// randomResourcePlacement draws everything but the element. A hand-built
// Context may carry a zero radius cap, in which case every resource is a
// single cell.
func randomResourcePlacement(rng *rand.Rand, ctx game.Context) *Resource {
	state := ResourceState(rng.Intn(int(StateOverflow) + 1))

	radius := 0
	if ctx.MaxResourceRadius > 0 {
		radius = rng.Intn(ctx.MaxResourceRadius)
	}

	// Constrained draw keeps the whole disc on the grid; the radius is
	// strictly below MaxResourceRadius, which is itself below the grid
	// radius, so the margin is always satisfiable.
	origin, _ := hexgrid.RandomPositionConstrained(rng, ctx, radius)

	return &Resource{
		uid:    uuid.New(),
		state:  state,
		origin: origin,
		radius: radius,
	}
}

// Consume draws the resource down one step and returns the potency boost
// magnitude of its prior state. Returns false once depleted.
func (r *Resource) Consume() (int, bool) {
	initial := r.state
	if initial == StateDepleted {
		return 0, false
	}
	r.state = initial - 1
	return int(initial), true
}

// Replenish raises the resource's state by the given magnitude, capped at
// Overflow.
func (r *Resource) Replenish(mag int) {
	v := int(r.state) + mag
	if v > int(StateOverflow) {
		v = int(StateOverflow)
	}
	r.state = ResourceState(v)
}

// Intensify grows the resource's radius by the given magnitude, capped at
// the context's resource radius limit.
func (r *Resource) Intensify(mag int, ctx game.Context) {
	r.radius += mag
	if r.radius > ctx.MaxResourceRadius {
		r.radius = ctx.MaxResourceRadius
	}
}

// Covers reports whether the given cell lies within the resource's radius.
func (r *Resource) Covers(pos hexgrid.Position) bool {
	return r.origin.DeltaTo(pos).Magnitude() <= r.radius
}

// UID returns the resource's unique identity.
func (r *Resource) UID() uuid.UUID {
	return r.uid
}

// Element returns the resource's elemental attribute.
func (r *Resource) Element() game.Element {
	return r.element
}

// State returns the resource's current fill level.
func (r *Resource) State() ResourceState {
	return r.state
}

// Origin returns the resource's center cell.
func (r *Resource) Origin() hexgrid.Position {
	return r.origin
}

// Radius returns the resource's current radius in cells.
func (r *Resource) Radius() int {
	return r.radius
}

// String returns a human-readable name for the state.
func (s ResourceState) String() string {
	switch s {
	case StateDepleted:
		return "Depleted"
	case StateLow:
		return "Low"
	case StatePartial:
		return "Partial"
	case StateHigh:
		return "High"
	case StateFull:
		return "Full"
	case StateOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}
