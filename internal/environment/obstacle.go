// Package environment provides the procedurally generated contents of the
// world grid: obstacles, resources, weather events, and the elemental
// affinity field.
package environment

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

// obstacleTerminationOdds is the chance of ending the obstacle walk on any
// given iteration. Low odds favor long, snaking chains.
const obstacleTerminationOdds = 0.05

// Obstacle is a contiguous, non-self-intersecting chain of grid cells that
// may interfere with actors, resources, and movement. A single obstacle may
// occupy more than one hex cell. Obstacles are immutable once created.
type Obstacle struct {
	uid     uuid.UUID
	cells   []hexgrid.Position
	element game.Element
}

// NewObstacle builds an Obstacle from an explicit chain of cells. The chain
// must be non-empty, free of repeats, and pairwise-adjacent in order.
func NewObstacle(cells []hexgrid.Position, element game.Element) (*Obstacle, error) {
	return restoreObstacle(uuid.New(), cells, element)
}

// RestoreObstacle rebuilds a persisted Obstacle, re-validating its chain.
func RestoreObstacle(uid uuid.UUID, cells []hexgrid.Position, element game.Element) (*Obstacle, error) {
	return restoreObstacle(uid, cells, element)
}

func restoreObstacle(uid uuid.UUID, cells []hexgrid.Position, element game.Element) (*Obstacle, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("environment: obstacle requires at least one cell")
	}
	for i := 1; i < len(cells); i++ {
		if !cells[i].IsNeighbor(cells[i-1]) {
			return nil, fmt.Errorf("environment: obstacle cells %s and %s are not contiguous", cells[i-1], cells[i])
		}
	}
	for i := range cells {
		if containsPosition(cells[:i], cells[i]) {
			return nil, fmt.Errorf("environment: obstacle cell %s repeats", cells[i])
		}
	}
	return &Obstacle{uid: uid, cells: cells, element: element}, nil
}

// RandomObstacle generates an obstacle with a uniformly random element tag.
func RandomObstacle(rng *rand.Rand, ctx game.Context) *Obstacle {
	return RandomObstacleWithElement(rng, ctx, game.RandomElement(rng))
}

// RandomObstacleWithElement generates a random obstacle anchored at a random
// origin, tagged with the given element.
func RandomObstacleWithElement(rng *rand.Rand, ctx game.Context, element game.Element) *Obstacle {
	return RandomObstacleAt(rng, ctx, hexgrid.RandomPosition(rng, ctx), element)
}

// RandomObstacleInField generates a random obstacle tagged with the field's
// element at its origin, so nearby obstacles trend toward the same element.
func RandomObstacleInField(rng *rand.Rand, ctx game.Context, field *ElementField) *Obstacle {
	origin := hexgrid.RandomPosition(rng, ctx)
	return RandomObstacleAt(rng, ctx, origin, field.ElementAt(origin))
}

// RandomObstacleAt generates a random obstacle anchored at the given origin,
// tagged with the given element. The walk extends the chain up to
// ctx.MaxObstacleLen cells; every early exit (termination roll, boxed-in
// cursor, exhausted budget) is a valid terminal state, so the result is
// always at least a single-cell chain.
func RandomObstacleAt(rng *rand.Rand, ctx game.Context, origin hexgrid.Position, element game.Element) *Obstacle {
	cells := walkChain(rng, ctx, origin, obstacleTerminationOdds)

	return &Obstacle{uid: uuid.New(), cells: cells, element: element}
}

// walkChain performs the self-avoiding random walk. The termination odds are
// a parameter so tests can pin them.
func walkChain(rng *rand.Rand, ctx game.Context, origin hexgrid.Position, terminationOdds float64) []hexgrid.Position {
	cells := []hexgrid.Position{origin}
	slog.Debug("obstacle walk started", "origin", origin.String())

	cursor := origin
	for i := 0; i < ctx.MaxObstacleLen; i++ {
		if rng.Float64() < terminationOdds {
			slog.Debug("obstacle walk terminated by roll", "cells", len(cells))
			break
		}

		// Re-roll the direction provider on each iteration so the walk does
		// not keep turning in the same pattern.
		provider := hexgrid.NewRandomProvider[hexgrid.Side](rng)

		// The cursor may be completely surrounded, in which case the
		// obstacle stops here.
		found := false
		for side, ok := provider.Next(); ok; side, ok = provider.Next() {
			trial := cursor
			if err := trial.Translate(side.Translation(), ctx); err != nil {
				continue // off the grid, try another direction
			}

			// The chain must not double back on an existing cell.
			if containsPosition(cells, trial) {
				continue
			}

			cursor = trial
			found = true
			break
		}

		if !found {
			slog.Debug("obstacle walk boxed in", "cells", len(cells))
			break
		}
		cells = append(cells, cursor)
	}

	return cells
}

// UID returns the obstacle's unique identity.
func (o *Obstacle) UID() uuid.UUID {
	return o.uid
}

// Cells returns the obstacle's chain of positions in generation order.
func (o *Obstacle) Cells() []hexgrid.Position {
	return o.cells
}

// Origin returns the first cell of the chain.
func (o *Obstacle) Origin() hexgrid.Position {
	return o.cells[0]
}

// Element returns the obstacle's elemental attribute.
func (o *Obstacle) Element() game.Element {
	return o.element
}

// Covers reports whether the obstacle occupies the given cell.
func (o *Obstacle) Covers(pos hexgrid.Position) bool {
	return containsPosition(o.cells, pos)
}

func containsPosition(cells []hexgrid.Position, pos hexgrid.Position) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}
