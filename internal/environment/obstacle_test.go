package environment

import (
	"math/rand"
	"testing"

	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

func TestWalkChainZeroOddsFullLength(t *testing.T) {
	// Large grid, origin at the center, termination roll disabled: nothing
	// can stop the walk short of its budget. With a budget of 5 the chain
	// can never box itself in (that takes at least 7 cells).
	ctx := game.NewContext(20, 5)
	rng := rand.New(rand.NewSource(13))

	cells := walkChain(rng, ctx, hexgrid.Origin(), 0)

	if len(cells) != ctx.MaxObstacleLen+1 {
		t.Fatalf("chain length = %d, want %d", len(cells), ctx.MaxObstacleLen+1)
	}
	assertValidChain(t, cells)
}

func TestWalkChainConfinedToTinyGrid(t *testing.T) {
	// A radius-1 grid has only 7 cells; the walk must stop when boxed in
	// even with a large budget and no termination roll.
	ctx := game.NewContext(1, 20)
	rng := rand.New(rand.NewSource(17))

	for i := 0; i < 50; i++ {
		cells := walkChain(rng, ctx, hexgrid.Origin(), 0)
		if len(cells) > 7 {
			t.Fatalf("chain length %d exceeds cell count of a radius-1 grid", len(cells))
		}
		assertValidChain(t, cells)
	}
}

func TestRandomObstacleInvariants(t *testing.T) {
	ctx := game.DefaultContext()
	rng := rand.New(rand.NewSource(19))

	for i := 0; i < 200; i++ {
		o := RandomObstacle(rng, ctx)

		if len(o.Cells()) == 0 {
			t.Fatal("obstacle has no cells")
		}
		if len(o.Cells()) > ctx.MaxObstacleLen+1 {
			t.Fatalf("obstacle has %d cells, budget allows %d", len(o.Cells()), ctx.MaxObstacleLen+1)
		}
		if o.Element() == game.ElementUnset {
			t.Fatal("obstacle tagged with ElementUnset")
		}
		if o.Origin() != o.Cells()[0] {
			t.Fatal("origin is not the first cell of the chain")
		}
		assertValidChain(t, o.Cells())
	}
}

func TestRandomObstacleAtAnchorsOrigin(t *testing.T) {
	ctx := game.DefaultContext()
	rng := rand.New(rand.NewSource(29))
	origin, _ := hexgrid.NewPosition(3, -1, -2, ctx)

	for i := 0; i < 50; i++ {
		o := RandomObstacleAt(rng, ctx, origin, game.ElementIce)
		if o.Origin() != origin {
			t.Fatalf("obstacle origin = %s, want %s", o.Origin(), origin)
		}
		if o.Element() != game.ElementIce {
			t.Fatalf("obstacle element = %v, want Ice", o.Element())
		}
		assertValidChain(t, o.Cells())
	}
}

func TestRandomObstacleInFieldTagsFromOwnOrigin(t *testing.T) {
	ctx := game.DefaultContext()
	rng := rand.New(rand.NewSource(37))
	field := NewElementField(42)

	for i := 0; i < 50; i++ {
		o := RandomObstacleInField(rng, ctx, field)
		if want := field.ElementAt(o.Origin()); o.Element() != want {
			t.Fatalf("obstacle at %s tagged %v, field says %v", o.Origin(), o.Element(), want)
		}
	}
}

func TestNewObstacleValidation(t *testing.T) {
	ctx := game.DefaultContext()

	a := hexgrid.Origin()
	b, _ := hexgrid.NewPosition(0, 1, -1, ctx)
	far, _ := hexgrid.NewPosition(2, 0, -2, ctx)

	if _, err := NewObstacle(nil, game.ElementFire); err == nil {
		t.Error("NewObstacle accepted an empty chain")
	}
	if _, err := NewObstacle([]hexgrid.Position{a, far}, game.ElementFire); err == nil {
		t.Error("NewObstacle accepted a non-contiguous chain")
	}
	if _, err := NewObstacle([]hexgrid.Position{a, b, a}, game.ElementFire); err == nil {
		t.Error("NewObstacle accepted a chain that doubles back")
	}

	o, err := NewObstacle([]hexgrid.Position{a, b}, game.ElementIce)
	if err != nil {
		t.Fatalf("NewObstacle rejected a valid chain: %v", err)
	}
	if !o.Covers(a) || !o.Covers(b) {
		t.Error("obstacle does not cover its own cells")
	}
	if o.Covers(far) {
		t.Error("obstacle covers a cell outside its chain")
	}
}

// assertValidChain checks contiguity and the absence of repeats.
func assertValidChain(t *testing.T, cells []hexgrid.Position) {
	t.Helper()

	for i := 1; i < len(cells); i++ {
		if !cells[i].IsNeighbor(cells[i-1]) {
			t.Fatalf("cells %s and %s are not adjacent", cells[i-1], cells[i])
		}
	}

	seen := make(map[hexgrid.Position]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			t.Fatalf("cell %s repeats in chain", c)
		}
		seen[c] = true
	}
}
