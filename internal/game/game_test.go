package game

import (
	"math/rand"
	"testing"
)

func TestDefaultContext(t *testing.T) {
	ctx := DefaultContext()

	if ctx.GridRadius != DefaultGridRadius {
		t.Errorf("GridRadius = %d, want %d", ctx.GridRadius, DefaultGridRadius)
	}
	if ctx.MaxObstacleLen != DefaultMaxObstacleLen {
		t.Errorf("MaxObstacleLen = %d, want %d", ctx.MaxObstacleLen, DefaultMaxObstacleLen)
	}
	if ctx.MaxResourceRadius != DefaultGridRadius/4 {
		t.Errorf("MaxResourceRadius = %d, want %d", ctx.MaxResourceRadius, DefaultGridRadius/4)
	}
}

func TestNewContextResourceRadiusFloor(t *testing.T) {
	ctx := NewContext(2, 5)
	if ctx.MaxResourceRadius != 1 {
		t.Errorf("MaxResourceRadius for tiny grid = %d, want 1", ctx.MaxResourceRadius)
	}
}

func TestElementFromInt(t *testing.T) {
	e, err := ElementFromInt(int(ElementWater))
	if err != nil {
		t.Fatalf("ElementFromInt failed: %v", err)
	}
	if e != ElementWater {
		t.Errorf("ElementFromInt = %v, want Water", e)
	}

	if _, err := ElementFromInt(9); err == nil {
		t.Error("ElementFromInt accepted an out-of-range value")
	}
	if _, err := ElementFromInt(-1); err == nil {
		t.Error("ElementFromInt accepted a negative value")
	}
}

func TestRandomElementCoversAllElements(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := make(map[Element]int)

	for i := 0; i < 800; i++ {
		e := RandomElement(rng)
		if e == ElementUnset {
			t.Fatal("RandomElement produced ElementUnset")
		}
		seen[e]++
	}

	for e := ElementFire; e <= ElementDark; e++ {
		if seen[e] == 0 {
			t.Errorf("%v never sampled in 800 draws", e)
		}
	}
}
