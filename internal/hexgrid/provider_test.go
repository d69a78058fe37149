package hexgrid

import (
	"math/rand"
	"testing"
)

func TestSideProviderYieldsAllSixInOrder(t *testing.T) {
	p := NewProvider(SideNorthEast)

	want := []Side{SideNorth, SideNorthWest, SideSouthWest, SideSouth, SideSouthEast, SideNorthEast}
	for i, w := range want {
		got, ok := p.Next()
		if !ok {
			t.Fatalf("provider exhausted after %d yields, want 6", i)
		}
		if got != w {
			t.Errorf("yield %d = %v, want %v", i, got, w)
		}
	}

	if _, ok := p.Next(); ok {
		t.Error("provider yielded a seventh direction")
	}
	if _, ok := p.Next(); ok {
		t.Error("exhausted provider resumed yielding")
	}
}

func TestVertexProviderYieldsAllSixInOrder(t *testing.T) {
	p := NewProvider(VertexWest)

	want := []Vertex{VertexSouthWest, VertexSouthEast, VertexEast, VertexNorthEast, VertexNorthWest, VertexWest}
	for i, w := range want {
		got, ok := p.Next()
		if !ok {
			t.Fatalf("provider exhausted after %d yields, want 6", i)
		}
		if got != w {
			t.Errorf("yield %d = %v, want %v", i, got, w)
		}
	}

	if _, ok := p.Next(); ok {
		t.Error("provider yielded a seventh direction")
	}
}

func TestProviderFirstYieldIsSuccessor(t *testing.T) {
	for s := SideNorthEast; s <= SideSouthEast; s++ {
		p := NewProvider(s)
		got, ok := p.Next()
		if !ok {
			t.Fatalf("provider starting at %v yielded nothing", s)
		}
		want := SideFromIndex((s.Index() + 1) % NumDirections)
		if got != want {
			t.Errorf("first yield after %v = %v, want %v", s, got, want)
		}
	}
}

func TestProviderCount(t *testing.T) {
	if c := NewProvider(SideNorth).Count(); c != NumDirections {
		t.Errorf("Count() = %d, want %d", c, NumDirections)
	}
}

func TestRandomProviderCoversAllDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 50; i++ {
		p := NewRandomProvider[Side](rng)
		seen := make(map[Side]bool)
		for s, ok := p.Next(); ok; s, ok = p.Next() {
			if seen[s] {
				t.Fatalf("random provider repeated %v", s)
			}
			seen[s] = true
		}
		if len(seen) != NumDirections {
			t.Fatalf("random provider yielded %d directions, want %d", len(seen), NumDirections)
		}
	}
}
