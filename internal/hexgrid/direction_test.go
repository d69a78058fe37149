package hexgrid

import (
	"math"
	"math/rand"
	"testing"
)

func TestSideAngleRoundTrip(t *testing.T) {
	for s := SideNorthEast; s <= SideSouthEast; s++ {
		if got := SideFromAngle(s.Angle()); got != s {
			t.Errorf("SideFromAngle(%v.Angle()) = %v", s, got)
		}
		if got := SideFromIndex(s.Index()); got != s {
			t.Errorf("SideFromIndex(%v.Index()) = %v", s, got)
		}
	}
}

func TestVertexAngleRoundTrip(t *testing.T) {
	for v := VertexEast; v <= VertexSouthEast; v++ {
		if got := VertexFromAngle(v.Angle()); got != v {
			t.Errorf("VertexFromAngle(%v.Angle()) = %v", v, got)
		}
		if got := VertexFromIndex(v.Index()); got != v {
			t.Errorf("VertexFromIndex(%v.Index()) = %v", v, got)
		}
	}
}

func TestSideFromAngleSectors(t *testing.T) {
	cases := []struct {
		theta float64
		want  Side
	}{
		{0, SideNorthEast},
		{math.Pi/3 - 0.001, SideNorthEast},
		{math.Pi / 3, SideNorth},
		{math.Pi, SideSouthWest},
		{2*math.Pi - 0.001, SideSouthEast},
		{2 * math.Pi, SideNorthEast}, // full turn reduces to 0
		{5 * math.Pi / 2, SideNorth}, // 2π + π/2
		{-math.Pi / 2, SideSouth},    // negative reduces to 3π/2
	}

	for _, c := range cases {
		if got := SideFromAngle(c.theta); got != c.want {
			t.Errorf("SideFromAngle(%f) = %v, want %v", c.theta, got, c.want)
		}
	}
}

func TestVertexFromAngleSectors(t *testing.T) {
	cases := []struct {
		theta float64
		want  Vertex
	}{
		{0, VertexEast},
		{math.Pi/6 - 0.001, VertexEast},
		{math.Pi / 6, VertexNorthEast},
		{math.Pi, VertexWest},
		{11*math.Pi/6 + 0.001, VertexEast}, // East owns both ends of the range
	}

	for _, c := range cases {
		if got := VertexFromAngle(c.theta); got != c.want {
			t.Errorf("VertexFromAngle(%f) = %v, want %v", c.theta, got, c.want)
		}
	}
}

func TestSideTranslationTable(t *testing.T) {
	want := map[Side][3]int{
		SideNorthEast: {1, 0, -1},
		SideNorth:     {0, 1, -1},
		SideNorthWest: {-1, 1, 0},
		SideSouthWest: {-1, 0, 1},
		SideSouth:     {0, -1, 1},
		SideSouthEast: {1, -1, 0},
	}

	for s, w := range want {
		tr := s.Translation()
		if tr.X() != w[0] || tr.Y() != w[1] || tr.Z() != w[2] {
			t.Errorf("%v translation = (%d,%d,%d), want %v", s, tr.X(), tr.Y(), tr.Z(), w)
		}
		if got := SideFromTranslation(tr); got != s {
			t.Errorf("SideFromTranslation(%v.Translation()) = %v", s, got)
		}
	}
}

func TestSideFromTranslationPanicsOnNonUnit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SideFromTranslation accepted a non-unit translation")
		}
	}()

	tr, _ := NewTranslation(2, 0, -2)
	SideFromTranslation(tr)
}

func TestAdjacencyInterlock(t *testing.T) {
	for s := SideNorthEast; s <= SideSouthEast; s++ {
		v1, v2 := s.AdjacentVertices()
		for _, v := range []Vertex{v1, v2} {
			s1, s2 := v.AdjacentSides()
			if s1 != s && s2 != s {
				t.Errorf("%v lists vertex %v as adjacent, but %v does not list %v", s, v, v, s)
			}
		}
	}
}

func TestRandomSideCoversAllDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[Side]int)

	for i := 0; i < 600; i++ {
		seen[RandomSide(rng)]++
	}

	for s := SideNorthEast; s <= SideSouthEast; s++ {
		if seen[s] == 0 {
			t.Errorf("%v never sampled in 600 draws", s)
		}
	}
}

func TestRandomVertexCoversAllDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seen := make(map[Vertex]int)

	for i := 0; i < 600; i++ {
		seen[RandomVertex(rng)]++
	}

	for v := VertexEast; v <= VertexSouthEast; v++ {
		if seen[v] == 0 {
			t.Errorf("%v never sampled in 600 draws", v)
		}
	}
}
