package hexgrid

import (
	"math"
	"math/rand"
)

// NumDirections is the number of sides (and vertices) of a hex cell.
const NumDirections = 6

// Side identifies one of the six edge-adjacent directions of a hex cell.
// Sides sit at odd multiples of π/6, starting at π/6 for NorthEast.
type Side uint8

const (
	SideNorthEast Side = iota
	SideNorth
	SideNorthWest
	SideSouthWest
	SideSouth
	SideSouthEast
)

// Vertex identifies one of the six corner directions of a hex cell.
// Vertices sit at multiples of π/3, starting at 0 for East.
type Vertex uint8

const (
	VertexEast Vertex = iota
	VertexNorthEast
	VertexNorthWest
	VertexWest
	VertexSouthWest
	VertexSouthEast
)

var sideAngles = [NumDirections]float64{
	math.Pi / 6,
	math.Pi / 2,
	5 * math.Pi / 6,
	7 * math.Pi / 6,
	3 * math.Pi / 2,
	11 * math.Pi / 6,
}

var vertexAngles = [NumDirections]float64{
	0,
	math.Pi / 3,
	2 * math.Pi / 3,
	math.Pi,
	4 * math.Pi / 3,
	5 * math.Pi / 3,
}

// Angle returns the side's direction in radians, in [0, 2π).
func (s Side) Angle() float64 {
	return sideAngles[s]
}

// Index returns the side's dense index in 0..6.
func (s Side) Index() int {
	return int(s)
}

// SideFromAngle converts an angle in radians into the Side whose 60° sector
// encloses it. The angle is reduced modulo 2π first; the conversion panics
// only when the reduction itself is malformed (NaN).
func SideFromAngle(theta float64) Side {
	clamped := math.Mod(theta, 2*math.Pi)
	if clamped < 0 {
		clamped += 2 * math.Pi
	}

	switch {
	case clamped < math.Pi/3:
		return SideNorthEast
	case clamped < 2*math.Pi/3:
		return SideNorth
	case clamped < math.Pi:
		return SideNorthWest
	case clamped < 4*math.Pi/3:
		return SideSouthWest
	case clamped < 5*math.Pi/3:
		return SideSouth
	case clamped < 2*math.Pi:
		return SideSouthEast
	default:
		panic("hexgrid: invalid angle for Side conversion")
	}
}

// SideFromIndex converts a dense index in 0..6 back into a Side.
// Out-of-range values are a programmer error and panic.
func SideFromIndex(i int) Side {
	if i < 0 || i >= NumDirections {
		panic("hexgrid: invalid index for Side conversion")
	}
	return Side(i)
}

// Translation returns the unit displacement toward the side. This table is
// the single source of truth for grid topology; neighbor detection and
// obstacle generation both depend on it.
func (s Side) Translation() Translation {
	switch s {
	case SideNorthEast:
		return Translation{x: 1, y: 0, z: -1}
	case SideNorth:
		return Translation{x: 0, y: 1, z: -1}
	case SideNorthWest:
		return Translation{x: -1, y: 1, z: 0}
	case SideSouthWest:
		return Translation{x: -1, y: 0, z: 1}
	case SideSouth:
		return Translation{x: 0, y: -1, z: 1}
	case SideSouthEast:
		return Translation{x: 1, y: -1, z: 0}
	default:
		panic("hexgrid: invalid Side")
	}
}

// SideFromTranslation converts a unit translation back into its Side.
// Non-unit translations are a programmer error and panic.
func SideFromTranslation(t Translation) Side {
	for s := SideNorthEast; s <= SideSouthEast; s++ {
		if s.Translation() == t {
			return s
		}
	}
	panic("hexgrid: invalid Translation for Side conversion")
}

// AdjacentVertices returns the side's two adjacent vertices in
// counter-clockwise order.
func (s Side) AdjacentVertices() (Vertex, Vertex) {
	switch s {
	case SideNorthEast:
		return VertexEast, VertexNorthEast
	case SideNorth:
		return VertexNorthEast, VertexNorthWest
	case SideNorthWest:
		return VertexNorthWest, VertexWest
	case SideSouthWest:
		return VertexWest, VertexSouthWest
	case SideSouth:
		return VertexSouthWest, VertexSouthEast
	case SideSouthEast:
		return VertexSouthEast, VertexEast
	default:
		panic("hexgrid: invalid Side")
	}
}

// RandomSide returns a uniformly random Side by sampling a full-turn angle.
func RandomSide(rng *rand.Rand) Side {
	return SideFromAngle(rng.Float64() * 2 * math.Pi)
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNorthEast:
		return "NorthEast"
	case SideNorth:
		return "North"
	case SideNorthWest:
		return "NorthWest"
	case SideSouthWest:
		return "SouthWest"
	case SideSouth:
		return "South"
	case SideSouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}

// Angle returns the vertex's direction in radians, in [0, 2π).
func (v Vertex) Angle() float64 {
	return vertexAngles[v]
}

// Index returns the vertex's dense index in 0..6.
func (v Vertex) Index() int {
	return int(v)
}

// VertexFromAngle converts an angle in radians into the Vertex whose 60°
// sector encloses it. Vertex sectors are centered on the vertex angles, so
// East owns both ends of the reduced range.
func VertexFromAngle(theta float64) Vertex {
	clamped := math.Mod(theta, 2*math.Pi)
	if clamped < 0 {
		clamped += 2 * math.Pi
	}

	switch {
	case clamped < math.Pi/6:
		return VertexEast
	case clamped < math.Pi/2:
		return VertexNorthEast
	case clamped < 5*math.Pi/6:
		return VertexNorthWest
	case clamped < 7*math.Pi/6:
		return VertexWest
	case clamped < 3*math.Pi/2:
		return VertexSouthWest
	case clamped < 11*math.Pi/6:
		return VertexSouthEast
	case clamped < 2*math.Pi:
		return VertexEast
	default:
		panic("hexgrid: invalid angle for Vertex conversion")
	}
}

// VertexFromIndex converts a dense index in 0..6 back into a Vertex.
// Out-of-range values are a programmer error and panic.
func VertexFromIndex(i int) Vertex {
	if i < 0 || i >= NumDirections {
		panic("hexgrid: invalid index for Vertex conversion")
	}
	return Vertex(i)
}

// AdjacentSides returns the vertex's two adjacent sides in counter-clockwise
// order.
func (v Vertex) AdjacentSides() (Side, Side) {
	switch v {
	case VertexEast:
		return SideSouthEast, SideNorthEast
	case VertexNorthEast:
		return SideNorthEast, SideNorth
	case VertexNorthWest:
		return SideNorth, SideNorthWest
	case VertexWest:
		return SideNorthWest, SideSouthWest
	case VertexSouthWest:
		return SideSouthWest, SideSouth
	case VertexSouthEast:
		return SideSouth, SideSouthEast
	default:
		panic("hexgrid: invalid Vertex")
	}
}

// RandomVertex returns a uniformly random Vertex by sampling a full-turn
// angle.
func RandomVertex(rng *rand.Rand) Vertex {
	return VertexFromAngle(rng.Float64() * 2 * math.Pi)
}

// String returns a human-readable name for the vertex.
func (v Vertex) String() string {
	switch v {
	case VertexEast:
		return "East"
	case VertexNorthEast:
		return "NorthEast"
	case VertexNorthWest:
		return "NorthWest"
	case VertexWest:
		return "West"
	case VertexSouthWest:
		return "SouthWest"
	case VertexSouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}
