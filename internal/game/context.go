// Package game holds the high-level engine configuration and the elemental
// attribute shared by obstacles, resources, weather, and abilities.
package game

// Engine defaults.
const (
	DefaultGridRadius     = 10
	DefaultMaxObstacleLen = 5
)

// Context carries the world constraints consumed by the geometry and
// generation code. It is read-only configuration, passed explicitly into
// every call that needs it rather than held as global state.
type Context struct {
	GridRadius        int // Max absolute value of any cube coordinate
	MaxObstacleLen    int // Extension budget for a random obstacle walk
	MaxResourceRadius int // Largest radius a resource disc may have
}

// NewContext builds a Context with the given grid radius and obstacle budget.
// The resource radius cap is a quarter of the grid, floored at 1.
func NewContext(gridRadius, maxObstacleLen int) Context {
	maxRes := gridRadius / 4
	if maxRes < 1 {
		maxRes = 1
	}
	return Context{
		GridRadius:        gridRadius,
		MaxObstacleLen:    maxObstacleLen,
		MaxResourceRadius: maxRes,
	}
}

// DefaultContext returns the standard game configuration.
func DefaultContext() Context {
	return NewContext(DefaultGridRadius, DefaultMaxObstacleLen)
}
