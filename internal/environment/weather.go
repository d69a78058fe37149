package environment

import (
	"math/rand"

	"github.com/talgya/hexforge/internal/game"
)

// Weather limits.
const (
	// MaxWeatherIntensity is the ceiling of the intensity scale.
	MaxWeatherIntensity = 256
	// MaxWeatherDuration is the longest a weather event may run, in ticks.
	MaxWeatherDuration = 10_000
)

// Intensity band boundaries.
const (
	mildIntensityMin   = 64
	strongIntensityMin = 128
	severeIntensityMin = 192
)

// Intensity is the banded severity of a weather event at a point in time.
type Intensity uint8

const (
	IntensityNone Intensity = iota
	IntensityMild
	IntensityStrong
	IntensitySevere
	IntensityMax
)

// IntensityFromValue bands a raw curve value into an Intensity. Negative
// values (outside the event window) are None.
func IntensityFromValue(v float64) Intensity {
	switch {
	case v < mildIntensityMin:
		return IntensityNone
	case v < strongIntensityMin:
		return IntensityMild
	case v < severeIntensityMin:
		return IntensityStrong
	case v < MaxWeatherIntensity:
		return IntensitySevere
	default:
		return IntensityMax
	}
}

// Alpha returns the overlay opacity appropriate for the intensity.
func (i Intensity) Alpha() float64 {
	switch i {
	case IntensityNone:
		return 0.0
	case IntensityMild:
		return 0.25
	case IntensityStrong:
		return 0.5
	case IntensitySevere:
		return 0.75
	default:
		return 1.0
	}
}

// String returns a human-readable name for the intensity.
func (i Intensity) String() string {
	switch i {
	case IntensityNone:
		return "None"
	case IntensityMild:
		return "Mild"
	case IntensityStrong:
		return "Strong"
	case IntensitySevere:
		return "Severe"
	case IntensityMax:
		return "Max"
	default:
		return "Unknown"
	}
}

// WeatherEvent is an elemental weather effect whose severity follows a
// polynomial curve over time. Weather can enhance or impede actors, e.g.
// reducing visibility or boosting wind-elemental damage.
type WeatherEvent struct {
	element game.Element
	fn      PolyFunc
}

// NewWeatherEvent builds an event from an explicit curve. You probably want
// RandomWeatherEvent instead.
func NewWeatherEvent(element game.Element, fn PolyFunc) WeatherEvent {
	return WeatherEvent{element: element, fn: fn}
}

// RandomWeatherEvent generates a random weather effect beginning at the
// given tick.
func RandomWeatherEvent(rng *rand.Rand, startTick float64) WeatherEvent {
	return WeatherEvent{
		element: game.RandomElement(rng),
		fn:      RandomPolyFunc(rng, MaxWeatherIntensity, MaxWeatherDuration, startTick),
	}
}

// Change switches the kind of weather to the given element.
func (e *WeatherEvent) Change(element game.Element) {
	e.element = element
}

// Element returns the event's elemental attribute.
func (e WeatherEvent) Element() game.Element {
	return e.element
}

// Intensity returns the banded severity of the event at the given tick.
func (e WeatherEvent) Intensity(tick float64) Intensity {
	return IntensityFromValue(e.fn.Solve(tick))
}

// IntensityExact returns the raw curve value at the given tick.
func (e WeatherEvent) IntensityExact(tick float64) float64 {
	return e.fn.Solve(tick)
}

// Duration returns the event's window length in ticks.
func (e WeatherEvent) Duration() float64 {
	return e.fn.Duration()
}
