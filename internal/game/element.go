package game

import (
	"fmt"
	"math/rand"
)

// Element enumerates the elemental attributes an entity may carry.
type Element uint8

const (
	ElementUnset Element = iota
	ElementFire
	ElementIce
	ElementWind
	ElementWater
	ElementElectric
	ElementEarth
	ElementLight
	ElementDark // Last valid element — keep new entries above
)

// Elemental is implemented by anything carrying an elemental attribute.
type Elemental interface {
	Element() Element
}

// ElementFromInt converts a stored integer value back into an Element.
func ElementFromInt(v int) (Element, error) {
	if v < int(ElementUnset) || v > int(ElementDark) {
		return ElementUnset, fmt.Errorf("game: element value %d out of range", v)
	}
	return Element(v), nil
}

// RandomElement returns one of the eight real elements, uniformly.
// ElementUnset is never produced.
func RandomElement(rng *rand.Rand) Element {
	return Element(rng.Intn(int(ElementDark)) + 1)
}

// String returns a human-readable name for the element.
func (e Element) String() string {
	switch e {
	case ElementUnset:
		return "Unset"
	case ElementFire:
		return "Fire"
	case ElementIce:
		return "Ice"
	case ElementWind:
		return "Wind"
	case ElementWater:
		return "Water"
	case ElementElectric:
		return "Electric"
	case ElementEarth:
		return "Earth"
	case ElementLight:
		return "Light"
	case ElementDark:
		return "Dark"
	default:
		return "Unknown"
	}
}
