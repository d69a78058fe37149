// Package actor models the game's actors and the abilities they wield.
package actor

import (
	"github.com/google/uuid"

	"github.com/talgya/hexforge/internal/game"
)

// Aesthetics rates the coolness of an ability.
type Aesthetics uint8

const (
	AestheticsUnset Aesthetics = iota
	AestheticsBeautiful
	AestheticsImpressive
	AestheticsErotic
	AestheticsUgly
	AestheticsSubtle
)

// Method is the means by which an ability is performed.
type Method uint8

const (
	MethodUnset Method = iota
	MethodStaff
	MethodWand
	MethodManual
	MethodVocal
)

// Morality is the moral alignment of an ability.
type Morality uint8

const (
	MoralityUnset Morality = iota
	MoralityGood
	MoralityNeutral
	MoralityEvil
)

// School is the school of magic an ability belongs to.
type School uint8

const (
	SchoolUnset School = iota
	SchoolDestruction
	SchoolRestoration
	SchoolConjuration
	SchoolAlteration
	SchoolIllusion
	SchoolNature
	SchoolSong
)

// Aspects classifies an ability along every aspect axis.
type Aspects struct {
	Aesthetics Aesthetics
	Element    game.Element
	Method     Method
	Morality   Morality
	School     School
}

// Ability is a named, classified action an actor can perform.
type Ability struct {
	uid     uuid.UUID
	name    string
	potency int
	aspects Aspects
}

// NewAbility builds a fully-specified ability.
func NewAbility(name string, potency int, aspects Aspects) *Ability {
	return &Ability{
		uid:     uuid.New(),
		name:    name,
		potency: potency,
		aspects: aspects,
	}
}

// NewAbilityNamed builds an ability with unset aspects and zero potency.
func NewAbilityNamed(name string) *Ability {
	return &Ability{uid: uuid.New(), name: name}
}

// RestoreAbility rebuilds a persisted ability with its original identity.
func RestoreAbility(uid uuid.UUID, name string, potency int, aspects Aspects) *Ability {
	return &Ability{uid: uid, name: name, potency: potency, aspects: aspects}
}

// SetName renames the ability.
func (a *Ability) SetName(name string) {
	a.name = name
}

// SetPotency sets the ability's potency.
func (a *Ability) SetPotency(potency int) {
	a.potency = potency
}

// SetAspects replaces the ability's aspect classification.
func (a *Ability) SetAspects(aspects Aspects) {
	a.aspects = aspects
}

// SetElement sets the ability's elemental aspect.
func (a *Ability) SetElement(element game.Element) {
	a.aspects.Element = element
}

// UID returns the ability's unique identity.
func (a *Ability) UID() uuid.UUID {
	return a.uid
}

// Name returns the ability's name.
func (a *Ability) Name() string {
	return a.name
}

// Potency returns the ability's potency.
func (a *Ability) Potency() int {
	return a.potency
}

// Aspects returns the ability's aspect classification.
func (a *Ability) Aspects() Aspects {
	return a.aspects
}

// Element returns the ability's elemental aspect.
func (a *Ability) Element() game.Element {
	return a.aspects.Element
}
