package actor

import (
	"github.com/google/uuid"

	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

// Actor is a player- or AI-controlled entity on the grid.
type Actor struct {
	uid        uuid.UUID
	name       string
	pos        hexgrid.Position
	curFatigue int
	abilities  []*Ability
}

// New builds an actor at the given position with no abilities and no
// fatigue.
func New(name string, pos hexgrid.Position) *Actor {
	return &Actor{
		uid:  uuid.New(),
		name: name,
		pos:  pos,
	}
}

// Restore rebuilds a persisted actor with its original identity.
func Restore(uid uuid.UUID, name string, pos hexgrid.Position, fatigue int, abilities []*Ability) *Actor {
	return &Actor{
		uid:        uid,
		name:       name,
		pos:        pos,
		curFatigue: fatigue,
		abilities:  abilities,
	}
}

// SetName renames the actor.
func (a *Actor) SetName(name string) {
	a.name = name
}

// Move translates the actor's position, validating against the grid. The
// position is unchanged on failure.
func (a *Actor) Move(trans hexgrid.Translation, ctx game.Context) error {
	return a.pos.Translate(trans, ctx)
}

// Step moves the actor one cell toward the given side.
func (a *Actor) Step(side hexgrid.Side, ctx game.Context) error {
	return a.pos.Translate(side.Translation(), ctx)
}

// AddAbility appends an ability to the actor's list.
func (a *Actor) AddAbility(ability *Ability) {
	a.abilities = append(a.abilities, ability)
}

// AddFatigue accumulates fatigue from performing abilities.
func (a *Actor) AddFatigue(amount int) {
	a.curFatigue += amount
}

// UID returns the actor's unique identity.
func (a *Actor) UID() uuid.UUID {
	return a.uid
}

// Name returns the actor's name.
func (a *Actor) Name() string {
	return a.name
}

// Position returns the actor's current position.
func (a *Actor) Position() hexgrid.Position {
	return a.pos
}

// CurFatigue returns the actor's accumulated fatigue.
func (a *Actor) CurFatigue() int {
	return a.curFatigue
}

// Abilities returns the actor's ability list.
func (a *Actor) Abilities() []*Ability {
	return a.abilities
}
