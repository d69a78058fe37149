package actor

import (
	"errors"
	"testing"

	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

func TestActorStep(t *testing.T) {
	ctx := game.NewContext(2, 5)
	a := New("Wanderer", hexgrid.Origin())

	if err := a.Step(hexgrid.SideNorth, ctx); err != nil {
		t.Fatalf("Step north failed: %v", err)
	}

	pos := a.Position()
	if pos.X() != 0 || pos.Y() != 1 || pos.Z() != -1 {
		t.Errorf("position after step = %s, want (0,1,-1)", pos)
	}
}

func TestActorStepOffGridPreservesPosition(t *testing.T) {
	ctx := game.NewContext(1, 5)
	start, _ := hexgrid.NewPosition(0, 1, -1, ctx)
	a := New("Edge", start)

	if err := a.Step(hexgrid.SideNorth, ctx); !errors.Is(err, hexgrid.ErrOutOfBounds) {
		t.Fatalf("Step off grid = %v, want ErrOutOfBounds", err)
	}
	if a.Position() != start {
		t.Errorf("failed step moved actor to %s", a.Position())
	}
}

func TestActorAbilities(t *testing.T) {
	a := New("Caster", hexgrid.Origin())

	fireball := NewAbility("Fireball", 5, Aspects{
		Element: game.ElementFire,
		School:  SchoolDestruction,
	})
	a.AddAbility(fireball)

	if len(a.Abilities()) != 1 {
		t.Fatalf("ability count = %d, want 1", len(a.Abilities()))
	}
	if a.Abilities()[0].Element() != game.ElementFire {
		t.Errorf("ability element = %v, want Fire", a.Abilities()[0].Element())
	}

	a.AddFatigue(3)
	if a.CurFatigue() != 3 {
		t.Errorf("fatigue = %d, want 3", a.CurFatigue())
	}
}

func TestAbilityDefaultsAndSetters(t *testing.T) {
	ab := NewAbilityNamed("Hum")

	if ab.Potency() != 0 {
		t.Errorf("potency = %d, want 0", ab.Potency())
	}
	if ab.Element() != game.ElementUnset {
		t.Errorf("element = %v, want Unset", ab.Element())
	}

	ab.SetPotency(2)
	ab.SetElement(game.ElementWind)
	ab.SetAspects(Aspects{
		Aesthetics: AestheticsSubtle,
		Element:    game.ElementWind,
		Method:     MethodVocal,
		Morality:   MoralityGood,
		School:     SchoolSong,
	})

	if ab.Potency() != 2 {
		t.Errorf("potency after set = %d, want 2", ab.Potency())
	}
	if ab.Aspects().School != SchoolSong {
		t.Errorf("school = %v, want Song", ab.Aspects().School)
	}
}
