package entity

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/types"
)

func TestNewWorldStartsInPrepare(t *testing.T) {
	b := config.DefaultBalance()
	w := NewWorld(b, nil)
	if w.Phase != component.PhasePrepare {
		t.Errorf("phase = %s, want prepare", w.Phase)
	}
	if w.Gold != b.StartGold || w.WaveTimerMs != float64(b.PrepareTimeMs) {
		t.Errorf("unexpected start state: gold=%d timer=%v", w.Gold, w.WaveTimerMs)
	}
	if w.EnemySpeedScale != 1 {
		t.Errorf("speed scale = %v, want 1", w.EnemySpeedScale)
	}
	if a, b := w.NewEntity(), w.NewEntity(); a == b || a == 0 {
		t.Errorf("entity ids not unique: %v %v", a, b)
	}
}

func TestRemoveDeadEnemiesKeepsOrder(t *testing.T) {
	w := NewWorld(config.DefaultBalance(), nil)
	for i, hp := range []int{10, 0, 5, -3, 1} {
		w.Enemies = append(w.Enemies, &component.Enemy{ID: types.EntityID(i + 1), HP: hp, MaxHP: 10})
	}

	if w.LiveEnemyCount() != 3 {
		t.Fatalf("live = %d, want 3", w.LiveEnemyCount())
	}

	dead := w.RemoveDeadEnemies()
	if len(dead) != 2 || dead[0].ID != 2 || dead[1].ID != 4 {
		t.Fatalf("dead = %+v", dead)
	}
	want := []types.EntityID{1, 3, 5}
	for i, e := range w.Enemies {
		if e.ID != want[i] {
			t.Fatalf("order broken: got %v at %d", e.ID, i)
		}
	}
	if w.Enemy(2) != nil {
		t.Error("removed enemy still found")
	}
}

func TestEnemyLookupIgnoresDead(t *testing.T) {
	w := NewWorld(config.DefaultBalance(), nil)
	w.Enemies = []*component.Enemy{{ID: 7, HP: 0}}
	if w.Enemy(7) != nil {
		t.Error("dead enemy should not be returned")
	}
}

func TestRemoveUnitsAndSpells(t *testing.T) {
	w := NewWorld(config.DefaultBalance(), nil)
	w.Units = []*component.Unit{{ID: 1}, {ID: 2}, {ID: 3}}
	w.RemoveUnits(1, 3)
	if len(w.Units) != 1 || w.Units[0].ID != 2 {
		t.Fatalf("units = %+v", w.Units)
	}

	w.Spells = []component.Spell{{ID: "a"}, {ID: "b"}}
	if _, ok := w.TakeSpell("a"); !ok {
		t.Fatal("spell a not found")
	}
	if _, ok := w.TakeSpell("a"); ok {
		t.Fatal("spell a taken twice")
	}
	if len(w.Spells) != 1 {
		t.Fatalf("spells = %+v", w.Spells)
	}
}
