// internal/entity/world.go
package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// World is the whole state of one session. Collections are ordered slices;
// iteration order is part of the game rules (first found wins ties).
type World struct {
	NextID types.EntityID

	Gold       int
	GoldEarned int
	Score      int
	Kills      int

	Wave          int
	Phase         component.Phase
	WaveTimerMs   float64
	SpawnTimerMs  float64
	SpawnedCount  int
	WaveEnemyType defs.EnemyType

	Units       []*component.Unit
	Enemies     []*component.Enemy
	Effects     []component.Effect
	PendingHits []component.PendingHit

	Upgrades  component.Upgrades
	Spells    []component.Spell
	Commander *defs.Commander

	EnemySpeedScale float64
	FreezeUntilMs   int64
	Barrier         bool
	BarrierUntilMs  int64
}

// NewWorld returns a world in the prepare phase.
func NewWorld(b *config.Balance, commander *defs.Commander) *World {
	return &World{
		NextID:          1,
		Gold:            b.StartGold,
		Phase:           component.PhasePrepare,
		WaveTimerMs:     float64(b.PrepareTimeMs),
		WaveEnemyType:   defs.EnemyTypeA,
		Commander:       commander,
		EnemySpeedScale: 1,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Enemy returns the enemy with the given id if it is still present and alive.
func (w *World) Enemy(id types.EntityID) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			if !e.Alive() {
				return nil
			}
			return e
		}
	}
	return nil
}

// Unit returns the unit with the given id, or nil.
func (w *World) Unit(id types.EntityID) *component.Unit {
	for _, u := range w.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// LiveEnemyCount counts enemies with hp left.
func (w *World) LiveEnemyCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Boss returns the first live boss, or nil.
func (w *World) Boss() *component.Enemy {
	for _, e := range w.Enemies {
		if e.IsBoss() && e.Alive() {
			return e
		}
	}
	return nil
}

// RemoveUnits drops every unit whose id is listed, keeping order.
func (w *World) RemoveUnits(ids ...types.EntityID) {
	drop := make(map[types.EntityID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := w.Units[:0]
	for _, u := range w.Units {
		if !drop[u.ID] {
			kept = append(kept, u)
		}
	}
	for i := len(kept); i < len(w.Units); i++ {
		w.Units[i] = nil
	}
	w.Units = kept
}

// RemoveDeadEnemies drops enemies at or below zero hp and returns them.
func (w *World) RemoveDeadEnemies() []*component.Enemy {
	var dead []*component.Enemy
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			kept = append(kept, e)
		} else {
			dead = append(dead, e)
		}
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return dead
}

// AddEffect appends visual effects.
func (w *World) AddEffect(fx ...component.Effect) {
	w.Effects = append(w.Effects, fx...)
}

// TakeSpell removes the owned spell with the given id.
func (w *World) TakeSpell(id string) (component.Spell, bool) {
	for i, s := range w.Spells {
		if s.ID == id {
			w.Spells = append(w.Spells[:i], w.Spells[i+1:]...)
			return s, true
		}
	}
	return component.Spell{}, false
}
