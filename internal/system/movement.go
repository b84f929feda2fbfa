// internal/system/movement.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/pkg/gridmap"
)

// MovementSystem walks enemies around the ring.
type MovementSystem struct {
	world *entity.World
	track *gridmap.Track
}

func NewMovementSystem(world *entity.World, track *gridmap.Track) *MovementSystem {
	return &MovementSystem{world: world, track: track}
}

// SpeedMultiplier is the factor applied to every enemy's speed this tick:
// the slow aura commander and the freeze spell.
func (s *MovementSystem) SpeedMultiplier() float64 {
	m := s.world.EnemySpeedScale
	if c := s.world.Commander; c.Has(defs.CommanderSlowAura) {
		m *= 1 - c.Fraction()
	}
	return m
}

func (s *MovementSystem) Update(deltaMs float64) {
	mult := s.SpeedMultiplier()
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		Advance(e, s.track, e.Speed*mult*deltaMs/1000)
	}
}

// Advance moves an enemy up to travel cells toward its next waypoint. When
// the waypoint is within reach the enemy snaps onto it and its path index
// advances, wrapping around the loop. Leftover travel is dropped.
func Advance(e *component.Enemy, track *gridmap.Track, travel float64) {
	if travel <= 0 {
		return
	}
	next := track.Wrap(e.PathIndex + 1)
	target := track.Waypoint(next)
	delta := target.Sub(e.Pos)
	dist := delta.Len()

	if dist <= travel {
		e.Pos = target
		e.PathIndex = next
		return
	}
	e.Pos = e.Pos.Add(delta.Scale(travel / dist))
}
