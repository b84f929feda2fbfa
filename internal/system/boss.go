// internal/system/boss.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

// BossSystem runs the per-boss ability state machines.
type BossSystem struct {
	world   *entity.World
	balance *config.BossBalance
	track   *gridmap.Track
	rng     *utils.PRNGService
}

func NewBossSystem(world *entity.World, balance *config.Balance, track *gridmap.Track, rng *utils.PRNGService) *BossSystem {
	return &BossSystem{world: world, balance: &balance.Boss, track: track, rng: rng}
}

func (s *BossSystem) Update(deltaMs float64) {
	for _, e := range s.world.Enemies {
		if e.Boss == nil || !e.Alive() {
			continue
		}
		s.step(e, deltaMs)
	}
}

func (s *BossSystem) step(e *component.Enemy, deltaMs float64) {
	b := e.Boss
	switch b.Ability {
	case defs.AbilityDash:
		b.AbilityTimerMs += deltaMs
		if b.AbilityTimerMs >= s.balance.DashIntervalMs {
			e.PathIndex = s.track.Wrap(e.PathIndex + s.balance.DashWaypoints)
			e.Pos = s.track.Waypoint(e.PathIndex)
			b.AbilityTimerMs = 0
		}

	case defs.AbilityShield:
		if b.ShieldRemainingMs > 0 {
			b.ShieldRemainingMs -= deltaMs
			if b.ShieldRemainingMs <= 0 {
				b.ShieldRemainingMs = 0
				b.DamageReduction = 0
			}
		}
		b.AbilityTimerMs += deltaMs
		if b.AbilityTimerMs >= s.balance.ShieldIntervalMs {
			b.AbilityTimerMs = 0
			if b.DamageReduction == 0 {
				b.DamageReduction = s.balance.ShieldReduction
				b.ShieldRemainingMs = s.balance.ShieldDurationMs
			}
		}

	case defs.AbilityTypeShift:
		b.AbilityTimerMs += deltaMs
		if b.AbilityTimerMs >= s.balance.TypeShiftIntervalMs {
			e.Type = s.randomType()
			b.AbilityTimerMs = 0
		}

	case defs.AbilityEnrage:
		b.AbilityTimerMs += deltaMs
		for b.AbilityTimerMs >= 1000 {
			e.Speed += s.balance.EnrageSpeedPerSecond
			b.AbilityTimerMs -= 1000
		}
		if !b.Enraged && e.HPFraction() < s.balance.EnrageThreshold {
			e.Speed *= s.balance.EnrageMultiplier
			b.Enraged = true
		}

	case defs.AbilityPhaseShift:
		switch {
		case b.Phase == 1 && e.HPFraction() < s.balance.PhaseTwoThreshold:
			b.Phase = 2
			e.Type = s.randomType()
			e.Speed *= s.balance.PhaseTwoSpeedFactor
		case b.Phase == 2 && e.HPFraction() < s.balance.PhaseThreeThreshold:
			b.Phase = 3
			e.Type = s.randomType()
			e.Speed *= s.balance.PhaseThreeSpeedFactor
			b.Ability = defs.AbilityTypeShift
			b.AbilityTimerMs = 0
		}

	default:
		// unknown abilities are inert
	}
}

func (s *BossSystem) randomType() defs.EnemyType {
	return utils.Pick(s.rng, defs.RegularEnemyTypes)
}
