// internal/component/enemy.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

// Enemy is a creature walking the ring. Boss is nil for regular enemies.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	MaxHP     int
	HP        int
	Speed     float64 // cells per second
	Pos       gridmap.Point
	PathIndex int
	Boss      *BossState
}

// BossState carries the ability state machine of a boss.
type BossState struct {
	Ability        defs.BossAbility
	AbilityTimerMs float64
	Phase          int // phase_shift stage, starts at 1

	ShieldRemainingMs float64
	DamageReduction   float64

	Enraged   bool
	SpawnWave int
}

func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// DamageReduction is the active reduction fraction, zero for regular enemies.
func (e *Enemy) DamageReduction() float64 {
	if e.Boss == nil {
		return 0
	}
	return e.Boss.DamageReduction
}

// HPFraction returns current hp over max hp.
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}
