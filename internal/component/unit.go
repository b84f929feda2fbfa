// internal/component/unit.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

// Unit is an allied fighter standing in the inner region.
type Unit struct {
	ID        types.EntityID
	Archetype defs.Archetype
	Grade     defs.Grade
	Stats     defs.UnitStats
	Pos       gridmap.Point
	HP        int
	MaxHP     int

	LastAttackMs int64
	HasAttacked  bool
	TargetID     types.EntityID // weak reference, may point at a removed enemy
}

// Attacker is the part of a unit the damage model reads. Deferred splash
// hits keep a copy so they can land after the unit is gone.
type Attacker struct {
	UnitID    types.EntityID
	Archetype defs.Archetype
	Grade     defs.Grade
	Attack    int
}

func (u *Unit) Attacker() Attacker {
	return Attacker{
		UnitID:    u.ID,
		Archetype: u.Archetype,
		Grade:     u.Grade,
		Attack:    u.Stats.Attack,
	}
}

// Ready reports whether the unit's attack interval has elapsed at nowMs.
func (u *Unit) Ready(nowMs int64) bool {
	return !u.HasAttacked || nowMs-u.LastAttackMs >= u.Stats.AttackIntervalMs
}
