// internal/system/damage.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
)

// Damage computes the hit an attacker deals to an enemy. The attack is raised
// by the grade's upgrade increment per level, multiplied by the type matchup
// and by any active boss damage reduction, floored once and clamped to 1.
func Damage(a component.Attacker, e *component.Enemy, upgradeLevel int) int {
	base := float64(a.Attack + defs.GradeUpgradeIncrement[a.Grade]*upgradeLevel)
	v := base * defs.Matchup(a.Archetype, e.Type)
	if r := e.DamageReduction(); r > 0 {
		v *= 1 - r
	}
	d := int(math.Floor(v))
	if d < 1 {
		return 1
	}
	return d
}

// scaleDamage applies commander multipliers to a computed hit.
func scaleDamage(d int, mult float64) int {
	if mult == 1 {
		return d
	}
	return int(math.Floor(float64(d) * mult))
}
