package defs

import "math"

// UnitStats are the derived combat stats of an allied unit.
type UnitStats struct {
	HP               int
	Attack           int
	AttackIntervalMs int64
	Range            float64
	MoveSpeed        float64
	PierceCount      int     // penetrating only
	SplashRadius     float64 // area only
}

// BaseUnitStats are the grade-F stats per archetype.
var BaseUnitStats = map[Archetype]UnitStats{
	ArchetypeSingle:      {HP: 120, Attack: 25, AttackIntervalMs: 800, Range: 2.5, MoveSpeed: 3.0},
	ArchetypeArea:        {HP: 90, Attack: 12, AttackIntervalMs: 1200, Range: 3.0, MoveSpeed: 2.2, SplashRadius: 1.5},
	ArchetypePenetrating: {HP: 100, Attack: 18, AttackIntervalMs: 1000, Range: 3.5, MoveSpeed: 2.5, PierceCount: 3},
}

const minAttackIntervalMs = 400

var (
	GradeMultiplier = map[Grade]float64{
		GradeF: 1.0, GradeE: 1.5, GradeD: 2.2, GradeC: 3.5, GradeB: 5.0, GradeA: 7.5, GradeS: 12.0,
	}
	GradeSellPrice = map[Grade]int{
		GradeF: 30, GradeE: 60, GradeD: 120, GradeC: 250, GradeB: 500, GradeA: 1000, GradeS: 2500,
	}
	// S units cannot be merged, so they have no cost entry.
	GradeMergeCost = map[Grade]int{
		GradeF: 50, GradeE: 100, GradeD: 200, GradeC: 400, GradeB: 800, GradeA: 1600,
	}
	// GradeUpgradeIncrement is the attack added per archetype upgrade level.
	GradeUpgradeIncrement = map[Grade]int{
		GradeF: 2, GradeE: 3, GradeD: 5, GradeC: 8, GradeB: 12, GradeA: 18, GradeS: 30,
	}
	// SummonGradeWeights is indexed by Grade.
	SummonGradeWeights = []float64{45, 30, 15, 7, 2.5, 0.45, 0.05}
)

// StatsFor derives the stats of a unit of the given archetype and grade.
func StatsFor(a Archetype, g Grade) UnitStats {
	base := BaseUnitStats[a]
	mult := GradeMultiplier[g]

	interval := int64(math.Floor(float64(base.AttackIntervalMs) / (1 + (mult-1)*0.15)))
	if interval < minAttackIntervalMs {
		interval = minAttackIntervalMs
	}

	s := UnitStats{
		HP:               int(math.Floor(float64(base.HP) * mult)),
		Attack:           int(math.Floor(float64(base.Attack) * mult)),
		AttackIntervalMs: interval,
		Range:            base.Range,
		MoveSpeed:        base.MoveSpeed * (1 + (mult-1)*0.05),
		PierceCount:      base.PierceCount,
		SplashRadius:     base.SplashRadius,
	}
	if g == GradeS {
		s.Range++
		if a == ArchetypePenetrating {
			s.PierceCount++
		}
		if a == ArchetypeArea {
			s.SplashRadius += 0.5
		}
	}
	return s
}
