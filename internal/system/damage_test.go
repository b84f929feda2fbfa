package system

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
)

func TestDamage(t *testing.T) {
	tests := []struct {
		name     string
		attacker component.Attacker
		enemy    component.Enemy
		level    int
		want     int
	}{
		{
			name:     "neutral matchup",
			attacker: component.Attacker{Archetype: defs.ArchetypeSingle, Grade: defs.GradeF, Attack: 25},
			enemy:    component.Enemy{Type: defs.EnemyTypeD},
			want:     25,
		},
		{
			name:     "strong matchup",
			attacker: component.Attacker{Archetype: defs.ArchetypePenetrating, Grade: defs.GradeF, Attack: 18},
			enemy:    component.Enemy{Type: defs.EnemyTypeA},
			want:     27,
		},
		{
			name:     "weak matchup floors",
			attacker: component.Attacker{Archetype: defs.ArchetypeSingle, Grade: defs.GradeF, Attack: 25},
			enemy:    component.Enemy{Type: defs.EnemyTypeA},
			want:     12,
		},
		{
			name:     "boss reduction after matchup",
			attacker: component.Attacker{Archetype: defs.ArchetypePenetrating, Grade: defs.GradeF, Attack: 18},
			enemy:    component.Enemy{Type: defs.EnemyTypeA, Boss: &component.BossState{DamageReduction: 0.5}},
			want:     13,
		},
		{
			name:     "upgrade uses grade increment",
			attacker: component.Attacker{Archetype: defs.ArchetypeSingle, Grade: defs.GradeC, Attack: 87},
			enemy:    component.Enemy{Type: defs.EnemyTypeD},
			level:    2,
			want:     87 + 8*2,
		},
		{
			name:     "clamped to one",
			attacker: component.Attacker{Archetype: defs.ArchetypeArea, Grade: defs.GradeF, Attack: 1},
			enemy:    component.Enemy{Type: defs.EnemyTypeC},
			want:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Damage(tt.attacker, &tt.enemy, tt.level); got != tt.want {
				t.Errorf("Damage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDamageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := component.Attacker{
			Archetype: rapid.SampledFrom(defs.AllArchetypes).Draw(t, "archetype"),
			Grade:     rapid.SampledFrom(defs.AllGrades).Draw(t, "grade"),
			Attack:    rapid.IntRange(0, 1000).Draw(t, "attack"),
		}
		e := component.Enemy{Type: rapid.SampledFrom([]defs.EnemyType{"A", "B", "C", "D"}).Draw(t, "type")}
		if rapid.Bool().Draw(t, "boss") {
			e.Boss = &component.BossState{DamageReduction: rapid.SampledFrom([]float64{0, 0.5}).Draw(t, "reduction")}
		}
		level := rapid.IntRange(0, 10).Draw(t, "level")

		base := float64(a.Attack+defs.GradeUpgradeIncrement[a.Grade]*level) * defs.Matchup(a.Archetype, e.Type)
		want := math.Floor(base * (1 - e.DamageReduction()))
		if want < 1 {
			want = 1
		}
		if got := Damage(a, &e, level); got != int(want) {
			t.Fatalf("Damage = %d, want %v", got, want)
		}
	})
}
