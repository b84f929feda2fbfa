package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
)

func newBossFixture(wave int) (*fixture, *BossSystem, *component.Enemy) {
	f := newFixture()
	boss := NewSpawnSystem(f.world, f.balance, f.track, f.rng).NewBoss(wave)
	f.world.Enemies = append(f.world.Enemies, boss)
	return f, NewBossSystem(f.world, f.balance, f.track, f.rng), boss
}

func TestWaveTenBossDashes(t *testing.T) {
	f, s, boss := newBossFixture(10)
	if boss.Boss.Ability != defs.AbilityDash {
		t.Fatalf("ability = %s, want dash", boss.Boss.Ability)
	}
	if boss.PathIndex != 0 || boss.Pos != f.track.Waypoint(0) {
		t.Fatalf("boss should enter at path index 0 without jitter: %+v", boss)
	}

	for i := 0; i < 99; i++ {
		s.Update(100)
	}
	if boss.PathIndex != 0 {
		t.Fatalf("dashed early at timer %v", boss.Boss.AbilityTimerMs)
	}

	s.Update(100)
	if boss.PathIndex != 5 {
		t.Errorf("path index = %d, want 5", boss.PathIndex)
	}
	if boss.Pos != f.track.Waypoint(5) {
		t.Errorf("pos = %v, want waypoint 5 %v", boss.Pos, f.track.Waypoint(5))
	}
	if boss.Boss.AbilityTimerMs != 0 {
		t.Errorf("timer = %v, want 0", boss.Boss.AbilityTimerMs)
	}
}

func TestBossShieldCycle(t *testing.T) {
	_, s, boss := newBossFixture(20)
	if boss.Boss.Ability != defs.AbilityShield {
		t.Fatalf("ability = %s", boss.Boss.Ability)
	}

	s.Update(15000)
	if boss.DamageReduction() != 0.5 {
		t.Fatalf("reduction = %v, want 0.5", boss.DamageReduction())
	}
	s.Update(4000)
	if boss.DamageReduction() != 0.5 {
		t.Fatal("shield dropped early")
	}
	s.Update(1000)
	if boss.DamageReduction() != 0 {
		t.Fatalf("reduction = %v after duration, want 0", boss.DamageReduction())
	}
}

func TestBossTypeShift(t *testing.T) {
	_, s, boss := newBossFixture(30)
	s.Update(19999)
	if boss.Type != defs.EnemyTypeD {
		t.Fatal("type shifted early")
	}
	s.Update(1)
	if boss.Type == defs.EnemyTypeD {
		t.Fatal("type not shifted to a regular type")
	}
	if boss.Boss.AbilityTimerMs != 0 {
		t.Errorf("timer = %v", boss.Boss.AbilityTimerMs)
	}
}

func TestBossEnrage(t *testing.T) {
	_, s, boss := newBossFixture(40)
	start := boss.Speed

	s.Update(2500)
	if want := start + 0.04; boss.Speed < want-1e-9 || boss.Speed > want+1e-9 {
		t.Fatalf("speed = %v, want %v", boss.Speed, want)
	}

	boss.HP = boss.MaxHP/2 - 1
	s.Update(0)
	enraged := boss.Speed
	if want := (start + 0.04) * 1.5; enraged < want-1e-9 || enraged > want+1e-9 {
		t.Fatalf("enraged speed = %v, want %v", enraged, want)
	}
	s.Update(0)
	if boss.Speed != enraged {
		t.Fatal("enrage multiplier applied twice")
	}
}

func TestBossPhaseShift(t *testing.T) {
	_, s, boss := newBossFixture(50)
	start := boss.Speed

	boss.HP = boss.MaxHP * 60 / 100
	s.Update(16)
	if boss.Boss.Phase != 2 || boss.Type == defs.EnemyTypeD {
		t.Fatalf("phase two not entered: %+v", boss.Boss)
	}
	if want := start * 0.7; boss.Speed < want-1e-9 || boss.Speed > want+1e-9 {
		t.Fatalf("speed = %v, want %v", boss.Speed, want)
	}

	boss.HP = boss.MaxHP * 30 / 100
	s.Update(16)
	if boss.Boss.Phase != 3 || boss.Boss.Ability != defs.AbilityTypeShift || boss.Boss.AbilityTimerMs != 0 {
		t.Fatalf("phase three not entered: %+v", boss.Boss)
	}

	boss.HP = boss.MaxHP
	s.Update(16)
	if boss.Boss.Phase != 3 {
		t.Fatal("phase went backwards")
	}
}

func TestBossUnknownAbilityIsInert(t *testing.T) {
	_, s, boss := newBossFixture(10)
	boss.Boss.Ability = "teleport_home"
	before := *boss
	s.Update(60000)
	if boss.Pos != before.Pos || boss.Speed != before.Speed || boss.Type != before.Type {
		t.Fatal("unknown ability changed the boss")
	}
}
