package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/gridmap"
)

func newWaveSystems(f *fixture) (*WaveSystem, *SpawnSystem) {
	spawner := NewSpawnSystem(f.world, f.balance, f.track, f.rng)
	return NewWaveSystem(f.world, f.balance, spawner, f.rng, f.events), spawner
}

func TestPrepareToBattleToWaveClear(t *testing.T) {
	f := newFixture()
	f.balance.SpawnQuota = 3
	waves, spawner := newWaveSystems(f)

	waves.Update(4999)
	if f.world.Phase != component.PhasePrepare {
		t.Fatal("left prepare early")
	}
	waves.Update(1)
	if f.world.Phase != component.PhaseBattle || f.world.Wave != 1 {
		t.Fatalf("phase=%s wave=%d", f.world.Phase, f.world.Wave)
	}
	if tp := f.world.WaveEnemyType; tp != defs.EnemyTypeA && tp != defs.EnemyTypeB {
		t.Errorf("wave 1 type = %s, want A or B", tp)
	}

	prev := 0
	for f.world.Phase == component.PhaseBattle {
		spawner.Update(500)
		waves.CheckQuota()
		if n := len(f.world.Enemies); n < prev {
			t.Fatal("enemy count decreased during battle")
		} else {
			prev = n
		}
	}
	if f.world.Phase != component.PhaseWaveClear || len(f.world.Enemies) != 3 {
		t.Fatalf("phase=%s enemies=%d", f.world.Phase, len(f.world.Enemies))
	}
	if f.world.WaveTimerMs != f.balance.RestTimeMs {
		t.Errorf("rest timer = %v", f.world.WaveTimerMs)
	}

	for _, e := range f.world.Enemies {
		if e.Boss != nil || e.Type != f.world.WaveEnemyType {
			t.Errorf("unexpected regular spawn %+v", e)
		}
		if !isSpawnPoint(f, e.Pos) {
			t.Errorf("spawn at %v is not near an entry point", e.Pos)
		}
	}

	events := f.events.Drain()
	if events[0].Type != event.WaveStart || events[len(events)-1].Type != event.WaveClear {
		t.Errorf("event order %+v", events)
	}
}

func isSpawnPoint(f *fixture, p gridmap.Point) bool {
	for _, idx := range f.track.SpawnIndices {
		wp := f.track.Waypoint(idx)
		dx, dy := p.X-wp.X, p.Y-wp.Y
		if dx >= -0.15 && dx <= 0.15 && dy >= -0.15 && dy <= 0.15 {
			return true
		}
	}
	return false
}

func TestBossWaveSpawnsBoss(t *testing.T) {
	f := newFixture()
	f.world.Wave = 9
	f.world.Phase = component.PhaseWaveClear
	f.world.WaveTimerMs = 10
	waves, _ := newWaveSystems(f)

	waves.Update(10)
	if f.world.Wave != 10 || f.world.Phase != component.PhaseBattle {
		t.Fatalf("wave=%d phase=%s", f.world.Wave, f.world.Phase)
	}
	boss := f.world.Boss()
	if boss == nil || boss.Boss.Ability != defs.AbilityDash || boss.Type != defs.EnemyTypeD {
		t.Fatalf("boss = %+v", boss)
	}
	events := f.events.Drain()
	if len(events) != 2 || events[0].Type != event.WaveStart || events[1].Type != event.BossSpawn {
		t.Fatalf("events = %+v", events)
	}
	if f.world.SpawnedCount != 0 || f.world.SpawnTimerMs != f.balance.SpawnIntervalMs {
		t.Errorf("spawn counters not reset")
	}
}

func TestVictoryAfterFinalWave(t *testing.T) {
	f := newFixture()
	f.world.Wave = f.balance.FinalWave
	f.world.Phase = component.PhaseWaveClear
	f.world.WaveTimerMs = 100
	waves, _ := newWaveSystems(f)

	waves.Update(100)
	if f.world.Phase != component.PhaseVictory || f.world.Wave != f.balance.FinalWave {
		t.Fatalf("phase=%s wave=%d", f.world.Phase, f.world.Wave)
	}
	if events := f.events.Drain(); len(events) != 1 || events[0].Type != event.Victory {
		t.Fatalf("events = %+v", events)
	}

	waves.Update(100000)
	if f.world.Phase != component.PhaseVictory {
		t.Fatal("victory is not terminal")
	}
}

func TestGameOverAtCeiling(t *testing.T) {
	f := newFixture()
	f.world.Phase = component.PhaseBattle
	waves, _ := newWaveSystems(f)

	for i := 0; i < f.balance.MaxEnemies-1; i++ {
		f.addEnemy(defs.EnemyTypeA, 10, gridmap.Point{})
	}
	if waves.CheckGameOver() {
		t.Fatal("game over below the ceiling")
	}
	f.addEnemy(defs.EnemyTypeA, 10, gridmap.Point{})
	if !waves.CheckGameOver() || f.world.Phase != component.PhaseGameOver {
		t.Fatal("no game over at the ceiling")
	}
	if countEvents(f.events.Drain(), event.GameOver) != 1 {
		t.Fatal("missing game_over event")
	}
	waves.CheckGameOver()
	if f.events.Len() != 0 {
		t.Fatal("game_over emitted twice")
	}
}

func TestEnemyCurves(t *testing.T) {
	b := newFixture().balance
	if hp := EnemyHP(b, 1, defs.EnemyTypeA); hp != 80 {
		t.Errorf("wave 1 A hp = %d, want 80", hp)
	}
	if s := BaseSpeed(b, 20); s != 1.6 {
		t.Errorf("wave 20 speed = %v, want flat 1.6", s)
	}
	if s := BaseSpeed(b, 30); s < 1.799 || s > 1.801 {
		t.Errorf("wave 30 speed = %v, want 1.8", s)
	}
	if s := BaseSpeed(b, 40); s < 2.149 || s > 2.151 {
		t.Errorf("wave 40 speed = %v, want 2.15", s)
	}
	if s := EnemySpeed(b, 1, defs.EnemyTypeC); s < 2.079 || s > 2.081 {
		t.Errorf("type C speed = %v, want 2.08", s)
	}
}
