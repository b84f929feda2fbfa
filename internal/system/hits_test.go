package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/gridmap"
)

func TestPendingHitSkipsRemovedTarget(t *testing.T) {
	f := newFixture()
	gone := f.addEnemy(defs.EnemyTypeA, 100, gridmap.Point{X: 3, Y: 0})
	alive := f.addEnemy(defs.EnemyTypeA, 100, gridmap.Point{X: 4, Y: 0})

	f.world.PendingHits = append(f.world.PendingHits, component.PendingHit{
		DeliverAtMs: 500,
		UnitID:      99,
		Hits: []component.Hit{
			{EnemyID: gone.ID, Damage: 40},
			{EnemyID: alive.ID, Damage: 30},
		},
	})

	// the first target dies to something else before the hit lands
	gone.HP = 0
	f.world.RemoveDeadEnemies()

	s := NewHitSystem(f.world, f.rng, f.events)
	s.Update(499)
	if alive.HP != 100 || len(f.world.PendingHits) != 1 {
		t.Fatal("hit delivered before its time")
	}

	s.Update(500)
	if alive.HP != 70 {
		t.Errorf("unrelated hit did not land: hp=%d", alive.HP)
	}
	if len(f.world.PendingHits) != 0 {
		t.Errorf("queue not drained: %d", len(f.world.PendingHits))
	}
	events := f.events.Drain()
	if attackDamageTo(events, gone.ID) != 0 {
		t.Error("damage reported against removed enemy")
	}
	if attackDamageTo(events, alive.ID) != 30 {
		t.Error("missing unit_attack for landed hit")
	}
}

func TestPendingHitEffectsStampedAtDelivery(t *testing.T) {
	f := newFixture()
	e := f.addEnemy(defs.EnemyTypeA, 100, gridmap.Point{X: 3, Y: 0})
	f.world.PendingHits = []component.PendingHit{{
		DeliverAtMs: 200,
		Hits:        []component.Hit{{EnemyID: e.ID, Damage: 1}},
		Effects:     []component.Effect{{Kind: component.EffectSlash, CreatedAtMs: 80, DurationMs: 200}},
	}}

	NewHitSystem(f.world, f.rng, f.events).Update(250)
	found := false
	for _, fx := range f.world.Effects {
		if fx.Kind == component.EffectSlash {
			found = true
			if fx.CreatedAtMs != 250 {
				t.Errorf("effect stamped %d, want 250", fx.CreatedAtMs)
			}
		}
	}
	if !found {
		t.Fatal("queued effect not materialised")
	}
}

func TestSplashRecomputedAtDelivery(t *testing.T) {
	f := newFixture()
	target := f.addEnemy(defs.EnemyTypeD, 1000, gridmap.Point{X: 5, Y: 0})
	latecomer := f.addEnemy(defs.EnemyTypeD, 1000, gridmap.Point{X: 9, Y: 0})
	leaver := f.addEnemy(defs.EnemyTypeD, 1000, gridmap.Point{X: 5.5, Y: 0})

	attacker := component.Attacker{UnitID: 42, Archetype: defs.ArchetypeArea, Grade: defs.GradeF, Attack: 12}
	f.world.PendingHits = []component.PendingHit{{
		DeliverAtMs: 350,
		UnitID:      42,
		Splash: &component.Splash{
			TargetID: target.ID, Center: target.Pos, Radius: 1.5,
			Attacker: attacker, Multiplier: 1,
		},
	}}

	// between declaration and landing the target walks on, one enemy joins it
	// and one leaves
	target.Pos = gridmap.Point{X: 8, Y: 0}
	leaver.Pos = gridmap.Point{X: 3, Y: 0}

	NewHitSystem(f.world, f.rng, f.events).Update(350)
	if target.HP != 988 || latecomer.HP != 988 {
		t.Errorf("blast around live position missed: target=%d latecomer=%d", target.HP, latecomer.HP)
	}
	if leaver.HP != 1000 {
		t.Errorf("enemy that left the radius was hit: %d", leaver.HP)
	}
	if n := countEvents(f.events.Drain(), event.UnitAttack); n != 2 {
		t.Errorf("unit_attack events = %d, want 2", n)
	}
}

func TestSplashUsesDeclaredCenterWhenTargetGone(t *testing.T) {
	f := newFixture()
	bystander := f.addEnemy(defs.EnemyTypeD, 1000, gridmap.Point{X: 5.5, Y: 0})
	f.world.PendingHits = []component.PendingHit{{
		DeliverAtMs: 0,
		Splash: &component.Splash{
			TargetID: 12345, Center: gridmap.Point{X: 5, Y: 0}, Radius: 1.5,
			Attacker:   component.Attacker{Archetype: defs.ArchetypeArea, Grade: defs.GradeF, Attack: 12},
			Multiplier: 1,
		},
	}}

	NewHitSystem(f.world, f.rng, f.events).Update(0)
	if bystander.HP != 988 {
		t.Errorf("bystander hp = %d, want 988", bystander.HP)
	}
}

func TestCleanupEmitsKills(t *testing.T) {
	f := newFixture()
	f.addEnemy(defs.EnemyTypeA, 10, gridmap.Point{})
	dead := f.addEnemy(defs.EnemyTypeA, 10, gridmap.Point{})
	dead.HP = 0

	NewCleanupSystem(f.world, f.balance, f.events).Update(100)
	events := f.events.Drain()
	if len(events) != 1 || events[0].Type != event.EnemyKilled {
		t.Fatalf("events = %+v", events)
	}
	if data := events[0].Data.(event.EnemyKilledData); data.EnemyID != dead.ID || data.Boss {
		t.Errorf("kill data = %+v", data)
	}
	if len(f.world.Enemies) != 1 {
		t.Errorf("enemies left = %d", len(f.world.Enemies))
	}
}

func TestVisualEffectsExpire(t *testing.T) {
	f := newFixture()
	f.world.Effects = []component.Effect{
		{Kind: component.EffectBeam, CreatedAtMs: 0, DurationMs: 100},
		{Kind: component.EffectArc, CreatedAtMs: 0, DurationMs: 300},
	}
	NewVisualEffectSystem(f.world).Update(100)
	if len(f.world.Effects) != 1 || f.world.Effects[0].Kind != component.EffectArc {
		t.Fatalf("effects = %+v", f.world.Effects)
	}
}
