package app

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/pkg/gridmap"
)

func TestFrameDriverClampsAndSkips(t *testing.T) {
	g := newTestGame(1)
	f := NewFrameDriver(g)

	if events := f.Frame(1000); events != nil || g.World.WaveTimerMs != 5000 {
		t.Fatal("first frame advanced the game")
	}

	// shorter than the minimum: skipped, time carried over
	f.Frame(1010)
	if g.World.WaveTimerMs != 5000 {
		t.Fatal("short frame advanced the game")
	}
	f.Frame(1020)
	if g.World.WaveTimerMs != 4980 {
		t.Fatalf("timer = %v, want 4980", g.World.WaveTimerMs)
	}

	// a stall is clamped
	f.Frame(9000)
	if g.World.WaveTimerMs != 4780 {
		t.Fatalf("timer = %v, want 4780", g.World.WaveTimerMs)
	}
	if g.Now() != 220 {
		t.Errorf("clock = %d, want 220", g.Now())
	}
}

func TestFrameDriverRestart(t *testing.T) {
	g := newTestGame(1)
	f := NewFrameDriver(g)
	f.Frame(0)
	f.Frame(100)
	f.Restart()
	f.Frame(50000)
	if g.World.WaveTimerMs != 4900 {
		t.Fatalf("timer = %v, want 4900", g.World.WaveTimerMs)
	}
	f.Frame(50100)
	if g.Now() != 200 {
		t.Fatalf("clock = %d, want 200", g.Now())
	}
}

func TestFrameDriverFreezeOutlastsIdleTime(t *testing.T) {
	g := newTestGame(1)
	w := g.World
	w.Spells = append(w.Spells, component.Spell{ID: "f", Type: defs.SpellFreeze})
	f := NewFrameDriver(g)
	f.Frame(1000)
	f.Frame(1100)
	if _, err := g.CastSpell("f", gridmap.Point{}); err != nil {
		t.Fatal(err)
	}
	until := w.FreezeUntilMs

	f.Restart()
	f.Frame(60000)
	for now := int64(60100); now <= 60500; now += 100 {
		f.Frame(now)
	}
	if w.EnemySpeedScale != 0 {
		t.Fatalf("freeze ended at game time %d, want it to last until %d", g.Now(), until)
	}
}
