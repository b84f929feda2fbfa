package system

import (
	"testing"

	"pgregory.net/rapid"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/pkg/gridmap"
)

func TestAdvanceSnapsAndWraps(t *testing.T) {
	f := newFixture()
	e := &component.Enemy{Pos: f.track.Waypoint(0), PathIndex: 0}

	Advance(e, f.track, 0.4)
	if e.PathIndex != 0 || e.Pos != (gridmap.Point{X: 0, Y: 0.4}) {
		t.Fatalf("partial move: %+v", e)
	}

	Advance(e, f.track, 0.6)
	if e.PathIndex != 1 || e.Pos != f.track.Waypoint(1) {
		t.Fatalf("snap: %+v", e)
	}

	e.PathIndex = f.track.Len() - 1
	e.Pos = f.track.Waypoint(e.PathIndex)
	Advance(e, f.track, 5)
	if e.PathIndex != 0 || e.Pos != f.track.Waypoint(0) {
		t.Fatalf("wrap: %+v", e)
	}
}

func TestMovementSpeedModifiers(t *testing.T) {
	f := newFixture()
	e := f.addEnemy(defs.EnemyTypeA, 10, f.track.Waypoint(0))
	e.Speed = 1
	s := NewMovementSystem(f.world, f.track)

	f.world.Commander = defs.LookupCommander("cmd_slow")
	s.Update(500)
	if got := e.Pos.Y; got < 0.399 || got > 0.401 {
		t.Fatalf("slowed move = %v, want 0.4", got)
	}

	f.world.EnemySpeedScale = 0
	before := e.Pos
	s.Update(1000)
	if e.Pos != before {
		t.Fatal("frozen enemy moved")
	}
}

func TestAdvanceProperty(t *testing.T) {
	f := newFixture()
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, f.track.Len()-1).Draw(t, "index")
		e := &component.Enemy{Pos: f.track.Waypoint(idx), PathIndex: idx}
		steps := rapid.SliceOfN(rapid.Float64Range(0, 2), 1, 50).Draw(t, "steps")
		for _, travel := range steps {
			before := gridmap.Distance(e.Pos, f.track.Waypoint(e.PathIndex+1))
			prevIdx := e.PathIndex
			Advance(e, f.track, travel)
			if e.PathIndex < 0 || e.PathIndex >= f.track.Len() {
				t.Fatalf("path index %d out of range", e.PathIndex)
			}
			if e.PathIndex == prevIdx {
				after := gridmap.Distance(e.Pos, f.track.Waypoint(e.PathIndex+1))
				if after > before+1e-9 {
					t.Fatalf("moved away from waypoint: %v -> %v", before, after)
				}
			} else if e.Pos != f.track.Waypoint(e.PathIndex) {
				t.Fatalf("advanced without snapping: %+v", e)
			}
		}
	})
}
