package gridmap

import (
	"testing"

	"pgregory.net/rapid"
)

func TestNewTrackRing(t *testing.T) {
	tr := NewTrack(12)
	if tr.Len() != 44 {
		t.Fatalf("ring length = %d, want 44", tr.Len())
	}

	want := []int{0, 11, 22, 33}
	for i, idx := range tr.SpawnIndices {
		if idx != want[i] {
			t.Errorf("spawn index %d = %d, want %d", i, idx, want[i])
		}
	}

	// Consecutive waypoints, including the wrap, are one cell apart.
	for i := 0; i < tr.Len(); i++ {
		d := Distance(tr.Waypoint(i), tr.Waypoint(i+1))
		if d != 1 {
			t.Fatalf("waypoints %d and %d are %v apart", i, i+1, d)
		}
	}

	if tr.Waypoint(11) != (Point{0, 11}) || tr.Waypoint(22) != (Point{11, 11}) || tr.Waypoint(33) != (Point{11, 0}) {
		t.Errorf("corner waypoints misplaced")
	}
}

func TestInnerCellsAvoidPath(t *testing.T) {
	tr := NewTrack(12)
	cells := tr.InnerCells()
	if len(cells) != 100 {
		t.Fatalf("inner cells = %d, want 100", len(cells))
	}
	for _, c := range cells {
		if tr.IsPathCell(c) {
			t.Fatalf("inner cell %v is on the path", c)
		}
		if !tr.InInner(c.Center()) {
			t.Fatalf("inner cell %v not reported inner", c)
		}
	}
	if tr.InInner(Point{0, 5}) {
		t.Error("path cell reported as inner")
	}
}

func TestWrapProperty(t *testing.T) {
	tr := NewTrack(12)
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.IntRange(-1000, 1000).Draw(t, "i")
		w := tr.Wrap(i)
		if w < 0 || w >= tr.Len() {
			t.Fatalf("Wrap(%d) = %d out of range", i, w)
		}
		if tr.Wrap(i+tr.Len()) != w {
			t.Fatalf("Wrap not periodic at %d", i)
		}
	})
}

func TestClampInnerProperty(t *testing.T) {
	tr := NewTrack(12)
	rapid.Check(t, func(t *rapid.T) {
		p := Point{
			X: rapid.Float64Range(-50, 50).Draw(t, "x"),
			Y: rapid.Float64Range(-50, 50).Draw(t, "y"),
		}
		c := tr.ClampInner(p)
		if c.X < tr.InnerMin || c.X > tr.InnerMax || c.Y < tr.InnerMin || c.Y > tr.InnerMax {
			t.Fatalf("ClampInner(%v) = %v outside inner region", p, c)
		}
	})
}
