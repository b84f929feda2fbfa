package app

import (
	"testing"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

func TestSelectionKeepsLatestThree(t *testing.T) {
	var s Selection
	for _, id := range []types.EntityID{1, 2, 3, 4} {
		s.Toggle(id)
	}
	g, ok := s.Group()
	if !ok || g != [3]types.EntityID{2, 3, 4} {
		t.Fatalf("group = %v, %v", g, ok)
	}

	s.Toggle(3)
	if s.Has(3) || s.Len() != 2 {
		t.Fatal("toggle did not remove")
	}
	if _, ok := s.Group(); ok {
		t.Fatal("partial selection reported as a group")
	}
}

func TestSelectionPrune(t *testing.T) {
	g := newTestGame(1)
	u := placeUnit(t, g, defs.ArchetypeSingle, defs.GradeF, gridmap.Point{X: 3, Y: 3})
	var s Selection
	s.Toggle(u.ID)
	s.Toggle(999)
	s.Prune(g.World)
	if s.Len() != 1 || !s.Has(u.ID) {
		t.Fatalf("prune kept %v", s.Set())
	}
}

func TestSummonAtPrefersCursorCell(t *testing.T) {
	g := newTestGame(1)
	u, err := g.SummonAt(gridmap.Point{X: 4.2, Y: 6.9})
	if err != nil {
		t.Fatal(err)
	}
	if u.Pos != (gridmap.Point{X: 4, Y: 7}) {
		t.Fatalf("placed at %v", u.Pos)
	}
	if g.UnitAt(gridmap.Point{X: 4.1, Y: 7}) != u {
		t.Fatal("UnitAt missed the unit")
	}

	// occupied and path cells fall back to a random free cell
	v, err := g.SummonAt(gridmap.Point{X: 4, Y: 7})
	if err != nil {
		t.Fatal(err)
	}
	if v.Pos == u.Pos || !g.Track.InInner(v.Pos) {
		t.Fatalf("fallback placed at %v", v.Pos)
	}
	w, err := g.SummonAt(gridmap.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Track.InInner(w.Pos) {
		t.Fatalf("path fallback placed at %v", w.Pos)
	}
}
