package app

import (
	"slices"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

// MergeGroupSize is how many units a merge consumes.
const MergeGroupSize = 3

// Selection is the ordered set of units picked for a merge. Picking a fourth
// unit drops the oldest pick.
type Selection struct {
	ids []types.EntityID
}

// Toggle adds id, or removes it when already selected.
func (s *Selection) Toggle(id types.EntityID) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
	if len(s.ids) > MergeGroupSize {
		s.ids = s.ids[1:]
	}
}

func (s *Selection) Has(id types.EntityID) bool {
	return slices.Contains(s.ids, id)
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.ids = nil
}

// Set returns the selection as a lookup map.
func (s *Selection) Set() map[types.EntityID]bool {
	m := make(map[types.EntityID]bool, len(s.ids))
	for _, id := range s.ids {
		m[id] = true
	}
	return m
}

// Prune forgets units that are no longer on the board.
func (s *Selection) Prune(w *entity.World) {
	s.ids = slices.DeleteFunc(s.ids, func(id types.EntityID) bool {
		return w.Unit(id) == nil
	})
}

// Group returns the three picks when the selection is full.
func (s *Selection) Group() ([MergeGroupSize]types.EntityID, bool) {
	var g [MergeGroupSize]types.EntityID
	if len(s.ids) != MergeGroupSize {
		return g, false
	}
	copy(g[:], s.ids)
	return g, true
}

// UnitAt returns the unit standing closest to p within half a cell.
func (g *Game) UnitAt(p gridmap.Point) *component.Unit {
	var best *component.Unit
	bestDist := 0.5
	for _, u := range g.World.Units {
		if d := gridmap.Distance(p, u.Pos); d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// SummonAt summons a unit onto the cell at p when it is free and buildable,
// otherwise onto a random free cell.
func (g *Game) SummonAt(p gridmap.Point) (*component.Unit, error) {
	center := g.Track.CellAt(p).Center()
	if !g.Track.InInner(center) || g.UnitAt(center) != nil {
		return g.SummonAndPlace()
	}
	u, err := g.Summon()
	if err != nil {
		return nil, err
	}
	if err := g.Place(u, center); err != nil {
		return nil, err
	}
	return u, nil
}
