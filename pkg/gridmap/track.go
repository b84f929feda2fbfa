// pkg/gridmap/track.go
package gridmap

import "math"

// Track is the square board: a closed ring of waypoints around the border and
// an inner region where units may stand.
type Track struct {
	Size         int
	Waypoints    []Point
	SpawnIndices []int
	InnerMin     float64
	InnerMax     float64
	pathCells    map[Cell]bool
}

// NewTrack builds the ring for a size×size board. The loop starts at the
// top-left corner, runs down the left column, right along the bottom row, up
// the right column and back left along the top row. The four spawn points sit
// at the start of each side.
func NewTrack(size int) *Track {
	t := &Track{
		Size:      size,
		InnerMin:  1,
		InnerMax:  float64(size - 2),
		pathCells: make(map[Cell]bool),
	}

	var cells []Cell
	for r := 0; r < size; r++ {
		cells = append(cells, Cell{0, r})
	}
	for c := 1; c < size; c++ {
		cells = append(cells, Cell{c, size - 1})
	}
	for r := size - 2; r >= 0; r-- {
		cells = append(cells, Cell{size - 1, r})
	}
	for c := size - 2; c >= 1; c-- {
		cells = append(cells, Cell{c, 0})
	}

	side := size - 1
	t.SpawnIndices = []int{0, side, 2 * side, 3 * side}
	for _, c := range cells {
		t.Waypoints = append(t.Waypoints, c.Center())
		t.pathCells[c] = true
	}
	return t
}

// Len returns the number of waypoints in the loop.
func (t *Track) Len() int {
	return len(t.Waypoints)
}

// Wrap maps any index onto the loop.
func (t *Track) Wrap(i int) int {
	n := len(t.Waypoints)
	return ((i % n) + n) % n
}

// Waypoint returns the waypoint at index i, wrapping around the loop.
func (t *Track) Waypoint(i int) Point {
	return t.Waypoints[t.Wrap(i)]
}

// IsPathCell reports whether the cell is part of the enemy ring.
func (t *Track) IsPathCell(c Cell) bool {
	return t.pathCells[c]
}

// CellAt returns the cell containing p.
func (t *Track) CellAt(p Point) Cell {
	return Cell{int(math.Round(p.X)), int(math.Round(p.Y))}
}

// InInner reports whether p lies inside the buildable region and off the path.
func (t *Track) InInner(p Point) bool {
	if p.X < t.InnerMin || p.X > t.InnerMax || p.Y < t.InnerMin || p.Y > t.InnerMax {
		return false
	}
	return !t.IsPathCell(t.CellAt(p))
}

// ClampInner pulls p back into the buildable region.
func (t *Track) ClampInner(p Point) Point {
	return Point{
		X: math.Max(t.InnerMin, math.Min(t.InnerMax, p.X)),
		Y: math.Max(t.InnerMin, math.Min(t.InnerMax, p.Y)),
	}
}

// InnerCells lists every buildable cell in row-major order.
func (t *Track) InnerCells() []Cell {
	var cells []Cell
	for r := int(t.InnerMin); r <= int(t.InnerMax); r++ {
		for c := int(t.InnerMin); c <= int(t.InnerMax); c++ {
			cell := Cell{c, r}
			if !t.IsPathCell(cell) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}
