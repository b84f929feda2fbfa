// pkg/gridmap/point.go
package gridmap

import "math"

// Point is a continuous position on the grid, measured in cells.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Cell is an integer grid cell.
type Cell struct {
	Col, Row int
}

func (c Cell) Center() Point {
	return Point{float64(c.Col), float64(c.Row)}
}
