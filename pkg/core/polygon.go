package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a closed 2D polygon; the last vertex connects back to the first
type Polygon struct {
	Vertices []r2.Vec
}

var _ Shape = Polygon{}

// NewPolygon creates a closed polygon from its vertices in drawing order
func NewPolygon(vertices ...r2.Vec) Polygon {
	v := make([]r2.Vec, len(vertices))
	copy(v, vertices)
	return Polygon{Vertices: v}
}

// Contains reports whether p lies inside the polygon using the even-odd rule
func (pg Polygon) Contains(p r2.Vec) bool {
	n := len(pg.Vertices)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := pg.Vertices[i]
		b := pg.Vertices[j]

		// Count crossings of a horizontal ray cast from p towards +x
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the axis-aligned box enclosing all vertices
func (pg Polygon) Bounds() r2.Box {
	if len(pg.Vertices) == 0 {
		return r2.Box{}
	}

	box := r2.Box{Min: pg.Vertices[0], Max: pg.Vertices[0]}
	for _, v := range pg.Vertices[1:] {
		box.Min.X = math.Min(box.Min.X, v.X)
		box.Min.Y = math.Min(box.Min.Y, v.Y)
		box.Max.X = math.Max(box.Max.X, v.X)
		box.Max.Y = math.Max(box.Max.Y, v.Y)
	}
	return box
}

// Area returns the signed area (positive for counter-clockwise winding)
func (pg Polygon) Area() float64 {
	n := len(pg.Vertices)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += r2.Cross(pg.Vertices[i], pg.Vertices[(i+1)%n])
	}
	return sum / 2
}

// Edges returns the polygon edges including the closing edge
func (pg Polygon) Edges() []Segment {
	n := len(pg.Vertices)
	if n < 2 {
		return nil
	}

	edges := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, NewSegment(pg.Vertices[i], pg.Vertices[(i+1)%n]))
	}
	return edges
}
