package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is a directed straight line from Start to End
type Segment struct {
	Start r2.Vec
	End   r2.Vec
}

// NewSegment creates a new segment
func NewSegment(start, end r2.Vec) Segment {
	return Segment{Start: start, End: end}
}

// Delta returns End - Start
func (s Segment) Delta() r2.Vec {
	return r2.Sub(s.End, s.Start)
}

// Length returns the distance between the endpoints
func (s Segment) Length() float64 {
	return r2.Norm(s.Delta())
}

// IsDegenerate reports whether both endpoints coincide
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

// At returns the point a fraction t of the way from Start to End
func (s Segment) At(t float64) r2.Vec {
	return r2.Add(s.Start, r2.Scale(t, s.Delta()))
}

// ClosestPoint returns the point on the segment nearest to p
func (s Segment) ClosestPoint(p r2.Vec) r2.Vec {
	d := s.Delta()
	lengthSq := r2.Norm2(d)
	if lengthSq == 0 {
		return s.Start
	}

	t := r2.Dot(r2.Sub(p, s.Start), d) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return s.At(t)
}

// DistanceTo returns the shortest distance from p to the segment
func (s Segment) DistanceTo(p r2.Vec) float64 {
	return r2.Norm(r2.Sub(p, s.ClosestPoint(p)))
}

// StrokeContains reports whether p lies inside the outline of the segment
// stroked with the given width and square end caps. A zero-length segment
// has no direction to stroke along and contains nothing.
func (s Segment) StrokeContains(p r2.Vec, width float64) bool {
	if s.IsDegenerate() || width <= 0 {
		return false
	}

	length := s.Length()
	axis := r2.Scale(1/length, s.Delta())
	rel := r2.Sub(p, s.Start)
	halfWidth := width / 2

	along := r2.Dot(rel, axis)
	across := math.Abs(r2.Cross(axis, rel))
	return along >= -halfWidth && along <= length+halfWidth && across <= halfWidth
}
