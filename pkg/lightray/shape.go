package lightray

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sancharinfotech/bending-light/pkg/core"
)

// WaveShape returns the trapezoidal footprint of the segment in wave mode.
// The widths are horizontal chords, so the corners are offset along x from
// the tail and tip rather than perpendicular to the ray.
func (lr *LightRay) WaveShape() core.Polygon {
	tailHalf := lr.waveWidth / 2
	tipHalf := lr.trapeziumWidth / 2

	return core.NewPolygon(
		r2.Vec{X: lr.tail.X + tailHalf, Y: lr.tail.Y},
		r2.Vec{X: lr.tail.X - tailHalf, Y: lr.tail.Y},
		r2.Vec{X: lr.tip.X - tipHalf, Y: lr.tip.Y},
		r2.Vec{X: lr.tip.X + tipHalf, Y: lr.tip.Y},
	)
}

// Contains reports whether p hits the segment as drawn: the wave footprint in
// wave mode, or the stroked line of width RayWidth in ray mode
func (lr *LightRay) Contains(p r2.Vec, waveMode bool) bool {
	if waveMode {
		return lr.WaveShape().Contains(p)
	}
	return lr.Line().StrokeContains(p, lr.rayWidth)
}

// VisibleContains is Contains with the wave footprint clipped against the
// opposite medium, so points that the renderer hides behind the adjacent
// medium do not hit
func (lr *LightRay) VisibleContains(p r2.Vec, waveMode bool) bool {
	if !lr.Contains(p, waveMode) {
		return false
	}
	if waveMode && lr.oppositeMedium != nil {
		return !lr.oppositeMedium.Contains(p)
	}
	return true
}
