// Package lightray models one straight segment of a light beam lying entirely
// within a single medium.
//
// Segments are built by a ray-tracing solver with fully resolved values and
// are never modified afterwards. The renderer reads their geometry, phase and
// wave footprint to draw either a thin ray or a wide wave.
package lightray

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sancharinfotech/bending-light/pkg/core"
)

// SpeedOfLight in vacuum, m/s
const SpeedOfLight = 2.99792458e8

// DefaultRayWidth is the hit-test stroke width in meters for ray mode.
// At the default view transform it corresponds to a 4 pixel stroke.
const DefaultRayWidth = 1.5992063492063494e-7

// Params holds everything the solver resolves for one segment
type Params struct {
	Tail r2.Vec // Start point in meters
	Tip  r2.Vec // End point in meters; tail -> tip is the propagation direction

	IndexOfRefraction float64 // Index of the medium at this wavelength
	Wavelength        float64 // Vacuum wavelength in meters
	PowerFraction     float64 // Share of the source power, 1.0 is full strength

	// Whole wavelengths elapsed before this segment begins; zero for the
	// segment leaving the source
	NumWavelengthsPhaseOffset float64

	WaveWidth      float64 // Footprint width at the tail
	TrapeziumWidth float64 // Footprint width at the tip

	Color           color.Color
	Extend          bool       // Renderer should lengthen the segment forwards
	ExtendBackwards bool       // Renderer should lengthen the segment backwards
	OppositeMedium  core.Shape // Used to clip the wave footprint; may be nil

	RayWidth float64 // Ray-mode stroke width; zero selects DefaultRayWidth
}

// LightRay is an immutable beam segment
type LightRay struct {
	tail, tip r2.Vec

	indexOfRefraction         float64
	wavelength                float64
	powerFraction             float64
	numWavelengthsPhaseOffset float64

	waveWidth      float64
	trapeziumWidth float64
	rayWidth       float64

	color           color.Color
	extend          bool
	extendBackwards bool
	oppositeMedium  core.Shape
}

// New validates p and creates a light ray segment. A zero-length segment is
// accepted; direction queries on it report core.ErrDegenerateGeometry.
func New(p Params) (*LightRay, error) {
	if !finitePoint(p.Tail) || !finitePoint(p.Tip) {
		return nil, fmt.Errorf("%w: endpoints must be finite, got tail %v tip %v", core.ErrInvalidSegment, p.Tail, p.Tip)
	}
	if !(p.Wavelength > 0) || math.IsInf(p.Wavelength, 0) {
		return nil, fmt.Errorf("%w: %v m", core.ErrOutOfRangeWavelength, p.Wavelength)
	}
	if !(p.IndexOfRefraction >= 1) || math.IsInf(p.IndexOfRefraction, 0) {
		return nil, fmt.Errorf("%w: index of refraction must be finite and >= 1, got: %v", core.ErrInvalidSegment, p.IndexOfRefraction)
	}
	if !(p.PowerFraction >= 0 && p.PowerFraction <= 1) {
		return nil, fmt.Errorf("%w: power fraction must be between 0 and 1, got: %v", core.ErrInvalidSegment, p.PowerFraction)
	}
	if math.IsNaN(p.NumWavelengthsPhaseOffset) || math.IsInf(p.NumWavelengthsPhaseOffset, 0) {
		return nil, fmt.Errorf("%w: phase offset must be finite, got: %v", core.ErrInvalidSegment, p.NumWavelengthsPhaseOffset)
	}
	if !(p.WaveWidth >= 0) || !(p.TrapeziumWidth >= 0) || !(p.RayWidth >= 0) {
		return nil, fmt.Errorf("%w: widths must be non-negative, got wave %v trapezium %v ray %v",
			core.ErrInvalidSegment, p.WaveWidth, p.TrapeziumWidth, p.RayWidth)
	}

	rayWidth := p.RayWidth
	if rayWidth == 0 {
		rayWidth = DefaultRayWidth
	}

	return &LightRay{
		tail:                      p.Tail,
		tip:                       p.Tip,
		indexOfRefraction:         p.IndexOfRefraction,
		wavelength:                p.Wavelength,
		powerFraction:             p.PowerFraction,
		numWavelengthsPhaseOffset: p.NumWavelengthsPhaseOffset,
		waveWidth:                 p.WaveWidth,
		trapeziumWidth:            p.TrapeziumWidth,
		rayWidth:                  rayWidth,
		color:                     p.Color,
		extend:                    p.Extend,
		extendBackwards:           p.ExtendBackwards,
		oppositeMedium:            p.OppositeMedium,
	}, nil
}

// Tail returns the start point
func (lr *LightRay) Tail() r2.Vec {
	return lr.tail
}

// Tip returns the end point
func (lr *LightRay) Tip() r2.Vec {
	return lr.tip
}

// IndexOfRefraction returns the resolved index of the medium
func (lr *LightRay) IndexOfRefraction() float64 {
	return lr.indexOfRefraction
}

// Wavelength returns the vacuum wavelength in meters
func (lr *LightRay) Wavelength() float64 {
	return lr.wavelength
}

// PowerFraction returns the share of source power carried by the segment
func (lr *LightRay) PowerFraction() float64 {
	return lr.powerFraction
}

// NumWavelengthsPhaseOffset returns the whole wavelengths elapsed before the tail
func (lr *LightRay) NumWavelengthsPhaseOffset() float64 {
	return lr.numWavelengthsPhaseOffset
}

// WaveWidth returns the footprint width at the tail
func (lr *LightRay) WaveWidth() float64 {
	return lr.waveWidth
}

// TrapeziumWidth returns the footprint width at the tip
func (lr *LightRay) TrapeziumWidth() float64 {
	return lr.trapeziumWidth
}

// RayWidth returns the ray-mode stroke width
func (lr *LightRay) RayWidth() float64 {
	return lr.rayWidth
}

// Color returns the display color
func (lr *LightRay) Color() color.Color {
	return lr.color
}

// Extend reports whether the renderer should lengthen the segment forwards
func (lr *LightRay) Extend() bool {
	return lr.extend
}

// ExtendBackwards reports whether the renderer should lengthen the segment backwards
func (lr *LightRay) ExtendBackwards() bool {
	return lr.extendBackwards
}

// OppositeMedium returns the adjacent medium used for clipping, or nil
func (lr *LightRay) OppositeMedium() core.Shape {
	return lr.oppositeMedium
}

// Speed returns the phase velocity c/n in m/s
func (lr *LightRay) Speed() float64 {
	return SpeedOfLight / lr.indexOfRefraction
}

// Line returns the segment from tail to tip
func (lr *LightRay) Line() core.Segment {
	return core.NewSegment(lr.tail, lr.tip)
}

// Length returns |tip - tail| in meters
func (lr *LightRay) Length() float64 {
	return r2.Norm(lr.DirectionVector())
}

// DirectionVector returns tip - tail
func (lr *LightRay) DirectionVector() r2.Vec {
	return r2.Sub(lr.tip, lr.tail)
}

// UnitVector returns the normalized propagation direction
func (lr *LightRay) UnitVector() (r2.Vec, error) {
	if lr.tail == lr.tip {
		return r2.Vec{}, fmt.Errorf("%w: tail and tip are both %v", core.ErrDegenerateGeometry, lr.tail)
	}
	return r2.Unit(lr.DirectionVector()), nil
}

// Angle returns the propagation direction in radians, counter-clockwise from +x
func (lr *LightRay) Angle() (float64, error) {
	if lr.tail == lr.tip {
		return 0, fmt.Errorf("%w: tail and tip are both %v", core.ErrDegenerateGeometry, lr.tail)
	}
	d := lr.DirectionVector()
	return math.Atan2(d.Y, d.X), nil
}

// VelocityVector returns the unit direction scaled by Speed
func (lr *LightRay) VelocityVector() (r2.Vec, error) {
	u, err := lr.UnitVector()
	if err != nil {
		return r2.Vec{}, err
	}
	return r2.Scale(lr.Speed(), u), nil
}

// NumberOfWavelengths returns how many vacuum wavelengths fit in the segment
func (lr *LightRay) NumberOfWavelengths() float64 {
	return lr.Length() / lr.wavelength
}

// Frequency returns Speed / Wavelength in Hz
func (lr *LightRay) Frequency() float64 {
	return lr.Speed() / lr.wavelength
}

// AngularFrequency returns 2π·Frequency in rad/s
func (lr *LightRay) AngularFrequency() float64 {
	return 2 * math.Pi * lr.Frequency()
}

func finitePoint(p r2.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
