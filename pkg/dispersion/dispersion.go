// Package dispersion models the wavelength dependence of a material's index
// of refraction.
//
// A material is characterized by one reference point: the index it has at a
// reference wavelength. Its dispersion curve is a linear blend of a measured
// air curve and a Sellmeier glass curve, n(λ) = x·G(λ) + (1-x)·A(λ), where the
// weight x >= 0 is chosen so the blend passes through the reference point.
// x = 0 is air, x = 1 is glass, and x > 1 extrapolates past glass.
package dispersion

import (
	"fmt"
	"math"

	"github.com/sancharinfotech/bending-light/pkg/core"
)

// WavelengthRed is the conventional reference wavelength in meters
const WavelengthRed = 650e-9

// Sellmeier coefficients for the glass reference curve (C terms in m²)
const (
	sellmeierB1 = 1.03961212
	sellmeierB2 = 0.231792344
	sellmeierB3 = 1.01046945
	sellmeierC1 = 6.00069867e-3 * 1e-12
	sellmeierC2 = 2.00179144e-2 * 1e-12
	sellmeierC3 = 1.03560653e2 * 1e-12
)

// Function is the dispersion curve of a single material
type Function struct {
	referenceIndex      float64
	referenceWavelength float64
	weight              float64 // 0 = air, 1 = glass
}

// New creates the dispersion function that has exactly referenceIndex at
// referenceWavelength (meters)
func New(referenceIndex, referenceWavelength float64) (*Function, error) {
	if math.IsNaN(referenceIndex) || math.IsInf(referenceIndex, 0) {
		return nil, fmt.Errorf("%w: reference index %v is not finite", core.ErrDegenerateDispersion, referenceIndex)
	}
	if !validWavelength(referenceWavelength) {
		return nil, fmt.Errorf("%w: reference wavelength %v", core.ErrOutOfRangeWavelength, referenceWavelength)
	}

	nAirRef := AirIndex(referenceWavelength)
	nGlassRef := GlassIndex(referenceWavelength)
	if !isFinite(nAirRef) || !isFinite(nGlassRef) {
		return nil, fmt.Errorf("%w: reference curves not finite at %v m (air %v, glass %v)",
			core.ErrOutOfRangeWavelength, referenceWavelength, nAirRef, nGlassRef)
	}

	x := (referenceIndex - nAirRef) / (nGlassRef - nAirRef)
	if !isFinite(x) {
		return nil, fmt.Errorf("%w: air and glass indices coincide at %v m", core.ErrDegenerateDispersion, referenceWavelength)
	}

	// No upper clamp: denser than glass extrapolates along the glass curve
	x = math.Max(0, x)

	return &Function{
		referenceIndex:      referenceIndex,
		referenceWavelength: referenceWavelength,
		weight:              x,
	}, nil
}

// NewAtRed creates a dispersion function referenced to WavelengthRed
func NewAtRed(referenceIndex float64) (*Function, error) {
	return New(referenceIndex, WavelengthRed)
}

// ReferenceIndex returns the index the material has at its reference wavelength
func (f *Function) ReferenceIndex() float64 {
	return f.referenceIndex
}

// ReferenceWavelength returns the calibration wavelength in meters
func (f *Function) ReferenceWavelength() float64 {
	return f.referenceWavelength
}

// Weight returns how glass-like the material is (never negative)
func (f *Function) Weight() float64 {
	return f.weight
}

// IndexAt returns the index of refraction at the given wavelength in meters
func (f *Function) IndexAt(wavelength float64) (float64, error) {
	if !validWavelength(wavelength) {
		return 0, fmt.Errorf("%w: %v m", core.ErrOutOfRangeWavelength, wavelength)
	}

	n := f.weight*GlassIndex(wavelength) + (1-f.weight)*AirIndex(wavelength)
	if !isFinite(n) {
		return 0, fmt.Errorf("%w: index not finite at %v m", core.ErrOutOfRangeWavelength, wavelength)
	}
	return n, nil
}

// IndexAtRed returns the index of refraction at WavelengthRed
func (f *Function) IndexAtRed() (float64, error) {
	return f.IndexAt(WavelengthRed)
}

// GlassIndex evaluates the Sellmeier equation for borosilicate crown glass.
// See http://en.wikipedia.org/wiki/Sellmeier_equation
func GlassIndex(wavelength float64) float64 {
	l2 := wavelength * wavelength
	return math.Sqrt(1 +
		sellmeierB1*l2/(l2-sellmeierC1) +
		sellmeierB2*l2/(l2-sellmeierC2) +
		sellmeierB3*l2/(l2-sellmeierC3))
}

// AirIndex evaluates the empirical index of refraction of air.
// See http://refractiveindex.info/?group=GASES&material=Air
func AirIndex(wavelength float64) float64 {
	invMicrons2 := math.Pow(wavelength*1e6, -2)
	return 1 + 5792105e-8/(238.0185-invMicrons2) + 167917e-8/(57.362-invMicrons2)
}

func validWavelength(wavelength float64) bool {
	return wavelength > 0 && isFinite(wavelength)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
