package dispersion

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/sancharinfotech/bending-light/pkg/core"
)

func TestFunction_CalibratedAtReferenceWavelength(t *testing.T) {
	// Indices start above the air curve; below it the weight clamps to air
	indices := []float64{1.001, 1.1, 1.333, 1.5, 1.8, 2.0, 2.419, 2.5}
	wavelengths := []float64{210e-9, 400e-9, 550e-9, 650e-9, 1000e-9, 1999e-9}

	for _, n := range indices {
		for _, wl := range wavelengths {
			fn, err := New(n, wl)
			if err != nil {
				t.Fatalf("New(%v, %v) failed: %v", n, wl, err)
			}

			got, err := fn.IndexAt(wl)
			if err != nil {
				t.Fatalf("IndexAt(%v) failed: %v", wl, err)
			}
			if !scalar.EqualWithinRel(got, n, 1e-9) {
				t.Errorf("n=%v λ=%v: IndexAt(reference) = %.12f, expected %.12f", n, wl, got, n)
			}
		}
	}
}

func TestFunction_WeightMonotonic(t *testing.T) {
	prev := -1.0
	for n := 1.0; n <= 3.0; n += 0.01 {
		fn, err := NewAtRed(n)
		if err != nil {
			t.Fatalf("NewAtRed(%v) failed: %v", n, err)
		}

		w := fn.Weight()
		if w < 0 {
			t.Fatalf("Weight for n=%v is negative: %v", n, w)
		}
		if w < prev {
			t.Fatalf("Weight decreased at n=%v: %v < %v", n, w, prev)
		}
		prev = w
	}

	// Denser than the glass curve extrapolates past 1
	if prev <= 1 {
		t.Errorf("Expected weight > 1 for n=3.0, got %v", prev)
	}
}

func TestFunction_AirSample(t *testing.T) {
	fn, err := New(1.000293, 650e-9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	n, err := fn.IndexAt(650e-9)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}

	if !scalar.EqualWithinRel(n, 1.000293, 1e-9) {
		t.Errorf("Expected 1.000293, got %.9f", n)
	}
	if math.Abs(n-AirIndex(650e-9)) > 1e-4 {
		t.Errorf("Air should lie on the air curve: got %.9f, air curve %.9f", n, AirIndex(650e-9))
	}
	if fn.Weight() > 1e-3 {
		t.Errorf("Expected near-zero weight for air, got %v", fn.Weight())
	}
}

func TestFunction_GlassSample(t *testing.T) {
	fn, err := New(1.5, 650e-9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if fn.Weight() <= 0 || fn.Weight() >= 1 {
		t.Errorf("Expected weight strictly between 0 and 1, got %v", fn.Weight())
	}

	n, err := fn.IndexAt(650e-9)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}
	if math.Abs(n-GlassIndex(650e-9)) > 0.02 {
		t.Errorf("Expected index close to glass curve %.6f, got %.6f", GlassIndex(650e-9), n)
	}

	// Normal dispersion: blue bends more than red
	blue, _ := fn.IndexAt(400e-9)
	red, _ := fn.IndexAt(700e-9)
	if blue <= red {
		t.Errorf("Expected n(400nm)=%.6f > n(700nm)=%.6f", blue, red)
	}
}

func TestFunction_ReferenceCurvesAreEndpoints(t *testing.T) {
	wl := 650e-9

	air, err := New(AirIndex(wl), wl)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	glass, err := New(GlassIndex(wl), wl)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if math.Abs(air.Weight()) > 1e-12 {
		t.Errorf("Expected weight 0 on the air curve, got %v", air.Weight())
	}
	if math.Abs(glass.Weight()-1) > 1e-12 {
		t.Errorf("Expected weight 1 on the glass curve, got %v", glass.Weight())
	}

	for _, probe := range []float64{380e-9, 500e-9, 780e-9} {
		n, _ := glass.IndexAt(probe)
		if !scalar.EqualWithinAbsOrRel(n, GlassIndex(probe), 1e-12, 1e-12) {
			t.Errorf("Glass material at %v: got %.12f, expected %.12f", probe, n, GlassIndex(probe))
		}
		n, _ = air.IndexAt(probe)
		if !scalar.EqualWithinAbsOrRel(n, AirIndex(probe), 1e-12, 1e-12) {
			t.Errorf("Air material at %v: got %.12f, expected %.12f", probe, n, AirIndex(probe))
		}
	}
}

func TestFunction_BelowAirClampsToAirCurve(t *testing.T) {
	fn, err := NewAtRed(1.0)
	if err != nil {
		t.Fatalf("NewAtRed failed: %v", err)
	}
	if fn.Weight() != 0 {
		t.Errorf("Expected weight clamped to 0, got %v", fn.Weight())
	}

	n, _ := fn.IndexAtRed()
	if n != AirIndex(WavelengthRed) {
		t.Errorf("Expected air curve value %.12f, got %.12f", AirIndex(WavelengthRed), n)
	}
}

func TestFunction_IndexAtRed(t *testing.T) {
	fn, err := NewAtRed(1.333)
	if err != nil {
		t.Fatalf("NewAtRed failed: %v", err)
	}

	red, err := fn.IndexAtRed()
	if err != nil {
		t.Fatalf("IndexAtRed failed: %v", err)
	}
	at650, _ := fn.IndexAt(650e-9)
	if red != at650 {
		t.Errorf("IndexAtRed() = %v, IndexAt(650nm) = %v", red, at650)
	}
	if fn.ReferenceWavelength() != WavelengthRed || fn.ReferenceIndex() != 1.333 {
		t.Errorf("Unexpected reference point (%v, %v)", fn.ReferenceIndex(), fn.ReferenceWavelength())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name       string
		index      float64
		wavelength float64
		expected   error
	}{
		{"Zero wavelength", 1.5, 0, core.ErrOutOfRangeWavelength},
		{"Negative wavelength", 1.5, -650e-9, core.ErrOutOfRangeWavelength},
		{"NaN wavelength", 1.5, math.NaN(), core.ErrOutOfRangeWavelength},
		{"Infinite wavelength", 1.5, math.Inf(1), core.ErrOutOfRangeWavelength},
		{"Glass curve undefined", 1.5, 140e-9, core.ErrOutOfRangeWavelength},
		{"Infinite index", math.Inf(1), 650e-9, core.ErrDegenerateDispersion},
		{"NaN index", math.NaN(), 650e-9, core.ErrDegenerateDispersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := New(tt.index, tt.wavelength)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if fn != nil {
				t.Errorf("Expected nil function on error, got %+v", fn)
			}
		})
	}
}

func TestIndexAt_OutOfRange(t *testing.T) {
	fn, err := NewAtRed(1.5)
	if err != nil {
		t.Fatalf("NewAtRed failed: %v", err)
	}

	for _, wl := range []float64{0, -1e-7, math.NaN(), math.Inf(1), 140e-9} {
		if _, err := fn.IndexAt(wl); !errors.Is(err, core.ErrOutOfRangeWavelength) {
			t.Errorf("IndexAt(%v): expected ErrOutOfRangeWavelength, got %v", wl, err)
		}
	}
}
