package lightray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WaveSample is the transverse disturbance at one point along a segment
type WaveSample struct {
	Distance  float64 // Meters from the tail
	Amplitude float64 // cos(PhaseArgument), in [-1, 1]
}

// PhaseArgument returns the argument to the cosine describing the wave at
// distanceAlongRay meters from the tail at time t:
//
//	k·x − ω·t − 2π·NumWavelengthsPhaseOffset
func (lr *LightRay) PhaseArgument(distanceAlongRay, t float64) float64 {
	k := 2 * math.Pi / lr.wavelength
	w := lr.AngularFrequency()
	return k*distanceAlongRay - w*t - 2*math.Pi*lr.numWavelengthsPhaseOffset
}

// NextPhaseOffset returns the phase offset the solver should give the segment
// that continues from this segment's tip
func (lr *LightRay) NextPhaseOffset() float64 {
	return lr.numWavelengthsPhaseOffset + lr.NumberOfWavelengths()
}

// WaveSamples evaluates the wave at n evenly spaced points from tail to tip
func (lr *LightRay) WaveSamples(n int, t float64) ([]WaveSample, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got: %d", n)
	}

	distances := floats.Span(make([]float64, n), 0, lr.Length())
	samples := make([]WaveSample, n)
	for i, d := range distances {
		samples[i] = WaveSample{
			Distance:  d,
			Amplitude: math.Cos(lr.PhaseArgument(d, t)),
		}
	}
	return samples, nil
}
