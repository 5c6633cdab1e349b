package core

import "errors"

var (
	// ErrDegenerateGeometry is returned when a segment has zero length and
	// therefore no direction
	ErrDegenerateGeometry = errors.New("degenerate geometry: zero-length segment")

	// ErrDegenerateDispersion is returned when the air and glass reference
	// curves coincide at the reference wavelength
	ErrDegenerateDispersion = errors.New("degenerate dispersion configuration")

	// ErrOutOfRangeWavelength is returned for non-positive wavelengths or
	// wavelengths at which a dispersion curve is not finite
	ErrOutOfRangeWavelength = errors.New("wavelength out of range")

	// ErrInvalidSegment is returned when light ray construction values are
	// outside their physical range
	ErrInvalidSegment = errors.New("invalid light ray segment")
)
