package core

import "gonum.org/v1/gonum/spatial/r2"

// Logger interface for optics kernel logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape is a closed 2D region, e.g. the outline of a medium
type Shape interface {
	Contains(p r2.Vec) bool
	Bounds() r2.Box
}
