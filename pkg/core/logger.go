package core

import "fmt"

// DefaultLogger writes log output to stdout
type DefaultLogger struct{}

// Printf implements Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// NopLogger discards all output
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
