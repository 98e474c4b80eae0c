package entroscope

import "fmt"

// InvalidConfigError reports a construction-time configuration that can never
// produce a valid computation, such as a non-positive window size. It is not
// recoverable: the caller must reconstruct with a valid configuration.
type InvalidConfigError struct {
	Field string // Which configuration field is invalid
	Value int    // The rejected value
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("entroscope: invalid configuration: %s must be positive, got %d", e.Field, e.Value)
}

// InsufficientDataError reports an input shorter than the configured window.
// Both lengths are carried for diagnostics. Retrying cannot help: the caller
// must supply more data or shrink the window.
type InsufficientDataError struct {
	DataLen    int
	WindowSize int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("entroscope: data length (%d) must be >= window size (%d)", e.DataLen, e.WindowSize)
}
