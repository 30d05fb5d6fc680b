package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: document may be corrupted")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrMalformed          = errors.New("malformed document")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "ragged_matrix", "shape_chain")
	Layer   int    // Layer index involved, or -1
	Details string // Additional details
	Err     error  // Sentinel the failure matches with errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Layer >= 0 {
		return fmt.Sprintf("%s: layer %d: %s", e.Type, e.Layer, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the sentinel behind the failure.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(typ string, layer int, sentinel error, format string, args ...any) *ValidationError {
	return &ValidationError{Type: typ, Layer: layer, Details: fmt.Sprintf(format, args...), Err: sentinel}
}
