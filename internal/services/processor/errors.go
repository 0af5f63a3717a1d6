package processor

import "errors"

// Validation errors. Their messages are returned to the user verbatim.
var (
	ErrMissingImage       = errors.New("please upload an image")
	ErrInvalidScaleFactor = errors.New("please enter a valid scale factor")
	ErrInvalidDimensions  = errors.New("please enter valid width and height")
	ErrInvalidMode        = errors.New("please select a valid resize mode")
)

// ProcessingError wraps any failure during decoding, resampling or
// encoding. Nothing from the transform escapes Resize unwrapped.
type ProcessingError struct {
	Cause error
}

func (e *ProcessingError) Error() string {
	return "Error processing image: " + e.Cause.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
