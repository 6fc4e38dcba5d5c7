package capture

import "errors"

// Domain-specific errors for the capture package.
var (
	ErrCaptureNotFound   = errors.New("capture not found")
	ErrInvalidConfidence = errors.New("recognition confidence must be between 0 and 100")
)
