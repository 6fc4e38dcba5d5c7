package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-screenshot-organizer/internal/capture"
	"smart-screenshot-organizer/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors are
// reported as opaque 500s so internals never leak to clients.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, capture.ErrCaptureNotFound):
		response.NotFound(c, err)
	case errors.Is(err, capture.ErrInvalidConfidence):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
