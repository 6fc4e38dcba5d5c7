package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	captureHTTP "smart-screenshot-organizer/internal/capture/delivery/http"
	"smart-screenshot-organizer/internal/middleware"
)

// setupCaptureDomain registers the capture domain routes. The use case
// arrives pre-wired through Config since its collaborators (LLM, calendar,
// notifier) are optional and built in main.
func (srv *HTTPServer) setupCaptureDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := captureHTTP.New(srv.l, srv.captureUC)
	captureHTTP.RegisterRoutes(api.Group("/captures"), h, mw)

	srv.l.Infof(ctx, "Capture domain registered")
}
