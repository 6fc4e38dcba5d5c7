package http

import (
	"github.com/gin-gonic/gin"

	"smart-screenshot-organizer/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The process
// endpoint is rate limited since it can fan out to the LLM and calendar.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Process)
	rg.POST("/categorize", mw.RateLimit(), h.Categorize)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
	rg.DELETE("/:id", h.Delete)
}
