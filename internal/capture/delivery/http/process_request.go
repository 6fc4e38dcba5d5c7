package http

import (
	"github.com/gin-gonic/gin"

	"smart-screenshot-organizer/internal/capture"
	"smart-screenshot-organizer/internal/model"
)

// --- Request DTOs ---

type recognizedBlockReq struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X0         float64 `json:"x0"`
	Y0         float64 `json:"y0"`
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
}

type processReq struct {
	Text       string               `json:"text"       binding:"required"`
	Confidence float64              `json:"confidence"`
	Blocks     []recognizedBlockReq `json:"blocks"`
	EnableAI   bool                 `json:"enable_ai"`
	NotifyChat int64                `json:"notify_chat"`
}

func (r processReq) toInput() capture.ProcessInput {
	blocks := make([]model.RecognizedBlock, len(r.Blocks))
	for i, b := range r.Blocks {
		blocks[i] = model.RecognizedBlock{
			Text:        b.Text,
			Confidence:  b.Confidence,
			BoundingBox: model.Box{X0: b.X0, Y0: b.Y0, X1: b.X1, Y1: b.Y1},
		}
	}
	return capture.ProcessInput{
		Recognition: model.RecognizedText{
			Text:       r.Text,
			Confidence: r.Confidence,
			Blocks:     blocks,
		},
		EnableAI:   r.EnableAI,
		NotifyChat: r.NotifyChat,
	}
}

// ---

type categorizeReq struct {
	Text       string  `json:"text"       binding:"required"`
	Confidence float64 `json:"confidence"`
}

func (r categorizeReq) toInput() capture.CategorizeInput {
	return capture.CategorizeInput{
		Text:       r.Text,
		Confidence: r.Confidence,
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() capture.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return capture.ListInput{
		Limit:  limit,
		Offset: r.Offset,
	}
}

// processProcessReq binds and validates the process request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCategorizeReq binds and validates the categorize request body.
func (h *handler) processCategorizeReq(c *gin.Context) (categorizeReq, error) {
	var req categorizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

const defaultUserID = "default"

// scopeFrom builds the request scope from the X-User-ID header. The service
// runs single tenant by default.
func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = defaultUserID
	}
	return model.Scope{UserID: userID}
}
