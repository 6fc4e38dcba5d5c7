package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-screenshot-organizer/pkg/response"
)

// Process godoc
// @Summary     Process a recognized screenshot
// @Description Categorizes OCR text into todos, events, reminders, and achievements, stores the capture, and optionally exports events and sends a chat summary.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     false "Owner of the capture (default: default)"
// @Param       body      body   processReq true "Recognized screenshot text"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/captures [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Categorize godoc
// @Summary     Categorize text without storing
// @Description Runs the rule-based categorization pipeline over the given text and returns the result. Nothing is persisted.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       body body categorizeReq true "Text to categorize"
// @Success     200 {object} categorizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/captures/categorize [POST]
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategorizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Categorize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Categorize: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCategorizeResp(output))
}

// List godoc
// @Summary     List stored captures
// @Description Returns a paginated list of the user's captures, newest first.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Owner of the captures (default: default)"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/captures [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get capture detail
// @Description Returns a single stored capture by its ID.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       id path string true "Capture ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/captures/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, scopeFrom(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a capture
// @Description Permanently removes a stored capture by ID.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       id path string true "Capture ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/captures/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, scopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
