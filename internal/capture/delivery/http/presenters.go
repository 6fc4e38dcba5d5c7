package http

import (
	"smart-screenshot-organizer/internal/capture"
	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/response"
)

// --- Response DTOs ---

type resultResp struct {
	Todos         []model.ExtractedTodo        `json:"todos"`
	Events        []model.ExtractedEvent       `json:"events"`
	Reminders     []model.ExtractedReminder    `json:"reminders"`
	Achievements  []model.ExtractedAchievement `json:"achievements"`
	Uncategorized []string                     `json:"uncategorized"`
	ItemCount     int                          `json:"item_count"`
}

func newResultResp(r model.CategorizedResult) resultResp {
	return resultResp{
		Todos:         r.Todos,
		Events:        r.Events,
		Reminders:     r.Reminders,
		Achievements:  r.Achievements,
		Uncategorized: r.Uncategorized,
		ItemCount:     r.ItemCount(),
	}
}

type captureResp struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Text       string            `json:"text"`
	Confidence float64           `json:"confidence"`
	Result     resultResp        `json:"result"`
	Source     string            `json:"source"`
	Summary    string            `json:"summary,omitempty"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newCaptureResp(cap model.Capture) captureResp {
	return captureResp{
		ID:         cap.ID,
		UserID:     cap.UserID,
		Text:       cap.Recognition.Text,
		Confidence: cap.Recognition.Confidence,
		Result:     newResultResp(cap.Result),
		Source:     string(cap.Source),
		Summary:    cap.Summary,
		CreatedAt:  response.DateTime(cap.CreatedAt),
	}
}

type processResp struct {
	Capture captureResp `json:"capture"`
}

func (h *handler) newProcessResp(out capture.ProcessOutput) processResp {
	return processResp{Capture: newCaptureResp(out.Capture)}
}

type categorizeResp struct {
	Result resultResp `json:"result"`
}

func (h *handler) newCategorizeResp(out capture.CategorizeOutput) categorizeResp {
	return categorizeResp{Result: newResultResp(out.Result)}
}

type listResp struct {
	Captures []captureResp `json:"captures"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out capture.ListOutput) listResp {
	captures := make([]captureResp, len(out.Captures))
	for i, cap := range out.Captures {
		captures[i] = newCaptureResp(cap)
	}
	return listResp{
		Captures: captures,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Capture captureResp `json:"capture"`
}

func (h *handler) newDetailResp(out capture.DetailOutput) detailResp {
	return detailResp{Capture: newCaptureResp(out.Capture)}
}
