package capture

import "smart-screenshot-organizer/internal/model"

// ProcessInput is the input for processing one recognized screenshot.
type ProcessInput struct {
	Recognition model.RecognizedText
	EnableAI    bool  // attempt AI analysis before falling back to rules
	NotifyChat  int64 // Telegram chat for the capture summary (0 disables)
}

// ProcessOutput is the result of processing a capture.
type ProcessOutput struct {
	Capture model.Capture
}

// CategorizeInput is the input for a rule-based dry run (no persistence).
type CategorizeInput struct {
	Text       string
	Confidence float64
}

// CategorizeOutput is the result of a rule-based dry run.
type CategorizeOutput struct {
	Result model.CategorizedResult
}

// ListInput is the input for listing stored captures.
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput is a page of stored captures.
type ListOutput struct {
	Captures []model.Capture
	Total    int
	Limit    int
	Offset   int
}

// DetailOutput is a single stored capture.
type DetailOutput struct {
	Capture model.Capture
}
