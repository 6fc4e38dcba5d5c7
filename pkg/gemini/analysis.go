package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Analysis is the structured screenshot-analysis payload returned by the
// model. Its item shapes are close to the rule-based extractor's but carry
// extras the rules do not produce (duration, attendees, frequency).
type Analysis struct {
	Summary          string         `json:"summary"`
	KeyPoints        []string       `json:"keyPoints"`
	SuggestedActions []string       `json:"suggestedActions"`
	Priority         string         `json:"priority"`
	Category         string         `json:"category"`
	Confidence       float64        `json:"confidence"` // 0-1
	ExtractedItems   ExtractedItems `json:"extractedItems"`
}

// ExtractedItems holds the model's structured extraction result.
type ExtractedItems struct {
	Todos     []AnalysisTodo     `json:"todos"`
	Events    []AnalysisEvent    `json:"events"`
	Reminders []AnalysisReminder `json:"reminders"`
}

// AnalysisTodo is a todo item as the model reports it.
type AnalysisTodo struct {
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	Priority                 string   `json:"priority"`
	DueDate                  string   `json:"dueDate"` // RFC3339, may be empty
	Tags                     []string `json:"tags"`
	EstimatedDurationMinutes int      `json:"estimatedDurationMinutes"`
}

// AnalysisEvent is an event item as the model reports it.
type AnalysisEvent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartTime   string   `json:"startTime"` // RFC3339
	EndTime     string   `json:"endTime"`   // RFC3339
	Location    string   `json:"location"`
	EventType   string   `json:"eventType"`
	Attendees   []string `json:"attendees"`
}

// AnalysisReminder is a reminder item as the model reports it.
type AnalysisReminder struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	RemindAt  string `json:"remindAt"` // RFC3339
	Frequency string `json:"frequency"`
}

var validPriorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"urgent": true,
}

var validCategories = map[string]bool{
	"todo":        true,
	"event":       true,
	"reminder":    true,
	"achievement": true,
	"note":        true,
	"other":       true,
}

// ParseAnalysis decodes and normalizes a raw model response into an Analysis.
// Markdown code fences and surrounding prose are stripped first. Unknown
// enum values fall back to defaults, missing arrays become empty, and
// confidence is clamped to [0,1] — the caller never sees a half-valid shape.
func ParseAnalysis(raw string) (*Analysis, error) {
	cleaned := sanitizeJSONResponse(raw)

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	analysis.normalize()
	return &analysis, nil
}

func (a *Analysis) normalize() {
	if !validPriorities[a.Priority] {
		a.Priority = "medium"
	}
	if !validCategories[a.Category] {
		a.Category = "other"
	}
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 1 {
		a.Confidence = 1
	}

	if a.KeyPoints == nil {
		a.KeyPoints = []string{}
	}
	if a.SuggestedActions == nil {
		a.SuggestedActions = []string{}
	}
	if a.ExtractedItems.Todos == nil {
		a.ExtractedItems.Todos = []AnalysisTodo{}
	}
	if a.ExtractedItems.Events == nil {
		a.ExtractedItems.Events = []AnalysisEvent{}
	}
	if a.ExtractedItems.Reminders == nil {
		a.ExtractedItems.Reminders = []AnalysisReminder{}
	}

	for i := range a.ExtractedItems.Todos {
		if !validPriorities[a.ExtractedItems.Todos[i].Priority] {
			a.ExtractedItems.Todos[i].Priority = "medium"
		}
		if a.ExtractedItems.Todos[i].Tags == nil {
			a.ExtractedItems.Todos[i].Tags = []string{}
		}
	}
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
