package gemini_test

import (
	"testing"

	"smart-screenshot-organizer/pkg/gemini"
)

const validAnalysisJSON = `{
	"summary": "A task list screenshot",
	"keyPoints": ["two tasks visible"],
	"suggestedActions": ["Finish the proposal"],
	"priority": "high",
	"category": "todo",
	"confidence": 0.92,
	"extractedItems": {
		"todos": [
			{"title": "Finish proposal", "priority": "high", "dueDate": "2024-05-03T17:00:00Z", "tags": ["work"], "estimatedDurationMinutes": 90}
		],
		"events": [],
		"reminders": []
	}
}`

func TestParseAnalysis(t *testing.T) {
	analysis, err := gemini.ParseAnalysis(validAnalysisJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Summary != "A task list screenshot" {
		t.Errorf("Summary = %q", analysis.Summary)
	}
	if analysis.Priority != "high" || analysis.Category != "todo" {
		t.Errorf("priority/category = %q/%q", analysis.Priority, analysis.Category)
	}
	if len(analysis.ExtractedItems.Todos) != 1 {
		t.Fatalf("got %d todos, want 1", len(analysis.ExtractedItems.Todos))
	}
}

func TestParseAnalysisStripsCodeFences(t *testing.T) {
	fenced := "Here is the result:\n```json\n" + validAnalysisJSON + "\n```\nLet me know!"
	analysis, err := gemini.ParseAnalysis(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Confidence != 0.92 {
		t.Errorf("Confidence = %v, want 0.92", analysis.Confidence)
	}
}

func TestParseAnalysisNormalizesUnknownValues(t *testing.T) {
	raw := `{
		"summary": "s",
		"priority": "extreme",
		"category": "spaceship",
		"confidence": 1.7,
		"extractedItems": {"todos": [{"title": "t", "priority": "p99"}]}
	}`

	analysis, err := gemini.ParseAnalysis(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Priority != "medium" {
		t.Errorf("unknown priority normalized to %q, want medium", analysis.Priority)
	}
	if analysis.Category != "other" {
		t.Errorf("unknown category normalized to %q, want other", analysis.Category)
	}
	if analysis.Confidence != 1 {
		t.Errorf("confidence clamped to %v, want 1", analysis.Confidence)
	}
	if analysis.KeyPoints == nil || analysis.SuggestedActions == nil {
		t.Error("missing arrays should default to empty, got nil")
	}
	if analysis.ExtractedItems.Events == nil || analysis.ExtractedItems.Reminders == nil {
		t.Error("missing item arrays should default to empty, got nil")
	}
	if analysis.ExtractedItems.Todos[0].Priority != "medium" {
		t.Errorf("todo priority normalized to %q, want medium", analysis.ExtractedItems.Todos[0].Priority)
	}
	if analysis.ExtractedItems.Todos[0].Tags == nil {
		t.Error("todo tags should default to empty, got nil")
	}
}

func TestParseAnalysisMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json at all", "{\"summary\": "} {
		if _, err := gemini.ParseAnalysis(raw); err == nil {
			t.Errorf("ParseAnalysis(%q) = nil error, want parse failure", raw)
		}
	}
}
