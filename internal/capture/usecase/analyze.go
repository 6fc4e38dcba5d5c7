package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/gemini"
)

const (
	defaultEventDuration = time.Hour
	allDayStartHour      = 9
	allDayEndHour        = 17
)

// analyzeWithLLM sends the OCR text to Gemini and parses the structured
// analysis out of the reply. Any error here is non-fatal for Process.
func (uc *implUseCase) analyzeWithLLM(ctx context.Context, ocrText string) (*gemini.Analysis, error) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}
	currentTime := uc.now().In(loc).Format("Monday, January 2, 2006 3:04 PM MST")

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: gemini.BuildCaptureAnalysisPrompt(ocrText, currentTime)}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 4096,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to call LLM: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("LLM returned an empty response")
	}

	analysis, err := gemini.ParseAnalysis(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM analysis: %w", err)
	}
	return analysis, nil
}

// resultFromAnalysis converts a parsed model analysis into the same
// CategorizedResult shape the rule-based engine produces. Items the model
// reports with unparseable timestamps keep sensible defaults instead of
// being dropped.
func (uc *implUseCase) resultFromAnalysis(analysis *gemini.Analysis) model.CategorizedResult {
	result := model.NewCategorizedResult()
	confidence := analysis.Confidence * 100
	now := uc.now()

	for _, t := range analysis.ExtractedItems.Todos {
		todo := model.ExtractedTodo{
			Title:       t.Title,
			Description: t.Description,
			Priority:    model.Priority(t.Priority),
			Status:      model.StatusPending,
			Tags:        t.Tags,
			Confidence:  confidence,
			SourceText:  t.Title,
		}
		if due, err := time.Parse(time.RFC3339, t.DueDate); err == nil {
			todo.DueDate = &due
		}
		result.Todos = append(result.Todos, todo)
	}

	for _, e := range analysis.ExtractedItems.Events {
		eventType := model.EventType(e.EventType)
		if _, ok := model.EventColors[eventType]; !ok {
			eventType = model.EventMeeting
		}

		event := model.ExtractedEvent{
			Title:       e.Title,
			Description: e.Description,
			Location:    e.Location,
			EventType:   eventType,
			Color:       model.EventColors[eventType],
			Confidence:  confidence,
			SourceText:  e.Title,
		}

		start, startErr := time.Parse(time.RFC3339, e.StartTime)
		if startErr != nil {
			// No usable start: an all-day event on the current day.
			day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			event.StartTime = day.Add(allDayStartHour * time.Hour)
			event.EndTime = day.Add(allDayEndHour * time.Hour)
			event.IsAllDay = true
		} else {
			event.StartTime = start
			if end, err := time.Parse(time.RFC3339, e.EndTime); err == nil && end.After(start) {
				event.EndTime = end
			} else {
				event.EndTime = start.Add(defaultEventDuration)
			}
		}
		result.Events = append(result.Events, event)
	}

	for _, r := range analysis.ExtractedItems.Reminders {
		reminder := model.ExtractedReminder{
			Title:      r.Title,
			Message:    r.Message,
			Priority:   model.PriorityMedium,
			Confidence: confidence,
			SourceText: r.Title,
		}
		if at, err := time.Parse(time.RFC3339, r.RemindAt); err == nil {
			reminder.RemindAt = at
		} else {
			reminder.RemindAt = now
		}
		switch strings.ToLower(r.Frequency) {
		case "daily":
			reminder.IsRecurring = true
			reminder.RecurrencePattern = model.RecurrenceDaily
		case "weekly":
			reminder.IsRecurring = true
			reminder.RecurrencePattern = model.RecurrenceWeekly
		case "monthly":
			reminder.IsRecurring = true
			reminder.RecurrencePattern = model.RecurrenceMonthly
		}
		result.Reminders = append(result.Reminders, reminder)
	}

	return result
}
