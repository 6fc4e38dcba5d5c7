package categorize

import (
	"time"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/datemath"
)

// Engine is the rule-based categorization pipeline: segment, classify,
// extract, score, bucket. It holds only static configuration and an injected
// clock, so one instance is safe for concurrent use.
type Engine struct {
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a categorization engine on the given date parser.
func New(dates *datemath.Parser) *Engine {
	return &Engine{
		dates: dates,
		now:   time.Now,
	}
}

// Categorize runs the full pipeline over raw OCR text. Every segmented line
// lands in exactly one bucket; lines matching no category go verbatim to
// Uncategorized. Same input always yields the same output.
func (e *Engine) Categorize(text string, baseConfidence float64) model.CategorizedResult {
	result := model.NewCategorizedResult()
	now := e.now()

	for _, line := range SegmentLines(text) {
		category := Classify(line)
		confidence := Score(line, category, baseConfidence)

		switch category {
		case model.CategoryTodo:
			result.Todos = append(result.Todos, e.extractTodo(line, confidence, now))
		case model.CategoryEvent:
			result.Events = append(result.Events, e.extractEvent(line, confidence, now))
		case model.CategoryReminder:
			result.Reminders = append(result.Reminders, e.extractReminder(line, confidence, now))
		case model.CategoryAchievement:
			result.Achievements = append(result.Achievements, e.extractAchievement(line, confidence))
		default:
			result.Uncategorized = append(result.Uncategorized, line)
		}
	}

	return result
}

func (e *Engine) extractTodo(line string, confidence float64, now time.Time) model.ExtractedTodo {
	todo := model.ExtractedTodo{
		Title:      cleanTitle(line),
		Priority:   extractPriority(line),
		Status:     model.StatusPending,
		Tags:       extractTags(line),
		Confidence: confidence,
		SourceText: line,
	}

	if due, ok := e.dates.ExtractDate(line, now); ok {
		todo.DueDate = &due
	}

	return todo
}

func (e *Engine) extractEvent(line string, confidence float64, now time.Time) model.ExtractedEvent {
	eventType := extractEventType(line)

	event := model.ExtractedEvent{
		Title:      cleanTitle(line),
		Location:   extractLocation(line),
		EventType:  eventType,
		Color:      model.EventColors[eventType],
		Confidence: confidence,
		SourceText: line,
	}

	day, hasDate := e.dates.ExtractDate(line, now)
	if !hasDate {
		day = now
	}

	if clock, ok := datemath.ExtractClockTime(line); ok {
		// Timed event: default 1-hour duration.
		event.StartTime = e.dates.At(day, clock.Hour, clock.Minute)
		event.EndTime = event.StartTime.Add(time.Hour)
	} else {
		// All-day event: 09:00-17:00 window on the resolved date.
		event.IsAllDay = true
		event.StartTime = e.dates.At(day, 9, 0)
		event.EndTime = e.dates.At(day, 17, 0)
	}

	return event
}

func (e *Engine) extractReminder(line string, confidence float64, now time.Time) model.ExtractedReminder {
	isRecurring, pattern := extractRecurrence(line)

	reminder := model.ExtractedReminder{
		Title:             cleanTitle(line),
		IsRecurring:       isRecurring,
		RecurrencePattern: pattern,
		Priority:          reminderPriority(line),
		Confidence:        confidence,
		SourceText:        line,
	}

	day, hasDate := e.dates.ExtractDate(line, now)
	if !hasDate {
		day = now
	}
	if clock, ok := datemath.ExtractClockTime(line); ok {
		reminder.RemindAt = e.dates.At(day, clock.Hour, clock.Minute)
	} else {
		reminder.RemindAt = e.dates.At(day, 9, 0)
	}

	return reminder
}

// reminderPriority narrows the todo priority scale to the reminder one:
// reminders have no urgent tier, so urgent collapses to high.
func reminderPriority(line string) model.Priority {
	p := extractPriority(line)
	if p == model.PriorityUrgent {
		return model.PriorityHigh
	}
	return p
}

func (e *Engine) extractAchievement(line string, confidence float64) model.ExtractedAchievement {
	category := extractAchievementCategory(line)

	return model.ExtractedAchievement{
		Title:      cleanTitle(line),
		Icon:       achievementIcons[category],
		Category:   category,
		Points:     extractPoints(line),
		Confidence: confidence,
		SourceText: line,
	}
}
