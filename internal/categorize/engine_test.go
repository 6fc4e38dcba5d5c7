package categorize

import (
	"reflect"
	"testing"
	"time"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/datemath"
)

// fixedEngine returns an engine pinned to Wednesday, May 1 2024, 10:00 UTC.
func fixedEngine(t *testing.T) (*Engine, time.Time) {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e := New(parser)
	e.now = func() time.Time { return now }
	return e, now
}

func TestCategorizeEmptyInput(t *testing.T) {
	e, _ := fixedEngine(t)

	for _, text := range []string{"", "   ", "\n\n\t"} {
		result := e.Categorize(text, 80)
		if result.ItemCount() != 0 || len(result.Uncategorized) != 0 {
			t.Errorf("Categorize(%q) produced items, want all-empty buckets", text)
		}
		if result.Todos == nil || result.Events == nil || result.Reminders == nil ||
			result.Achievements == nil || result.Uncategorized == nil {
			t.Errorf("Categorize(%q) has nil buckets, want allocated empty slices", text)
		}
	}
}

func TestCategorizeTimedEvent(t *testing.T) {
	e, _ := fixedEngine(t)

	result := e.Categorize("Meeting with team tomorrow at 2 PM", 85.5)
	if len(result.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(result.Events))
	}

	event := result.Events[0]
	wantStart := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
	if !event.StartTime.Equal(wantStart) {
		t.Errorf("StartTime = %v, want %v", event.StartTime, wantStart)
	}
	if !event.EndTime.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("EndTime = %v, want start + 1h", event.EndTime)
	}
	if event.IsAllDay {
		t.Error("IsAllDay = true, want false for timed event")
	}
	if event.EventType != model.EventMeeting {
		t.Errorf("EventType = %q, want meeting", event.EventType)
	}
	if event.SourceText != "Meeting with team tomorrow at 2 PM" {
		t.Errorf("SourceText = %q, want the exact input line", event.SourceText)
	}
}

func TestCategorizeAllDayEvent(t *testing.T) {
	e, _ := fixedEngine(t)

	result := e.Categorize("Conference tomorrow", 70)
	if len(result.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(result.Events))
	}

	event := result.Events[0]
	if !event.IsAllDay {
		t.Fatal("IsAllDay = false, want true when no clock time is present")
	}
	wantStart := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	if !event.StartTime.Equal(wantStart) || !event.EndTime.Equal(wantEnd) {
		t.Errorf("window = %v..%v, want %v..%v", event.StartTime, event.EndTime, wantStart, wantEnd)
	}
}

func TestCategorizeTodo(t *testing.T) {
	e, _ := fixedEngine(t)

	result := e.Categorize("Complete project proposal by Friday", 85)
	if len(result.Todos) != 1 {
		t.Fatalf("got %d todos, want 1", len(result.Todos))
	}

	todo := result.Todos[0]
	if todo.Title != "Project proposal by Friday" {
		t.Errorf("Title = %q, want imperative verb stripped", todo.Title)
	}
	if todo.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", todo.Priority)
	}
	if todo.Status != model.StatusPending {
		t.Errorf("Status = %q, want pending", todo.Status)
	}
	if todo.DueDate == nil {
		t.Fatal("DueDate = nil, want next Friday resolved")
	}
	wantDue := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	if !todo.DueDate.Equal(wantDue) {
		t.Errorf("DueDate = %v, want %v", todo.DueDate, wantDue)
	}
}

func TestCategorizeReminder(t *testing.T) {
	e, _ := fixedEngine(t)

	result := e.Categorize("Remind me to take vitamins daily at 8am", 90)
	if len(result.Reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(result.Reminders))
	}

	reminder := result.Reminders[0]
	if !reminder.IsRecurring {
		t.Error("IsRecurring = false, want true")
	}
	if reminder.RecurrencePattern != model.RecurrenceDaily {
		t.Errorf("RecurrencePattern = %q, want daily", reminder.RecurrencePattern)
	}
	wantAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if !reminder.RemindAt.Equal(wantAt) {
		t.Errorf("RemindAt = %v, want %v", reminder.RemindAt, wantAt)
	}
}

func TestCategorizeAchievement(t *testing.T) {
	e, _ := fixedEngine(t)

	result := e.Categorize("Achievement unlocked: 10 tasks completed!", 80)
	if len(result.Achievements) != 1 {
		t.Fatalf("got %d achievements, want 1", len(result.Achievements))
	}

	ach := result.Achievements[0]
	if ach.Category != model.AchievementProductivity {
		t.Errorf("Category = %q, want productivity", ach.Category)
	}
	if ach.Points != pointsDefault {
		t.Errorf("Points = %d, want default tier %d", ach.Points, pointsDefault)
	}
	if ach.Icon == "" {
		t.Error("Icon is empty, want category icon")
	}
}

func TestCategorizeBucketsAreDisjointAndExhaustive(t *testing.T) {
	e, _ := fixedEngine(t)

	text := "Achievement unlocked: new badge\n" +
		"Remind me to call mom\n" +
		"Team meeting at 3pm\n" +
		"Buy groceries\n" +
		"random scribbles here"

	result := e.Categorize(text, 75)

	total := result.ItemCount() + len(result.Uncategorized)
	if lines := SegmentLines(text); total != len(lines) {
		t.Fatalf("bucketed %d entries from %d lines", total, len(lines))
	}
	if len(result.Achievements) != 1 || len(result.Reminders) != 1 ||
		len(result.Events) != 1 || len(result.Todos) != 1 || len(result.Uncategorized) != 1 {
		t.Errorf("bucket sizes = ach:%d rem:%d ev:%d todo:%d unc:%d, want 1 each",
			len(result.Achievements), len(result.Reminders), len(result.Events),
			len(result.Todos), len(result.Uncategorized))
	}
	if result.Uncategorized[0] != "random scribbles here" {
		t.Errorf("Uncategorized[0] = %q, want the verbatim line", result.Uncategorized[0])
	}
}

func TestCategorizeIsIdempotent(t *testing.T) {
	e, _ := fixedEngine(t)
	text := "Meeting at 2pm tomorrow\nBuy milk\nRemind me to stretch daily"

	first := e.Categorize(text, 82.3)
	second := e.Categorize(text, 82.3)
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical invocations produced different results")
	}
}

func TestCategorizeConfidenceBounds(t *testing.T) {
	e, _ := fixedEngine(t)
	result := e.Categorize("urgent meeting today at 9am\nComplete everything due now", 100)

	for _, ev := range result.Events {
		if ev.Confidence < 0 || ev.Confidence > 95 {
			t.Errorf("event confidence %v outside [0,95]", ev.Confidence)
		}
	}
	for _, td := range result.Todos {
		if td.Confidence < 0 || td.Confidence > 95 {
			t.Errorf("todo confidence %v outside [0,95]", td.Confidence)
		}
	}
}
