package usecase

import (
	"strings"
	"testing"
	"time"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/gemini"
)

func TestResultFromAnalysisTodos(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil, nil)

	analysis := &gemini.Analysis{
		Confidence: 0.85,
		ExtractedItems: gemini.ExtractedItems{
			Todos: []gemini.AnalysisTodo{
				{Title: "Submit report", Priority: "high", DueDate: "2024-05-03T17:00:00Z", Tags: []string{"work"}},
				{Title: "Buy milk", Priority: "low", DueDate: "not-a-date", Tags: []string{}},
			},
		},
	}

	result := uc.resultFromAnalysis(analysis)
	if len(result.Todos) != 2 {
		t.Fatalf("got %d todos, want 2", len(result.Todos))
	}

	first := result.Todos[0]
	if first.DueDate == nil || !first.DueDate.Equal(time.Date(2024, 5, 3, 17, 0, 0, 0, time.UTC)) {
		t.Errorf("first due date = %v", first.DueDate)
	}
	if first.Confidence != 85 {
		t.Errorf("confidence = %.1f, want 85", first.Confidence)
	}
	if result.Todos[1].DueDate != nil {
		t.Errorf("unparseable due date should stay nil, got %v", result.Todos[1].DueDate)
	}
}

func TestResultFromAnalysisEventDefaults(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil, nil)

	analysis := &gemini.Analysis{
		ExtractedItems: gemini.ExtractedItems{
			Events: []gemini.AnalysisEvent{
				{Title: "Standup", StartTime: "2024-05-02T09:30:00Z", EndTime: "garbage", EventType: "meeting"},
				{Title: "Company day", StartTime: "", EventType: "festival"},
			},
		},
	}

	result := uc.resultFromAnalysis(analysis)
	if len(result.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(result.Events))
	}

	timed := result.Events[0]
	if !timed.EndTime.Equal(timed.StartTime.Add(time.Hour)) {
		t.Errorf("bad end time should default to start+1h, got %v", timed.EndTime)
	}
	if timed.Color != "#3B82F6" {
		t.Errorf("meeting color = %q", timed.Color)
	}

	allDay := result.Events[1]
	if !allDay.IsAllDay {
		t.Error("event without start time should be all-day")
	}
	wantStart := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)
	if !allDay.StartTime.Equal(wantStart) || !allDay.EndTime.Equal(wantEnd) {
		t.Errorf("all-day window = %v..%v, want %v..%v", allDay.StartTime, allDay.EndTime, wantStart, wantEnd)
	}
	if allDay.EventType != "meeting" {
		t.Errorf("unknown event type should default to meeting, got %q", allDay.EventType)
	}
}

func TestResultFromAnalysisReminderFrequency(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil, nil)

	analysis := &gemini.Analysis{
		ExtractedItems: gemini.ExtractedItems{
			Reminders: []gemini.AnalysisReminder{
				{Title: "Standup", RemindAt: "2024-05-02T09:00:00Z", Frequency: "Daily"},
				{Title: "Review", RemindAt: "bad", Frequency: "once"},
			},
		},
	}

	result := uc.resultFromAnalysis(analysis)
	if len(result.Reminders) != 2 {
		t.Fatalf("got %d reminders, want 2", len(result.Reminders))
	}

	recurring := result.Reminders[0]
	if !recurring.IsRecurring || recurring.RecurrencePattern != "daily" {
		t.Errorf("recurring = %+v", recurring)
	}

	once := result.Reminders[1]
	if once.IsRecurring {
		t.Error("frequency once should not be recurring")
	}
	if !once.RemindAt.Equal(testBase) {
		t.Errorf("bad remindAt should default to now, got %v", once.RemindAt)
	}
}

func TestBuildCaptureSummary(t *testing.T) {
	empty := model.Capture{Result: model.NewCategorizedResult()}
	if got := buildCaptureSummary(empty); !strings.Contains(got, "No actionable items found") {
		t.Errorf("empty summary = %q", got)
	}

	cap := model.Capture{
		Summary: "A busy day",
		Result: model.CategorizedResult{
			Todos: []model.ExtractedTodo{
				{Title: "Submit report", Priority: model.PriorityHigh},
			},
			Events: []model.ExtractedEvent{
				{Title: "Standup", StartTime: testBase, IsAllDay: false},
			},
			Achievements: []model.ExtractedAchievement{
				{Title: "7-day streak", Icon: "🔥", Points: 50},
			},
		},
	}

	got := buildCaptureSummary(cap)
	for _, want := range []string{"A busy day", "Submit report", "high", "Standup", "7-day streak", "+50 pts"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
