package usecase

import (
	"context"
	"time"

	"smart-screenshot-organizer/internal/capture/repository/memory"
	"smart-screenshot-organizer/internal/categorize"
	"smart-screenshot-organizer/pkg/datemath"
	"smart-screenshot-organizer/pkg/gcalendar"
	"smart-screenshot-organizer/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock LLM client for testing
type mockLLM struct {
	text  string
	err   error
	calls int
}

func (m *mockLLM) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: m.text}}}},
		},
	}, nil
}

// Mock calendar client for testing
type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}

// Mock notifier for testing
type mockNotifier struct {
	chatIDs  []int64
	messages []string
	err      error
}

func (m *mockNotifier) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	m.chatIDs = append(m.chatIDs, chatID)
	m.messages = append(m.messages, text)
	return m.err
}

var testBase = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

// newTestUseCase wires a use case against in-memory collaborators pinned to
// a fixed clock.
func newTestUseCase(llm LLMClient, calendar CalendarClient, notifier Notifier) (*implUseCase, *memory.Store) {
	dates, _ := datemath.NewParser("UTC")
	store := memory.New()
	uc := New(&mockLogger{}, categorize.New(dates), llm, calendar, notifier, 0, store, "UTC")
	uc.now = func() time.Time { return testBase }
	return uc, store
}
