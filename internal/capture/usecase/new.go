package usecase

import (
	"context"
	"time"

	"smart-screenshot-organizer/internal/capture/repository"
	"smart-screenshot-organizer/internal/categorize"
	"smart-screenshot-organizer/pkg/gcalendar"
	"smart-screenshot-organizer/pkg/gemini"
	pkgLog "smart-screenshot-organizer/pkg/log"
)

// LLMClient is the slice of the Gemini client the use case needs.
type LLMClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// CalendarClient is the slice of the Google Calendar client the use case
// needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Notifier sends the capture summary to a chat.
type Notifier interface {
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}

type implUseCase struct {
	l           pkgLog.Logger
	engine      *categorize.Engine
	llm         LLMClient      // nil disables the AI strategy
	calendar    CalendarClient // nil disables calendar export
	notifier    Notifier       // nil disables notifications
	defaultChat int64          // fallback chat when the request names none
	repo        repository.Repository
	timezone    string
	now         func() time.Time
}

// New creates a new capture UseCase instance. The llm, calendar, and
// notifier collaborators are optional; pass nil to disable them.
func New(
	l pkgLog.Logger,
	engine *categorize.Engine,
	llm LLMClient,
	calendar CalendarClient,
	notifier Notifier,
	defaultChat int64,
	repo repository.Repository,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		engine:      engine,
		llm:         llm,
		calendar:    calendar,
		notifier:    notifier,
		defaultChat: defaultChat,
		repo:        repo,
		timezone:    timezone,
		now:         time.Now,
	}
}
