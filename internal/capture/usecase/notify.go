package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/gcalendar"
)

// tryExportEvents pushes extracted events to Google Calendar. Export is best
// effort: a failed event is logged and skipped, the capture stays valid.
func (uc *implUseCase) tryExportEvents(ctx context.Context, events []model.ExtractedEvent) {
	if uc.calendar == nil || len(events) == 0 {
		return
	}

	for _, event := range events {
		created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     event.Title,
			Description: event.Description,
			Location:    event.Location,
			StartTime:   event.StartTime,
			EndTime:     event.EndTime,
			IsAllDay:    event.IsAllDay,
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "tryExportEvents: failed to export %q: %v", event.Title, err)
			continue
		}
		uc.l.Infof(ctx, "tryExportEvents: created calendar event %s for %q", created.ID, event.Title)
	}
}

// tryNotify sends a summary of the capture to the given chat. Like calendar
// export, notification failures never fail the capture.
func (uc *implUseCase) tryNotify(ctx context.Context, chatID int64, cap model.Capture) {
	if chatID == 0 {
		chatID = uc.defaultChat
	}
	if uc.notifier == nil || chatID == 0 {
		return
	}

	if err := uc.notifier.SendMessageWithMode(chatID, buildCaptureSummary(cap), "Markdown"); err != nil {
		uc.l.Warnf(ctx, "tryNotify: failed to send summary for capture %s: %v", cap.ID, err)
	}
}

// buildCaptureSummary renders a short Markdown digest of what was extracted.
func buildCaptureSummary(cap model.Capture) string {
	var b strings.Builder
	b.WriteString("*Screenshot processed*\n")

	if cap.Summary != "" {
		b.WriteString(cap.Summary)
		b.WriteString("\n")
	}

	r := cap.Result
	if r.ItemCount() == 0 {
		b.WriteString("No actionable items found.")
		return b.String()
	}

	if len(r.Todos) > 0 {
		b.WriteString(fmt.Sprintf("\n✅ *Todos (%d)*\n", len(r.Todos)))
		for _, t := range r.Todos {
			b.WriteString(fmt.Sprintf("• %s (%s)\n", t.Title, t.Priority))
		}
	}
	if len(r.Events) > 0 {
		b.WriteString(fmt.Sprintf("\n📅 *Events (%d)*\n", len(r.Events)))
		for _, e := range r.Events {
			if e.IsAllDay {
				b.WriteString(fmt.Sprintf("• %s — %s (all day)\n", e.Title, e.StartTime.Format("Jan 2")))
			} else {
				b.WriteString(fmt.Sprintf("• %s — %s\n", e.Title, e.StartTime.Format("Jan 2 3:04 PM")))
			}
		}
	}
	if len(r.Reminders) > 0 {
		b.WriteString(fmt.Sprintf("\n⏰ *Reminders (%d)*\n", len(r.Reminders)))
		for _, rem := range r.Reminders {
			b.WriteString(fmt.Sprintf("• %s — %s\n", rem.Title, rem.RemindAt.Format("Jan 2 3:04 PM")))
		}
	}
	if len(r.Achievements) > 0 {
		b.WriteString(fmt.Sprintf("\n🏆 *Achievements (%d)*\n", len(r.Achievements)))
		for _, a := range r.Achievements {
			b.WriteString(fmt.Sprintf("• %s %s (+%d pts)\n", a.Icon, a.Title, a.Points))
		}
	}

	return b.String()
}
