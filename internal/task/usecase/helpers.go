package usecase

import (
	"context"
	"fmt"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/pkg/gcalendar"
)

// Names used in date resolution errors.
const (
	fieldDue   = `due date of "deadline"`
	fieldStart = `start date of "event"`
	fieldEnd   = `end date of "event"`
)

// deadlineSlot is the length of the calendar block that ends at a deadline.
const deadlineSlot = 30 * time.Minute

func reply(text string) task.ExecuteOutput {
	return task.ExecuteOutput{Reply: text}
}

func (uc *implUseCase) resolveDate(ctx context.Context, text, field string) (time.Time, error) {
	res, ok := uc.resolver.ResolveDetailed(text)
	if !ok {
		return time.Time{}, fmt.Errorf("%s %w: %q", field, task.ErrDateResolution, text)
	}
	uc.l.Debugf(ctx, "usecase.resolveDate: %q matched layout %q", text, res.Layout)
	return res.Instant, nil
}

// mirror copies a new deadline or event to the calendar. Calendar failures are
// logged and never undo the local change.
func (uc *implUseCase) mirror(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Description(),
		Description: t.String(),
		Timezone:    uc.location.String(),
	}
	switch t.Kind() {
	case model.KindDeadline:
		req.EndTime = uc.inLocation(t.By())
		req.StartTime = req.EndTime.Add(-deadlineSlot)
	case model.KindEvent:
		req.StartTime = uc.inLocation(t.From())
		req.EndTime = uc.inLocation(t.To())
	default:
		return
	}

	ev, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "usecase.mirror: calendar event for %q not created: %v", t.Description(), err)
		return
	}
	uc.l.Infof(ctx, "usecase.mirror: created calendar event %s for %q", ev.ID, t.Description())
}

// inLocation keeps the wall-clock reading of a zone-less instant and attaches the
// configured zone to it.
func (uc *implUseCase) inLocation(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, uc.location)
}
