package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/doshicc/sirius-bot/internal/domain"
)

// TriggerScheduler arms one-shot notification triggers.
type TriggerScheduler interface {
	Schedule(fireAt time.Time, userID int64, name string)
}

// ReminderUsecase owns the reminder lifecycle: validation, persistence,
// trigger arming and cleanup. Store errors never escape it: they are logged,
// counted and degraded to "no rows"/no-op, so the transport layer only ever
// branches on the validation outcome.
type ReminderUsecase struct {
	eventRepo   domain.EventRepository
	scheduler   TriggerScheduler
	now         func() time.Time
	storeFaults atomic.Uint64
}

func NewReminderUsecase(eventRepo domain.EventRepository, scheduler TriggerScheduler) *ReminderUsecase {
	return &ReminderUsecase{
		eventRepo: eventRepo,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// Add validates the date/time pair and branches on the outcome:
// OK inserts a row and arms a trigger one hour before the event, TooSoon
// inserts without a trigger, InPast and Malformed touch nothing.
func (u *ReminderUsecase) Add(ctx context.Context, userID int64, name, date, tm string) domain.DateTimeCheck {
	check := domain.CheckDateTime(date, tm, u.now())
	if check == domain.DateTimeInPast || check == domain.DateTimeMalformed {
		return check
	}

	event := &domain.Event{
		UserID: userID,
		Name:   name,
		Date:   date,
		Time:   tm,
	}
	if err := u.eventRepo.Create(ctx, event); err != nil {
		u.storeFaults.Add(1)
		slog.Error("event insert failed", "err", err, "user_id", userID)
	}

	if check == domain.DateTimeOK {
		instant, _ := domain.ParseInstant(date, tm)
		u.scheduler.Schedule(instant.Add(-domain.AlertLead), userID, name)
	}

	return check
}

// ListForDate returns the user's reminders for a canonical date, ordered
// ascending by time. Empty on store fault.
func (u *ReminderUsecase) ListForDate(ctx context.Context, userID int64, date string) []*domain.Event {
	events, err := u.eventRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		u.storeFaults.Add(1)
		slog.Error("event query failed", "err", err, "user_id", userID, "date", date)
		return nil
	}
	return events
}

// Sweep deletes every reminder whose date+time has already elapsed.
func (u *ReminderUsecase) Sweep(ctx context.Context) {
	purged, err := u.eventRepo.DeleteBefore(ctx, u.now())
	if err != nil {
		u.storeFaults.Add(1)
		slog.Error("sweep failed", "err", err)
		return
	}
	if purged > 0 {
		slog.Info("old reminders removed", "count", purged)
	}
}

// Rehydrate re-arms triggers for stored events that still have more than the
// alert lead ahead of them. Events already inside the lead window keep their
// rows but get no trigger, same as a too-soon insert. Returns the number of
// triggers armed.
func (u *ReminderUsecase) Rehydrate(ctx context.Context) int {
	now := u.now()
	events, err := u.eventRepo.GetAfter(ctx, now)
	if err != nil {
		u.storeFaults.Add(1)
		slog.Error("rehydration query failed", "err", err)
		return 0
	}

	armed := 0
	for _, event := range events {
		instant, err := event.Instant()
		if err != nil {
			slog.Error("stored event has bad date/time", "err", err, "id", event.ID)
			continue
		}
		if instant.Sub(now) < domain.AlertLead {
			continue
		}
		u.scheduler.Schedule(instant.Add(-domain.AlertLead), event.UserID, event.Name)
		armed++
	}
	if armed > 0 {
		slog.Info("triggers rehydrated", "count", armed)
	}
	return armed
}

// StoreFaults reports how many store errors have been swallowed so far.
func (u *ReminderUsecase) StoreFaults() uint64 {
	return u.storeFaults.Load()
}
