package domain

import (
	"context"
	"time"
)

type Event struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"` // telegram chat id владельца напоминания
	Name   string `db:"name"`
	Date   string `db:"date"` // YYYY-MM-DD
	Time   string `db:"time"` // HH:MM
}

// Instant returns the event's date+time as a wall-clock instant in the
// host timezone.
func (e *Event) Instant() (time.Time, error) {
	return ParseInstant(e.Date, e.Time)
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByUserAndDate(ctx context.Context, userID int64, date string) ([]*Event, error)
	GetAfter(ctx context.Context, instant time.Time) ([]*Event, error)
	DeleteBefore(ctx context.Context, instant time.Time) (int64, error)
}
