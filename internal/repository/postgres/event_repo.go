package postgres

import (
	"context"
	"time"

	"github.com/doshicc/sirius-bot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (user_id, name, date, time)
						VALUES ($1, $2, $3, $4)
						RETURNING id`
	err := r.db.QueryRow(ctx, query, event.UserID, event.Name, event.Date, event.Time).Scan(&event.ID)
	if err != nil {
		return err
	}
	return nil
}

func (r *EventRepository) GetByUserAndDate(ctx context.Context, userID int64, date string) ([]*domain.Event, error) {
	query := `SELECT id, user_id, name, date, time
						FROM events
						WHERE user_id = $1 AND date = $2
						ORDER BY time`
	rows, err := r.db.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0, 10)
	for rows.Next() {
		event := &domain.Event{}
		err := rows.Scan(&event.ID, &event.UserID, &event.Name, &event.Date, &event.Time)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return events, nil
}

// GetAfter returns events whose date+time is at or after the given instant.
// The canonical text formats compare correctly as strings.
func (r *EventRepository) GetAfter(ctx context.Context, instant time.Time) ([]*domain.Event, error) {
	query := `SELECT id, user_id, name, date, time
						FROM events
						WHERE date || ' ' || time >= $1
						ORDER BY date, time`
	rows, err := r.db.Query(ctx, query, instant.Format(domain.DateTimeLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0, 10)
	for rows.Next() {
		event := &domain.Event{}
		err := rows.Scan(&event.ID, &event.UserID, &event.Name, &event.Date, &event.Time)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return events, nil
}

func (r *EventRepository) DeleteBefore(ctx context.Context, instant time.Time) (int64, error) {
	query := `DELETE FROM events WHERE date || ' ' || time < $1`
	tag, err := r.db.Exec(ctx, query, instant.Format(domain.DateTimeLayout))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
