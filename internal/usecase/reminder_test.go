package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/doshicc/sirius-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events  []*domain.Event
	nextID  int64
	failAll bool
}

var errStore = errors.New("store is down")

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if f.failAll {
		return errStore
	}
	f.nextID++
	event.ID = f.nextID
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) GetByUserAndDate(ctx context.Context, userID int64, date string) ([]*domain.Event, error) {
	if f.failAll {
		return nil, errStore
	}
	var out []*domain.Event
	for _, e := range f.events {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeEventRepo) GetAfter(ctx context.Context, instant time.Time) ([]*domain.Event, error) {
	if f.failAll {
		return nil, errStore
	}
	cutoff := instant.Format(domain.DateTimeLayout)
	var out []*domain.Event
	for _, e := range f.events {
		if e.Date+" "+e.Time >= cutoff {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) DeleteBefore(ctx context.Context, instant time.Time) (int64, error) {
	if f.failAll {
		return 0, errStore
	}
	cutoff := instant.Format(domain.DateTimeLayout)
	var kept []*domain.Event
	var purged int64
	for _, e := range f.events {
		if e.Date+" "+e.Time < cutoff {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	f.events = kept
	return purged, nil
}

type fakeScheduler struct {
	triggers []struct {
		fireAt time.Time
		userID int64
		name   string
	}
}

func (f *fakeScheduler) Schedule(fireAt time.Time, userID int64, name string) {
	f.triggers = append(f.triggers, struct {
		fireAt time.Time
		userID int64
		name   string
	}{fireAt, userID, name})
}

func newTestUsecase(repo *fakeEventRepo, sched *fakeScheduler, now time.Time) *ReminderUsecase {
	u := NewReminderUsecase(repo, sched)
	u.now = func() time.Time { return now }
	return u
}

var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

func TestAddAccepted(t *testing.T) {
	repo := &fakeEventRepo{}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	check := u.Add(context.Background(), 42, "Meeting", "2024-01-01", "12:00")

	assert.Equal(t, domain.DateTimeOK, check)
	require.Len(t, repo.events, 1)
	assert.Equal(t, "Meeting", repo.events[0].Name)
	require.Len(t, sched.triggers, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local), sched.triggers[0].fireAt)
	assert.Equal(t, int64(42), sched.triggers[0].userID)
}

func TestAddTooSoonInsertsWithoutTrigger(t *testing.T) {
	repo := &fakeEventRepo{}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	check := u.Add(context.Background(), 42, "Meeting", "2024-01-01", "10:30")

	assert.Equal(t, domain.DateTimeTooSoon, check)
	assert.Len(t, repo.events, 1)
	assert.Empty(t, sched.triggers)
}

func TestAddInPastInsertsNothing(t *testing.T) {
	repo := &fakeEventRepo{}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	check := u.Add(context.Background(), 42, "Meeting", "2024-01-01", "09:00")

	assert.Equal(t, domain.DateTimeInPast, check)
	assert.Empty(t, repo.events)
	assert.Empty(t, sched.triggers)
}

func TestAddMalformedInsertsNothing(t *testing.T) {
	repo := &fakeEventRepo{}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	check := u.Add(context.Background(), 42, "Meeting", "01.01.2024", "12-00")

	assert.Equal(t, domain.DateTimeMalformed, check)
	assert.Empty(t, repo.events)
	assert.Empty(t, sched.triggers)
}

func TestAddSurvivesInsertFault(t *testing.T) {
	repo := &fakeEventRepo{failAll: true}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	check := u.Add(context.Background(), 42, "Meeting", "2024-01-01", "12:00")

	// The outcome is still reported and the trigger still armed; only the
	// fault counter records that the row never landed.
	assert.Equal(t, domain.DateTimeOK, check)
	assert.Len(t, sched.triggers, 1)
	assert.Equal(t, uint64(1), u.StoreFaults())
}

func TestListForDateOrderedByTime(t *testing.T) {
	repo := &fakeEventRepo{}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	u.Add(context.Background(), 42, "Evening", "2024-01-01", "19:00")
	u.Add(context.Background(), 42, "Lunch", "2024-01-01", "13:00")
	u.Add(context.Background(), 7, "Other user", "2024-01-01", "12:00")

	events := u.ListForDate(context.Background(), 42, "2024-01-01")

	require.Len(t, events, 2)
	assert.Equal(t, "Lunch", events[0].Name)
	assert.Equal(t, "Evening", events[1].Name)
}

func TestListForDateEmptyOnFault(t *testing.T) {
	repo := &fakeEventRepo{failAll: true}
	u := newTestUsecase(repo, &fakeScheduler{}, testNow)

	events := u.ListForDate(context.Background(), 42, "2024-01-01")

	assert.Empty(t, events)
	assert.Equal(t, uint64(1), u.StoreFaults())
}

func TestSweepIsIdempotent(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		{ID: 1, UserID: 42, Name: "gone", Date: "2023-12-31", Time: "09:00"},
		{ID: 2, UserID: 42, Name: "kept", Date: "2024-01-02", Time: "09:00"},
	}}
	u := newTestUsecase(repo, &fakeScheduler{}, testNow)

	u.Sweep(context.Background())
	require.Len(t, repo.events, 1)

	u.Sweep(context.Background())
	assert.Len(t, repo.events, 1)
	assert.Equal(t, "kept", repo.events[0].Name)
}

func TestRehydrateArmsOnlyEventsBeyondLead(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		{ID: 1, UserID: 42, Name: "far", Date: "2024-01-01", Time: "12:00"},
		{ID: 2, UserID: 42, Name: "close", Date: "2024-01-01", Time: "10:30"},
	}}
	sched := &fakeScheduler{}
	u := newTestUsecase(repo, sched, testNow)

	armed := u.Rehydrate(context.Background())

	assert.Equal(t, 1, armed)
	require.Len(t, sched.triggers, 1)
	assert.Equal(t, "far", sched.triggers[0].name)
	assert.Equal(t, time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local), sched.triggers[0].fireAt)
}
