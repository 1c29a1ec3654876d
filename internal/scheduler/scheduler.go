package scheduler

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"
)

// Trigger is a one-shot in-memory alert. It lives only until it fires;
// a process restart drops whatever has not fired yet, the rehydration
// pass at startup re-arms what still makes sense.
type Trigger struct {
	FireAt time.Time
	UserID int64
	Name   string
}

// NotifyFunc sends the one-hour warning for a fired trigger.
type NotifyFunc func(ctx context.Context, userID int64, name string)

type Scheduler struct {
	mu      sync.Mutex
	pending triggerHeap
	notify  NotifyFunc
	poll    time.Duration
	now     func() time.Time
}

func New(poll time.Duration) *Scheduler {
	return &Scheduler{
		pending: triggerHeap{},
		poll:    poll,
		now:     time.Now,
	}
}

// OnFire sets the notification callback. Must be called before Run.
func (s *Scheduler) OnFire(notify NotifyFunc) {
	s.notify = notify
}

// Schedule arms a one-shot trigger. There is no way to cancel it.
func (s *Scheduler) Schedule(fireAt time.Time, userID int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	heap.Push(&s.pending, &Trigger{FireAt: fireAt, UserID: userID, Name: name})
}

// Pending reports how many triggers have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Len()
}

// Run polls the trigger heap until the context is cancelled, executing due
// callbacks inline on this goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatch(ctx, s.now())
		}
	}
}

// dispatch fires every trigger due at now, earliest first. A popped trigger
// is gone for good: firing is its terminal state.
func (s *Scheduler) dispatch(ctx context.Context, now time.Time) {
	for {
		s.mu.Lock()
		if s.pending.Len() == 0 || s.pending[0].FireAt.After(now) {
			s.mu.Unlock()
			return
		}
		t := heap.Pop(&s.pending).(*Trigger)
		s.mu.Unlock()

		slog.Info("trigger fired", "user_id", t.UserID, "name", t.Name, "fire_at", t.FireAt)
		if s.notify != nil {
			s.notify(ctx, t.UserID, t.Name)
		}
	}
}

// triggerHeap is a min-heap ordered by fire instant.
type triggerHeap []*Trigger

func (h triggerHeap) Len() int            { return len(h) }
func (h triggerHeap) Less(i, j int) bool  { return h[i].FireAt.Before(h[j].FireAt) }
func (h triggerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *triggerHeap) Push(x interface{}) { *h = append(*h, x.(*Trigger)) }
func (h *triggerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
