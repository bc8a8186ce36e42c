package service

import (
	"context"
	"time"

	"github.com/set-night/farmtap/internal/config"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
)

// TaskService tracks the per-user daily task counter. Rollover is lazy:
// the stored date is compared against today on access, never by timer.
type TaskService struct {
	store  repository.Store
	perDay int
	now    func() time.Time
}

func NewTaskService(store repository.Store, tasksPerDay int) *TaskService {
	return &TaskService{
		store:  store,
		perDay: tasksPerDay,
		now:    time.Now,
	}
}

func (s *TaskService) today() string {
	return s.now().Format(config.DateLayout)
}

func (s *TaskService) load(ctx context.Context, userID string) *domain.DailyTasks {
	t := &domain.DailyTasks{Date: s.today()}
	s.store.Get(ctx, tasksKey(userID), t)
	return t
}

// EnsureFreshDay resets the counter when the stored date is not today.
// Idempotent: a second call on the same day persists nothing.
func (s *TaskService) EnsureFreshDay(ctx context.Context, userID string) *domain.DailyTasks {
	t := s.load(ctx, userID)
	if t.Date != s.today() {
		t.Date = s.today()
		t.Done = 0
		s.store.Set(ctx, tasksKey(userID), t)
	}
	return t
}

// RecordCompletion advances the counter by one. Callers must have
// checked Remaining; the count is still capped defensively.
func (s *TaskService) RecordCompletion(ctx context.Context, userID string) error {
	t := s.EnsureFreshDay(ctx, userID)
	if t.Done >= s.perDay {
		return domain.ErrDailyLimitReached
	}
	t.Done++
	s.store.Set(ctx, tasksKey(userID), t)
	return nil
}

func (s *TaskService) Remaining(ctx context.Context, userID string) int {
	return s.EnsureFreshDay(ctx, userID).Remaining(s.perDay)
}

func (s *TaskService) Completed(ctx context.Context, userID string) int {
	return s.EnsureFreshDay(ctx, userID).Done
}

func (s *TaskService) PerDay() int {
	return s.perDay
}
