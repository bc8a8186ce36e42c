package service

import (
	"context"
	"testing"
	"time"

	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureFreshDayFirstUse(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(repository.NewMemStore(), 5)
	svc.now = fixedClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	state := svc.EnsureFreshDay(ctx, "1")
	assert.Equal(t, "2026-08-30", state.Date)
	assert.Equal(t, 0, state.Done)
	assert.Equal(t, 5, svc.Remaining(ctx, "1"))
}

func TestEnsureFreshDayIdempotent(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{Store: repository.NewMemStore()}
	svc := NewTaskService(store, 5)
	svc.now = fixedClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	store.Set(ctx, tasksKey("1"), &domain.DailyTasks{Date: "2026-08-29", Done: 3})
	writesBefore := store.sets

	svc.EnsureFreshDay(ctx, "1")
	require.Equal(t, writesBefore+1, store.sets, "rollover should persist once")

	svc.EnsureFreshDay(ctx, "1")
	svc.EnsureFreshDay(ctx, "1")
	assert.Equal(t, writesBefore+1, store.sets, "same-day calls must not write")
}

func TestDateRolloverResetsCount(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	svc := NewTaskService(store, 5)
	svc.now = fixedClock(time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC))

	store.Set(ctx, tasksKey("1"), &domain.DailyTasks{Date: "2026-08-29", Done: 5})

	state := svc.EnsureFreshDay(ctx, "1")
	assert.Equal(t, 0, state.Done)
	assert.Equal(t, "2026-08-30", state.Date)
	assert.Equal(t, 5, svc.Remaining(ctx, "1"))
}

func TestRecordCompletionCapsAtLimit(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(repository.NewMemStore(), 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordCompletion(ctx, "1"))
	}
	assert.Equal(t, 0, svc.Remaining(ctx, "1"))
	assert.Equal(t, 3, svc.Completed(ctx, "1"))

	err := svc.RecordCompletion(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrDailyLimitReached)
	assert.Equal(t, 3, svc.Completed(ctx, "1"))
}

func TestRemainingNeverNegative(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	svc := NewTaskService(store, 2)
	svc.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	// A stored count above the limit (e.g. after the limit was lowered)
	// must still clamp at zero.
	store.Set(ctx, tasksKey("1"), &domain.DailyTasks{Date: "2026-08-30", Done: 7})
	assert.Equal(t, 0, svc.Remaining(ctx, "1"))
}

func TestCounterSurvivesUndecodableState(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	svc := NewTaskService(store, 5)

	store.Set(ctx, tasksKey("1"), "not a task state")
	assert.Equal(t, 5, svc.Remaining(ctx, "1"))
}
