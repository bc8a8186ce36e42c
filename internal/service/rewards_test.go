package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRewardFixture(store repository.Store, ads AdProvider, perDay int, reward string) (*RewardService, *TaskService, *WalletService) {
	tasks := NewTaskService(store, perDay)
	wallet := NewWalletService(store)
	rewards := NewRewardService(tasks, wallet, ads, decimal.RequireFromString(reward))
	return rewards, tasks, wallet
}

func TestAttemptEarnCreditsReward(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	rewards, tasks, wallet := newRewardFixture(store, &scriptedAd{}, 5, "0.02")

	// Day state: four of five tasks done, $0.08 earned so far.
	tasks.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	store.Set(ctx, tasksKey("1"), &domain.DailyTasks{Date: "2026-08-30", Done: 4})
	_, err := wallet.Credit(ctx, "1", decimal.RequireFromString("0.08"))
	require.NoError(t, err)

	amount, err := rewards.AttemptEarn(ctx, "1")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("0.02")))
	assert.Equal(t, 5, tasks.Completed(ctx, "1"))
	assert.Equal(t, "0.10", FormatUSD(wallet.Balance(ctx, "1")))

	// Limit hit: second attempt fails with no balance change.
	_, err = rewards.AttemptEarn(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrDailyLimitReached)
	assert.Equal(t, "0.10", FormatUSD(wallet.Balance(ctx, "1")))
	assert.Equal(t, 5, tasks.Completed(ctx, "1"))
}

func TestAttemptEarnDailyLimitNoSideEffects(t *testing.T) {
	ctx := context.Background()
	mem := repository.NewMemStore()
	store := &countingStore{Store: mem}
	rewards, tasks, _ := newRewardFixture(store, &scriptedAd{}, 2, "0.02")
	tasks.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	store.Set(ctx, tasksKey("1"), &domain.DailyTasks{Date: "2026-08-30", Done: 2})
	writesBefore := store.sets

	_, err := rewards.AttemptEarn(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrDailyLimitReached)
	assert.Equal(t, writesBefore, store.sets)
}

func TestAttemptEarnAdFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	rewards, tasks, wallet := newRewardFixture(store, &scriptedAd{err: errors.New("network down")}, 5, "0.02")

	_, err := rewards.AttemptEarn(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrAdFailed)
	assert.Equal(t, 0, tasks.Completed(ctx, "1"))
	assert.True(t, wallet.Balance(ctx, "1").IsZero())
}

func TestAttemptEarnSingleFlight(t *testing.T) {
	ctx := context.Background()
	ad := newBlockingAd()
	rewards, _, wallet := newRewardFixture(repository.NewMemStore(), ad, 5, "0.02")

	type result struct {
		amount decimal.Decimal
		err    error
	}
	done := make(chan result, 1)
	go func() {
		amount, err := rewards.AttemptEarn(ctx, "1")
		done <- result{amount, err}
	}()

	<-ad.started

	// Second attempt for the same user while the first holds the slot.
	_, err := rewards.AttemptEarn(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrEarnInFlight)

	close(ad.release)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, "0.02", FormatUSD(wallet.Balance(ctx, "1")))

	// Slot freed: the next attempt runs again.
	_, err = rewards.AttemptEarn(ctx, "1")
	require.NoError(t, err)
}

func TestAttemptEarnIndependentUsers(t *testing.T) {
	ctx := context.Background()
	rewards, _, wallet := newRewardFixture(repository.NewMemStore(), &scriptedAd{}, 5, "0.05")

	_, err := rewards.AttemptEarn(ctx, "1")
	require.NoError(t, err)
	_, err = rewards.AttemptEarn(ctx, "2")
	require.NoError(t, err)

	assert.Equal(t, "0.05", FormatUSD(wallet.Balance(ctx, "1")))
	assert.Equal(t, "0.05", FormatUSD(wallet.Balance(ctx, "2")))
}
