package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/set-night/farmtap/internal/domain"
	"github.com/shopspring/decimal"
)

// RewardService orchestrates one earn attempt: daily limit check, ad
// display, then counter advance and balance credit. A per-user
// in-flight set rejects concurrent attempts instead of trusting the UI
// to disable its button.
type RewardService struct {
	tasks  *TaskService
	wallet *WalletService
	ads    AdProvider
	reward decimal.Decimal

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewRewardService(tasks *TaskService, wallet *WalletService, ads AdProvider, rewardPerTask decimal.Decimal) *RewardService {
	return &RewardService{
		tasks:    tasks,
		wallet:   wallet,
		ads:      ads,
		reward:   rewardPerTask,
		inFlight: make(map[string]struct{}),
	}
}

func (s *RewardService) begin(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *RewardService) end(userID string) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}

// AttemptEarn runs one earn attempt and returns the credited amount.
// No state is mutated unless the ad completes: a failed or limited
// attempt leaves counter and balance untouched.
func (s *RewardService) AttemptEarn(ctx context.Context, userID string) (decimal.Decimal, error) {
	if !s.begin(userID) {
		return decimal.Zero, domain.ErrEarnInFlight
	}
	defer s.end(userID)

	if s.tasks.Remaining(ctx, userID) == 0 {
		return decimal.Zero, domain.ErrDailyLimitReached
	}

	if err := s.ads.Show(ctx); err != nil {
		slog.Warn("ad display failed", "user_id", userID, "error", err)
		return decimal.Zero, fmt.Errorf("%w: %w", domain.ErrAdFailed, err)
	}

	if err := s.tasks.RecordCompletion(ctx, userID); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.wallet.Credit(ctx, userID, s.reward); err != nil {
		return decimal.Zero, err
	}

	slog.Info("reward credited", "user_id", userID, "amount", s.reward.String())
	return s.reward, nil
}

func (s *RewardService) RewardPerTask() decimal.Decimal {
	return s.reward
}
