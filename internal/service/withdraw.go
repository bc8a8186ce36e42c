package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/farmtap/internal/config"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
	"github.com/shopspring/decimal"
)

// Notifier delivers a message to the operator channel. Delivery is best
// effort: implementations never fail observably.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// WithdrawService validates withdrawal requests against the wallet and
// the configured minimum, notifies the operator, debits the balance,
// and records the request in the per-user history.
type WithdrawService struct {
	store    repository.Store
	wallet   *WalletService
	notifier Notifier
	min      decimal.Decimal
	now      func() time.Time
}

func NewWithdrawService(store repository.Store, wallet *WalletService, notifier Notifier, minWithdraw decimal.Decimal) *WithdrawService {
	return &WithdrawService{
		store:    store,
		wallet:   wallet,
		notifier: notifier,
		min:      minWithdraw,
		now:      time.Now,
	}
}

func (s *WithdrawService) Min() decimal.Decimal {
	return s.min
}

// Submit processes one withdrawal request. Validation short-circuits on
// the first failure with no side effects. Once validation passes the
// request always succeeds locally, whether or not the operator was
// actually reached.
func (s *WithdrawService) Submit(ctx context.Context, user *domain.Profile, method, address, amountStr string) (*domain.WithdrawalRecord, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) || amount.LessThan(s.min) {
		return nil, domain.ErrBelowMinimum
	}

	balance := s.wallet.Balance(ctx, user.ID)
	if amount.GreaterThan(balance) {
		return nil, domain.ErrInsufficientBalance
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domain.ErrInvalidAddress
	}

	ts := s.now().Format(config.TimeLayout)
	text := fmt.Sprintf(
		"💸 Withdraw Request\nUser: %s (%s)\nTG ID: %s\nMethod: %s\nAddress: %s\nAmount: $%s\nBalance Before: $%s\nTime: %s",
		user.FullName(), user.Handle(), user.ID,
		method, address, FormatUSD(amount), FormatUSD(balance), ts,
	)
	s.notifier.Notify(ctx, text)

	if _, err := s.wallet.Debit(ctx, user.ID, amount); err != nil {
		return nil, fmt.Errorf("debit balance: %w", err)
	}

	rec := &domain.WithdrawalRecord{
		ID:      uuid.NewString(),
		Method:  method,
		Address: address,
		Amount:  FormatUSD(amount),
		Time:    ts,
		Status:  domain.StatusPending,
	}
	history := s.History(ctx, user.ID)
	history = append([]domain.WithdrawalRecord{*rec}, history...)
	s.store.Set(ctx, historyKey(user.ID), history)

	slog.Info("withdrawal recorded",
		"user_id", user.ID,
		"method", method,
		"amount", rec.Amount,
	)
	return rec, nil
}

// History returns the user's withdrawal records, most recent first.
func (s *WithdrawService) History(ctx context.Context, userID string) []domain.WithdrawalRecord {
	var history []domain.WithdrawalRecord
	s.store.Get(ctx, historyKey(userID), &history)
	return history
}
