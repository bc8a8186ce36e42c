package service

import (
	"context"

	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
	"github.com/shopspring/decimal"
)

// WalletService is the single non-negative balance accumulator per user.
// Amounts are decimals end to end; rounding happens only at display.
type WalletService struct {
	store repository.Store
}

func NewWalletService(store repository.Store) *WalletService {
	return &WalletService{store: store}
}

func (s *WalletService) Balance(ctx context.Context, userID string) decimal.Decimal {
	bal := decimal.Zero
	s.store.Get(ctx, balanceKey(userID), &bal)
	return bal
}

func (s *WalletService) Credit(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	bal := s.Balance(ctx, userID).Add(amount)
	s.store.Set(ctx, balanceKey(userID), bal)
	return bal, nil
}

// Debit subtracts amount, clamped at a zero floor. The caller enforces
// amount <= balance; the clamp guards against residue from any earlier
// odd stored value.
func (s *WalletService) Debit(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	bal := s.Balance(ctx, userID).Sub(amount)
	if bal.IsNegative() {
		bal = decimal.Zero
	}
	s.store.Set(ctx, balanceKey(userID), bal)
	return bal, nil
}

// FormatUSD renders an amount with exactly two fraction digits. Display
// only: the stored balance keeps full precision.
func FormatUSD(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
