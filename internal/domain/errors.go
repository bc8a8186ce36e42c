package domain

import "errors"

var (
	ErrDailyLimitReached   = errors.New("daily task limit reached")
	ErrAdFailed            = errors.New("ad failed to complete")
	ErrEarnInFlight        = errors.New("earn attempt already in flight")
	ErrBelowMinimum        = errors.New("amount below minimum withdrawal")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidAmount       = errors.New("invalid amount")
)
