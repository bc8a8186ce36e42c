package config

import "time"

const (
	// Ad display timing
	AdSettleDelay    = 3 * time.Second
	AdFallbackDelay  = 2500 * time.Millisecond
	AdRequestTimeout = 15 * time.Second

	// Admin notification timeout
	NotifyTimeout = 10 * time.Second

	// Date format for the daily task counter
	DateLayout = "2006-01-02"

	// Timestamp format shown in withdrawal records and admin messages
	TimeLayout = "2006-01-02 15:04:05"

	// History entries per page
	HistoryPerPage = 5

	// Rate limits (per minute)
	RateLimitPerChat = 20
)

// WithdrawMethods accepted by the withdrawal form.
var WithdrawMethods = []string{"card", "usdt", "paypal"}
