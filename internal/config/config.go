package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Admin chat receiving withdrawal requests
	AdminID int64 `env:"ADMIN_ID,required"`

	// Earning
	TasksPerDay   int             `env:"TASKS_PER_DAY" envDefault:"30"`
	RewardPerTask decimal.Decimal `env:"REWARD_PER_TASK" envDefault:"0.02"`

	// Withdrawals
	MinWithdraw decimal.Decimal `env:"MIN_WITHDRAW" envDefault:"1.00"`

	// Ad network trigger endpoint; empty means degraded mode (timed fallback)
	AdEndpoint string `env:"AD_ENDPOINT"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	return telegramID == c.AdminID
}
