package handler

import (
	"github.com/go-telegram/bot"
	"github.com/set-night/farmtap/internal/config"
	"github.com/set-night/farmtap/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	profiles    *service.ProfileService
	tasks       *service.TaskService
	wallet      *service.WalletService
	rewards     *service.RewardService
	withdraws   *service.WithdrawService
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Profiles    *service.ProfileService
	Tasks       *service.TaskService
	Wallet      *service.WalletService
	Rewards     *service.RewardService
	Withdraws   *service.WithdrawService
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		profiles:    deps.Profiles,
		tasks:       deps.Tasks,
		wallet:      deps.Wallet,
		rewards:     deps.Rewards,
		withdraws:   deps.Withdraws,
		botUsername: deps.BotUsername,
	}
}
