package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	farmtaproot "github.com/set-night/farmtap"
	"github.com/set-night/farmtap/internal/config"
	"github.com/set-night/farmtap/internal/handler"
	"github.com/set-night/farmtap/internal/middleware"
	"github.com/set-night/farmtap/internal/repository"
	"github.com/set-night/farmtap/internal/service"
	"github.com/set-night/farmtap/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(farmtaproot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := repository.NewPGStore(pool)

	// Ad provider: real network when configured, timed fallback otherwise
	var ads service.AdProvider
	if cfg.AdEndpoint != "" {
		ads = &service.SDKAdProvider{
			Client:   &http.Client{Timeout: config.AdRequestTimeout},
			Endpoint: cfg.AdEndpoint,
			Settle:   config.AdSettleDelay,
		}
	} else {
		slog.Warn("no ad endpoint configured, running in degraded mode")
		ads = &service.TimedAdProvider{Delay: config.AdFallbackDelay}
	}

	// Initialize services
	profileService := service.NewProfileService(store)
	taskService := service.NewTaskService(store, cfg.TasksPerDay)
	walletService := service.NewWalletService(store)
	rewardService := service.NewRewardService(taskService, walletService, ads, cfg.RewardPerTask)

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(config.RateLimitPerChat),
			middleware.UserLoader(profileService),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	notifier := telegram.NewAdminNotifier(b, cfg.AdminID)
	withdrawService := service.NewWithdrawService(store, walletService, notifier, cfg.MinWithdraw)

	// Initialize handler
	h := handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Profiles:    profileService,
		Tasks:       taskService,
		Wallet:      walletService,
		Rewards:     rewardService,
		Withdraws:   withdrawService,
		BotUsername: me.Username,
	})

	// Register all handlers
	h.Register()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
