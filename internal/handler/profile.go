package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/middleware"
	"github.com/set-night/farmtap/internal/service"
)

func (h *Handler) handleBalance(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: fmt.Sprintf("💰 Balance: $%s\n📋 Tasks left today: %d of %d",
			service.FormatUSD(h.wallet.Balance(ctx, user.ID)),
			h.tasks.Remaining(ctx, user.ID),
			h.tasks.PerDay(),
		),
	})
}

func (h *Handler) handleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	username := user.Username
	if username == "" {
		username = "—"
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: fmt.Sprintf(
			"👤 %s\nUsername: %s\nID: %s\n\n💰 Balance: $%s\n✅ Completed today: %d of %d",
			user.FullName(), username, user.ID,
			service.FormatUSD(h.wallet.Balance(ctx, user.ID)),
			h.tasks.Completed(ctx, user.ID),
			h.tasks.PerDay(),
		),
	})
}

func (h *Handler) handleReferral(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	link := h.profiles.ReferralLink(h.botUsername, user)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   fmt.Sprintf("🔗 Your invite link:\n%s", link),
	})
}
