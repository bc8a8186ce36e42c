package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/middleware"
	"github.com/set-night/farmtap/internal/service"
	tg "github.com/set-night/farmtap/internal/telegram"
)

func (h *Handler) handleEarn(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.runEarn(ctx, b, update.Message.Chat.ID)
}

func (h *Handler) handleEarnNow(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}
	h.runEarn(ctx, b, msg.Chat.ID)
}

func (h *Handler) runEarn(ctx context.Context, b *bot.Bot, chatID int64) {
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	// Progress feedback while the ad runs; not a state transition.
	loading, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "📺 Loading ad...",
	})
	if err != nil {
		slog.Error("send loading message", "error", err)
	}

	reward, earnErr := h.rewards.AttemptEarn(ctx, user.ID)

	text := ""
	switch {
	case earnErr == nil:
		remaining := h.tasks.Remaining(ctx, user.ID)
		text = fmt.Sprintf("✅ + $%s added!\n\n💰 Balance: $%s\n📋 Tasks left today: %d",
			reward.StringFixed(3),
			service.FormatUSD(h.wallet.Balance(ctx, user.ID)),
			remaining,
		)
	case errors.Is(earnErr, domain.ErrDailyLimitReached):
		text = "🛑 Daily limit reached. Come back tomorrow."
	case errors.Is(earnErr, domain.ErrEarnInFlight):
		text = "⏳ An ad is already running. Finish it first."
	default:
		text = "⚠️ Ad failed. Try again."
	}

	if loading != nil {
		_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: loading.ID,
			Text:      text,
			ReplyMarkup: tg.InlineKeyboard(
				tg.ButtonRow(tg.InlineButton("▶️ Earn again", "earn_now")),
			),
		})
		if err == nil {
			return
		}
	}
	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
}
