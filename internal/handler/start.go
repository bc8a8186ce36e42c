package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/middleware"
	"github.com/set-night/farmtap/internal/service"
	tg "github.com/set-night/farmtap/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := update.Message.Chat.ID
	remaining := h.tasks.Remaining(ctx, user.ID)
	balance := h.wallet.Balance(ctx, user.ID)

	text := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"Watch ads, earn rewards, withdraw when you hit the minimum.\n\n"+
			"💰 Balance: $%s\n"+
			"✅ Tasks left today: %d of %d\n\n"+
			"Commands:\n"+
			"/earn — Watch an ad and get paid\n"+
			"/balance — Show balance\n"+
			"/withdraw — Request a payout\n"+
			"/history — Withdrawal history\n"+
			"/profile — Your profile\n"+
			"/referral — Invite link",
		user.FullName(), service.FormatUSD(balance), remaining, h.tasks.PerDay(),
	)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyMarkup: tg.InlineKeyboard(
			tg.ButtonRow(tg.InlineButton("▶️ Start earning", "earn_now")),
		),
	})
}

func (h *Handler) handleNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})
}
