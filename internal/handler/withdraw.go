package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/config"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/middleware"
	"github.com/set-night/farmtap/internal/service"
	tg "github.com/set-night/farmtap/internal/telegram"
)

func (h *Handler) handleWithdraw(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := update.Message.Chat.ID
	fields := strings.Fields(update.Message.Text)

	// Bare /withdraw shows the method menu and usage.
	if len(fields) < 4 {
		h.showWithdrawMenu(ctx, b, chatID, user.ID)
		return
	}

	method, address, amount := fields[1], fields[2], fields[3]

	rec, err := h.withdraws.Submit(ctx, user, method, address, amount)

	text := ""
	switch {
	case err == nil:
		text = fmt.Sprintf(
			"✅ Request sent to admin. You'll be paid soon.\n\n"+
				"Method: %s\nAddress: %s\nAmount: $%s\n\n💰 Balance: $%s",
			rec.Method, rec.Address, rec.Amount,
			service.FormatUSD(h.wallet.Balance(ctx, user.ID)),
		)
	case errors.Is(err, domain.ErrBelowMinimum):
		text = fmt.Sprintf("Minimum withdrawal is $%s.", service.FormatUSD(h.withdraws.Min()))
	case errors.Is(err, domain.ErrInsufficientBalance):
		text = "Insufficient balance."
	case errors.Is(err, domain.ErrInvalidAddress):
		text = "Enter a valid address/account."
	default:
		text = "⚠️ Something went wrong. Try again."
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
}

func (h *Handler) handleWithdrawMethod(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	method := strings.TrimPrefix(update.CallbackQuery.Data, "wd_method_")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf(
			"Send your request as:\n\n/withdraw %s <address> <amount>\n\nExample: /withdraw %s addr1 %s",
			method, method, service.FormatUSD(h.withdraws.Min()),
		),
	})
}

func (h *Handler) showWithdrawMenu(ctx context.Context, b *bot.Bot, chatID int64, userID string) {
	var rows [][]models.InlineKeyboardButton
	for _, m := range config.WithdrawMethods {
		rows = append(rows, tg.ButtonRow(tg.InlineButton(m, "wd_method_"+m)))
	}

	var sb strings.Builder
	sb.WriteString("💸 Withdrawal\n\n")
	sb.WriteString(fmt.Sprintf("💰 Balance: $%s\n", service.FormatUSD(h.wallet.Balance(ctx, userID))))
	sb.WriteString(fmt.Sprintf("Minimum: $%s\n\n", service.FormatUSD(h.withdraws.Min())))
	sb.WriteString("Pick a method:")

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        sb.String(),
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
}
