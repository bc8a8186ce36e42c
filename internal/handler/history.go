package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/config"
	"github.com/set-night/farmtap/internal/middleware"
	tg "github.com/set-night/farmtap/internal/telegram"
)

func (h *Handler) handleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.showHistory(ctx, b, update.Message.Chat.ID, 0, 0)
}

func (h *Handler) handleHistoryPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	page, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "hist_page_"))
	if err != nil || page < 0 {
		return
	}
	h.showHistory(ctx, b, msg.Chat.ID, page, msg.ID)
}

// showHistory renders one page of withdrawal records, most recent
// first. editMessageID zero means send a fresh message.
func (h *Handler) showHistory(ctx context.Context, b *bot.Bot, chatID int64, page, editMessageID int) {
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	history := h.withdraws.History(ctx, user.ID)
	if len(history) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "📜 No withdrawals yet.",
		})
		return
	}

	totalPages := (len(history) + config.HistoryPerPage - 1) / config.HistoryPerPage
	if page >= totalPages {
		page = totalPages - 1
	}
	start := page * config.HistoryPerPage
	end := start + config.HistoryPerPage
	if end > len(history) {
		end = len(history)
	}

	var sb strings.Builder
	sb.WriteString("📜 Withdrawal history\n\n")
	for _, rec := range history[start:end] {
		sb.WriteString(fmt.Sprintf("• %s — $%s — %s\n  %s — %s\n",
			rec.Method, rec.Amount, rec.Address, rec.Time, rec.Status))
	}

	markup := tg.InlineKeyboard(tg.PaginationRow(page, totalPages, "hist_page"))

	if editMessageID != 0 {
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   editMessageID,
			Text:        sb.String(),
			ReplyMarkup: markup,
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        sb.String(),
		ReplyMarkup: markup,
	})
}
