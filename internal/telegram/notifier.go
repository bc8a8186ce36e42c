package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/set-night/farmtap/internal/config"
)

// AdminNotifier delivers operator messages to the admin chat. Delivery
// is best effort: errors are logged and swallowed, the caller never
// learns whether the message arrived.
type AdminNotifier struct {
	bot    *bot.Bot
	chatID int64
}

func NewAdminNotifier(b *bot.Bot, chatID int64) *AdminNotifier {
	return &AdminNotifier{bot: b, chatID: chatID}
}

func (n *AdminNotifier) Notify(ctx context.Context, text string) {
	if n.chatID == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.NotifyTimeout)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		slog.Error("failed to notify admin", "error", err)
	}
}
