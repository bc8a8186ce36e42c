package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type minuteWindow struct {
	start time.Time
	count int
}

// RateLimit returns middleware that enforces a per-chat per-minute cap
// on incoming messages. Counters live in memory; a restart clears them,
// which is acceptable for an abuse brake.
func RateLimit(perMinute int) bot.Middleware {
	var mu sync.Mutex
	windows := make(map[int64]*minuteWindow)

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Only rate limit messages (not callbacks or other updates)
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			now := time.Now()

			mu.Lock()
			w, ok := windows[chatID]
			if !ok || now.Sub(w.start) >= time.Minute {
				w = &minuteWindow{start: now}
				windows[chatID] = w
			}
			w.count++
			count := w.count
			mu.Unlock()

			if count > perMinute {
				slog.Debug("rate limited", "chat_id", chatID, "count", count, "limit", perMinute)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many requests. Please wait a bit.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
