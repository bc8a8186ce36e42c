package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/service"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the profile from context.
func GetUser(ctx context.Context) *domain.Profile {
	p, ok := ctx.Value(UserKey).(*domain.Profile)
	if !ok {
		return nil
	}
	return p
}

// UserLoader returns middleware that loads the user profile into
// context. Updates without a user payload get the guest profile, so
// downstream handlers always see an identity.
func UserLoader(profiles *service.ProfileService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User

			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			profile := profiles.FindOrCreate(ctx, from)
			ctx = context.WithValue(ctx, UserKey, profile)

			next(ctx, b, update)
		}
	}
}
