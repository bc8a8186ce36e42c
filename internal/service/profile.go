package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
)

// ProfileService bootstraps and persists the user identity handed over
// by the host platform. Identity is written once and immutable within a
// session; an update without a user payload maps to the guest profile.
type ProfileService struct {
	store repository.Store
}

func NewProfileService(store repository.Store) *ProfileService {
	return &ProfileService{store: store}
}

// FindOrCreate returns the stored profile for the Telegram user,
// refreshing it from the platform payload, or the guest profile when
// tgUser is nil.
func (s *ProfileService) FindOrCreate(ctx context.Context, tgUser *models.User) *domain.Profile {
	if tgUser == nil {
		p := domain.Guest()
		if !s.store.Get(ctx, profileKey(p.ID), p) {
			s.store.Set(ctx, profileKey(p.ID), p)
		}
		return p
	}

	p := &domain.Profile{
		ID:        strconv.FormatInt(tgUser.ID, 10),
		FirstName: tgUser.FirstName,
		LastName:  tgUser.LastName,
		Username:  tgUser.Username,
	}
	if p.FirstName == "" {
		p.FirstName = "User"
	}
	s.store.Set(ctx, profileKey(p.ID), p)
	return p
}

// ReferralLink builds the user's invite deep link.
func (s *ProfileService) ReferralLink(botUsername string, p *domain.Profile) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, p.ID)
}
