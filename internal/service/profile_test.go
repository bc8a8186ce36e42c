package service

import (
	"context"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/set-night/farmtap/internal/domain"
	"github.com/set-night/farmtap/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateGuestFallback(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	svc := NewProfileService(store)

	p := svc.FindOrCreate(ctx, nil)
	assert.Equal(t, "guest", p.ID)
	assert.Equal(t, "Guest", p.FullName())

	// Persisted so the guest identity survives a restart.
	stored := &domain.Profile{}
	require.True(t, store.Get(ctx, profileKey("guest"), stored))
	assert.Equal(t, "guest", stored.ID)
}

func TestFindOrCreateFromPlatformUser(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	svc := NewProfileService(store)

	p := svc.FindOrCreate(ctx, &models.User{
		ID:        777,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
	})
	assert.Equal(t, "777", p.ID)
	assert.Equal(t, "Ada Lovelace", p.FullName())
	assert.Equal(t, "@ada", p.Handle())

	stored := &domain.Profile{}
	require.True(t, store.Get(ctx, profileKey("777"), stored))
	assert.Equal(t, "ada", stored.Username)
}

func TestFindOrCreateEmptyFirstName(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(repository.NewMemStore())

	p := svc.FindOrCreate(ctx, &models.User{ID: 5})
	assert.Equal(t, "User", p.FirstName)
	assert.Equal(t, "no username", p.Handle())
}

func TestReferralLink(t *testing.T) {
	svc := NewProfileService(repository.NewMemStore())
	link := svc.ReferralLink("farmtap_bot", &domain.Profile{ID: "777"})
	assert.Equal(t, "https://t.me/farmtap_bot?start=777", link)
}
