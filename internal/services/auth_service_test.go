package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/testhelpers"
	"iceai_backend/pkg/apperrors"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	exchangeErr error
	profileErr  error
	profile     *discordgo.User
	lastState   string
}

func (p *fakeProvider) AuthCodeURL(state string) string {
	p.lastState = state
	return "https://discord.test/authorize?state=" + state
}

func (p *fakeProvider) Exchange(ctx context.Context, code string) (string, error) {
	if p.exchangeErr != nil {
		return "", p.exchangeErr
	}
	return "token-for-" + code, nil
}

func (p *fakeProvider) FetchProfile(ctx context.Context, accessToken string) (*discordgo.User, error) {
	if p.profileErr != nil {
		return nil, p.profileErr
	}
	return p.profile, nil
}

func TestAuthService_BeginLogin(t *testing.T) {
	provider := &fakeProvider{}
	url, state := NewAuthService(provider, repositories.NewUserRepository()).BeginLogin()

	assert.NotEmpty(t, state)
	assert.Equal(t, state, provider.lastState)
	assert.Contains(t, url, state)
}

func TestAuthService_CompleteLoginUpserts(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	provider := &fakeProvider{profile: &discordgo.User{ID: "7", Username: "alice", Avatar: "abc"}}
	svc := NewAuthService(provider, repositories.NewUserRepository())
	ctx := context.Background()

	user, err := svc.CompleteLogin(ctx, db, "code")
	require.NoError(t, err)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "0000", user.Discriminator)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "7").Update("verified", true).Error)

	provider.profile = &discordgo.User{ID: "7", Username: "alice2", Discriminator: "1234"}
	_, err = svc.CompleteLogin(ctx, db, "code")
	require.NoError(t, err)

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "alice2", users[0].Username)
	assert.Equal(t, "1234", users[0].Discriminator)
	assert.True(t, users[0].Verified)
}

func TestAuthService_InvalidProfile(t *testing.T) {
	for name, profile := range map[string]*discordgo.User{
		"missing id":       {Username: "alice"},
		"missing username": {ID: "7"},
		"nil profile":      nil,
	} {
		t.Run(name, func(t *testing.T) {
			db := testhelpers.NewTestDB(t)
			svc := NewAuthService(&fakeProvider{profile: profile}, repositories.NewUserRepository())

			_, err := svc.CompleteLogin(context.Background(), db, "code")
			appErr := requireAppError(t, err, apperrors.CodeAuthFailed, http.StatusUnauthorized)
			assert.Equal(t, "Authentication failed: invalid profile", appErr.Message)

			var count int64
			db.Model(&models.User{}).Count(&count)
			assert.Zero(t, count)
		})
	}
}

func TestAuthService_ProviderFailures(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	_, err := NewAuthService(&fakeProvider{exchangeErr: errors.New("invalid_grant")}, repositories.NewUserRepository()).
		CompleteLogin(ctx, db, "bad")
	appErr := requireAppError(t, err, apperrors.CodeAuthFailed, http.StatusUnauthorized)
	assert.Equal(t, "Authentication failed: could not exchange code", appErr.Message)

	_, err = NewAuthService(&fakeProvider{profileErr: errors.New("401")}, repositories.NewUserRepository()).
		CompleteLogin(ctx, db, "code")
	appErr = requireAppError(t, err, apperrors.CodeAuthFailed, http.StatusUnauthorized)
	assert.Equal(t, "Authentication failed: could not fetch profile", appErr.Message)
}
