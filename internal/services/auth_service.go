package services

import (
	"context"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/pkg/apperrors"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityProvider is the OAuth2 side of the login flow (Discord in production).
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*discordgo.User, error)
}

type AuthService interface {
	// BeginLogin returns the authorize URL and the state the callback must echo.
	BeginLogin() (url string, state string)
	CompleteLogin(ctx context.Context, db *gorm.DB, code string) (*models.User, error)
}

type authService struct {
	provider IdentityProvider
	userRepo repositories.UserRepository
}

func NewAuthService(provider IdentityProvider, userRepo repositories.UserRepository) AuthService {
	return &authService{
		provider: provider,
		userRepo: userRepo,
	}
}

func (s *authService) BeginLogin() (string, string) {
	state := uuid.NewString()
	return s.provider.AuthCodeURL(state), state
}

// CompleteLogin exchanges the code, fetches the profile and upserts the local user.
// Provider failures never leak: they come back as a generic AuthError.
func (s *authService) CompleteLogin(ctx context.Context, db *gorm.DB, code string) (*models.User, error) {
	token, err := s.provider.Exchange(ctx, code)
	if err != nil {
		logger.CtxWithError(ctx, "Discord token exchange failed", err)
		return nil, apperrors.AuthError(err, "Authentication failed: could not exchange code")
	}

	profile, err := s.provider.FetchProfile(ctx, token)
	if err != nil {
		logger.CtxWithError(ctx, "Discord profile fetch failed", err)
		return nil, apperrors.AuthError(err, "Authentication failed: could not fetch profile")
	}
	if profile == nil || profile.ID == "" || profile.Username == "" {
		logger.CtxWarn(ctx, "Discord profile is missing id or username")
		return nil, apperrors.AuthError(nil, "Authentication failed: invalid profile")
	}

	discriminator := profile.Discriminator
	if discriminator == "" {
		discriminator = "0000"
	}

	user := &models.User{
		ID:            profile.ID,
		Username:      profile.Username,
		Avatar:        profile.Avatar,
		Discriminator: discriminator,
	}
	if err := s.userRepo.Upsert(db, user); err != nil {
		return nil, storeError(ctx, "upsert user", err)
	}

	logger.CtxInfo(ctx, "User logged in", "user_id", user.ID, "username", user.Username)
	return user, nil
}
