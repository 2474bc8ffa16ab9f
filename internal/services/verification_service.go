package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VerificationService interface {
	Verify(ctx context.Context, db *gorm.DB, userID, code string) (*dto.VerificationStatus, error)
	Status(ctx context.Context, db *gorm.DB, userID string) (*dto.VerificationStatus, error)
}

type verificationService struct {
	userRepo repositories.UserRepository
	code     string
}

// NewVerificationService checks submissions against code. An empty code disables verification.
func NewVerificationService(userRepo repositories.UserRepository, code string) VerificationService {
	return &verificationService{
		userRepo: userRepo,
		code:     strings.TrimSpace(code),
	}
}

func (s *verificationService) Verify(ctx context.Context, db *gorm.DB, userID, code string) (*dto.VerificationStatus, error) {
	if s.code == "" {
		return nil, apperrors.ErrVerificationDisabled
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.ValidationError([]string{"code is required"})
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.code)) != 1 {
		logger.CtxWarn(ctx, "Verification code mismatch")
		return nil, apperrors.ErrInvalidVerificationCode
	}

	if err := s.userRepo.SetVerified(db, userID, code); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, storeError(ctx, "set verified", err)
	}

	logger.CtxInfo(ctx, "User verified")
	return &dto.VerificationStatus{Verified: true}, nil
}

func (s *verificationService) Status(ctx context.Context, db *gorm.DB, userID string) (*dto.VerificationStatus, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return &dto.VerificationStatus{Verified: false}, nil
		}
		return nil, storeError(ctx, "find user", err)
	}
	return &dto.VerificationStatus{Verified: user.Verified}, nil
}
