package services

import (
	"context"

	"iceai_backend/internal/auth"
	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SellhubSource tags rows written by the sellhub webhook.
const SellhubSource = "sellhub"

type WebhookService interface {
	// HandleSellhub verifies signature over body and logs the body verbatim.
	HandleSellhub(ctx context.Context, db *gorm.DB, body []byte, signature string) error
}

type webhookService struct {
	logRepo repositories.WebhookLogRepository
	secret  []byte
}

// NewWebhookService uses secret for HMAC checks. An empty secret rejects every call.
func NewWebhookService(logRepo repositories.WebhookLogRepository, secret string) WebhookService {
	return &webhookService{
		logRepo: logRepo,
		secret:  []byte(secret),
	}
}

func (s *webhookService) HandleSellhub(ctx context.Context, db *gorm.DB, body []byte, signature string) error {
	if len(s.secret) == 0 || signature == "" {
		return apperrors.ErrWebhookUnauthorized
	}
	if !auth.VerifySignature(s.secret, body, signature) {
		logger.CtxWarn(ctx, "Webhook signature mismatch", "source", SellhubSource)
		return apperrors.ErrInvalidSignature
	}

	entry := &models.WebhookLog{
		Source:  SellhubSource,
		Payload: string(body),
	}
	if err := s.logRepo.Create(db, entry); err != nil {
		return storeError(ctx, "log webhook", err)
	}

	logger.CtxInfo(ctx, "Webhook received", "source", SellhubSource, "log_id", entry.ID, "size", len(body))
	return nil
}
