package services

import (
	"context"
	"net/http"
	"testing"

	"iceai_backend/internal/auth"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/testhelpers"
	"iceai_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_test"

func TestWebhookService_ValidSignature(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewWebhookService(repositories.NewWebhookLogRepository(), webhookSecret)
	body := []byte(`{"x":1}`)

	err := svc.HandleSellhub(context.Background(), db, body, auth.Sign([]byte(webhookSecret), body))
	require.NoError(t, err)

	var logs []models.WebhookLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, SellhubSource, logs[0].Source)
	assert.Equal(t, `{"x":1}`, logs[0].Payload)
}

func TestWebhookService_TamperedBody(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewWebhookService(repositories.NewWebhookLogRepository(), webhookSecret)
	signature := auth.Sign([]byte(webhookSecret), []byte(`{"x":1}`))

	err := svc.HandleSellhub(context.Background(), db, []byte(`{"x":2}`), signature)
	requireAppError(t, err, apperrors.CodeInvalidSignature, http.StatusUnauthorized)

	var count int64
	db.Model(&models.WebhookLog{}).Count(&count)
	assert.Zero(t, count)
}

func TestWebhookService_MissingSignatureOrSecret(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	body := []byte(`{"x":1}`)

	err := NewWebhookService(repositories.NewWebhookLogRepository(), webhookSecret).
		HandleSellhub(context.Background(), db, body, "")
	requireAppError(t, err, apperrors.CodeUnauthorized, http.StatusUnauthorized)

	err = NewWebhookService(repositories.NewWebhookLogRepository(), "").
		HandleSellhub(context.Background(), db, body, auth.Sign([]byte(""), body))
	requireAppError(t, err, apperrors.CodeUnauthorized, http.StatusUnauthorized)
}
