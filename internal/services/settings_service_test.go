package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/testhelpers"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService() SettingsService {
	return NewSettingsService(repositories.NewSettingRepository(), repositories.NewModLogRepository(), validator.New())
}

func TestSettingsService_SetGetList(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newSettingsService()
	ctx := context.Background()

	_, err := svc.Set(ctx, db, "7", "general", "welcome", json.RawMessage(`{"channel":"123","text":"hi"}`))
	require.NoError(t, err)
	_, err = svc.Set(ctx, db, "7", "general", "prefix", json.RawMessage(`"!"`))
	require.NoError(t, err)

	got, err := svc.Get(ctx, db, "general", "welcome")
	require.NoError(t, err)
	assert.JSONEq(t, `{"channel":"123","text":"hi"}`, string(got.Value))

	all, err := svc.List(ctx, db, "general")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.JSONEq(t, `"!"`, string(all["prefix"]))

	empty, err := svc.List(ctx, db, "tickets")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSettingsService_SetOverwrites(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newSettingsService()
	ctx := context.Background()

	_, err := svc.Set(ctx, db, "7", "general", "prefix", json.RawMessage(`"!"`))
	require.NoError(t, err)
	_, err = svc.Set(ctx, db, "8", "general", "prefix", json.RawMessage(`"?"`))
	require.NoError(t, err)

	var rows []models.Setting
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.JSONEq(t, `"?"`, string(rows[0].Value))
	assert.Equal(t, "8", rows[0].UpdatedBy)
}

func TestSettingsService_Validation(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newSettingsService()
	ctx := context.Background()

	_, err := svc.Set(ctx, db, "7", "general", "prefix", json.RawMessage(`{broken`))
	appErr := requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, "value must be valid JSON", appErr.Message)

	_, err = svc.Set(ctx, db, "7", "general", "prefix", nil)
	appErr = requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, "value is required", appErr.Message)

	_, err = svc.Set(ctx, db, "7", "General Settings", "prefix", json.RawMessage(`1`))
	requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)

	_, err = svc.Get(ctx, db, "general", "")
	appErr = requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, "key is required", appErr.Message)
}

func TestSettingsService_GetMissing(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	_, err := newSettingsService().Get(context.Background(), db, "general", "nope")
	appErr := requireAppError(t, err, apperrors.CodeNotFound, http.StatusNotFound)
	assert.Equal(t, "Setting not found", appErr.Message)
}

func TestSettingsService_ModerationWritesAudit(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newSettingsService()
	ctx := context.Background()

	_, err := svc.Set(ctx, db, "7", "general", "prefix", json.RawMessage(`"!"`))
	require.NoError(t, err)
	_, err = svc.Set(ctx, db, "7", ModerationCategory, "automod", json.RawMessage(`{"enabled":true}`))
	require.NoError(t, err)

	logs, err := svc.RecentModLogs(ctx, db, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "7", logs[0].ModeratorID)
	assert.Equal(t, "settings.update", logs[0].Action)
	assert.Equal(t, "moderation/automod", logs[0].Target)
	assert.Equal(t, `{"enabled":true}`, logs[0].Details)
}
