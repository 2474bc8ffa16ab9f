package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"iceai_backend/internal/repositories"
	"iceai_backend/internal/testhelpers"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var giveawayClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newGiveawayService() GiveawayService {
	return &giveawayService{
		giveawayRepo: repositories.NewGiveawayRepository(),
		validator:    validator.New(),
		now:          func() time.Time { return giveawayClock },
	}
}

func TestGiveawayService_Create(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newGiveawayService()
	ctx := context.Background()

	res, err := svc.CreateGiveaway(ctx, db, "7", map[string]interface{}{
		"title": "Spring drop", "prize": "Champion account",
		"end_time": giveawayClock.Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.NotZero(t, res.GiveawayID)

	active, err := svc.ListActive(ctx, db)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].WinnersCount)
	assert.Equal(t, "7", active[0].HostID)
	assert.True(t, active[0].EndTime.Equal(giveawayClock.Add(48*time.Hour)))
}

func TestGiveawayService_EndTimeInPast(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	_, err := newGiveawayService().CreateGiveaway(context.Background(), db, "7", map[string]interface{}{
		"title": "Late", "prize": "p", "end_time": giveawayClock.Add(-time.Minute).Format(time.RFC3339),
	})
	appErr := requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, "end_time must be in the future", appErr.Message)
}

func TestGiveawayService_BadInput(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newGiveawayService()
	future := giveawayClock.Add(time.Hour).Format(time.RFC3339)

	_, err := svc.CreateGiveaway(context.Background(), db, "7", map[string]interface{}{
		"title": "t", "prize": "p", "end_time": future, "winners_count": 0.0,
	})
	appErr := requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, []string{"winners_count must be at least 1"}, appErr.Details)

	_, err = svc.CreateGiveaway(context.Background(), db, "7", map[string]interface{}{
		"title": "t", "prize": "p", "end_time": "tomorrow",
	})
	appErr = requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, []string{"end_time must be an RFC3339 timestamp"}, appErr.Details)
}
