package services

import (
	"context"
	"net/http"
	"testing"

	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/testhelpers"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAutoresponderService() AutoresponderService {
	return NewAutoresponderService(repositories.NewAutoresponderRepository(), validator.New())
}

func TestAutoresponderService_CreateRule(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newAutoresponderService()
	ctx := context.Background()

	res, err := svc.CreateRule(ctx, db, "7", map[string]interface{}{
		"trigger": "price check", "response": "See #prices",
		"embed_enabled": true, "embed_data": map[string]interface{}{"color": 16711680.0},
	})
	require.NoError(t, err)
	assert.NotZero(t, res.RuleID)

	rules, err := svc.ListRules(ctx, db)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Enabled)
	assert.True(t, rules[0].EmbedEnabled)
	assert.JSONEq(t, `{"color":16711680}`, string(rules[0].EmbedData))
	assert.Equal(t, "7", rules[0].CreatedBy)
}

func TestAutoresponderService_DisabledRule(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newAutoresponderService()
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, db, "7", map[string]interface{}{"trigger": "hi", "response": "hello", "enabled": false})
	require.NoError(t, err)

	rules, err := svc.ListRules(ctx, db)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.False(t, rules[0].Enabled)
}

func TestAutoresponderService_DuplicateTriggerIgnoresCase(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newAutoresponderService()
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, db, "7", map[string]interface{}{"trigger": "Price Check", "response": "a"})
	require.NoError(t, err)

	_, err = svc.CreateRule(ctx, db, "8", map[string]interface{}{"trigger": "price check", "response": "b"})
	requireAppError(t, err, apperrors.CodeConflict, http.StatusConflict)

	rules, err := svc.ListRules(ctx, db)
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}

// staleTriggerCheck reports every trigger as free, as a concurrent create would see it.
type staleTriggerCheck struct {
	repositories.AutoresponderRepository
}

func (staleTriggerCheck) ExistsByTrigger(db *gorm.DB, trigger string) (bool, error) {
	return false, nil
}

func TestAutoresponderService_UniqueIndexBacksTriggerCheck(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewAutoresponderService(staleTriggerCheck{repositories.NewAutoresponderRepository()}, validator.New())
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, db, "7", map[string]interface{}{"trigger": "Price Check", "response": "a"})
	require.NoError(t, err)

	_, err = svc.CreateRule(ctx, db, "8", map[string]interface{}{"trigger": "  PRICE CHECK ", "response": "b"})
	requireAppError(t, err, apperrors.CodeConflict, http.StatusConflict)

	var count int64
	require.NoError(t, db.Model(&models.AutoresponderRule{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAutoresponderService_Validation(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := newAutoresponderService()
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, db, "7", map[string]interface{}{"response": "a"})
	appErr := requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, []string{"trigger is required"}, appErr.Details)

	_, err = svc.CreateRule(ctx, db, "7", map[string]interface{}{
		"trigger": "x", "response": "a", "enabled": "yes", "embed_data": []interface{}{1.0},
	})
	appErr = requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	assert.Equal(t, []string{"enabled must be a boolean", "embed_data must be a JSON object"}, appErr.Details)
}
