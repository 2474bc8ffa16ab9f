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
)

func newMarketplaceService() MarketplaceService {
	return NewMarketplaceService(repositories.NewAccountRepository(), validator.New())
}

func listingInput(overrides map[string]interface{}) map[string]interface{} {
	in := map[string]interface{}{
		"title": "Diamond account", "rank": "Diamond", "level": 150.0, "price": 49.99,
		"operators": 60.0, "renown": 120000.0, "credits": 600.0,
	}
	for k, v := range overrides {
		in[k] = v
	}
	return in
}

func TestMarketplaceService_CreateListing(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.CreateUser(t, db, "7", "alice")

	res, err := newMarketplaceService().CreateListing(context.Background(), db, "7", listingInput(map[string]interface{}{
		"images": []interface{}{"https://cdn.example.com/a.png", "/files/listings/7/b.png"},
	}))
	require.NoError(t, err)
	assert.True(t, res.Success)

	var stored models.Account
	require.NoError(t, db.First(&stored, res.ListingID).Error)
	assert.Equal(t, models.AccountStatusAvailable, stored.Status)
	assert.Equal(t, 60, stored.OperatorsCount)
	assert.Equal(t, 600, stored.R6Credits)
	assert.Equal(t, []string{"https://cdn.example.com/a.png", "/files/listings/7/b.png"}, []string(stored.Images))
}

func TestMarketplaceService_NegativeValuesRejected(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.CreateUser(t, db, "7", "alice")
	svc := newMarketplaceService()

	cases := map[string]string{
		"level":     "level must not be negative",
		"price":     "price must not be negative",
		"operators": "operators must not be negative",
		"renown":    "renown must not be negative",
		"credits":   "credits must not be negative",
	}
	for field, msg := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := svc.CreateListing(context.Background(), db, "7", listingInput(map[string]interface{}{field: -1.0}))
			appErr := requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
			assert.Equal(t, []string{msg}, appErr.Details)
		})
	}
}

func TestMarketplaceService_ZeroValuesAccepted(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.CreateUser(t, db, "7", "alice")

	_, err := newMarketplaceService().CreateListing(context.Background(), db, "7", listingInput(map[string]interface{}{
		"level": 0.0, "price": 0.0, "operators": 0.0, "renown": 0.0, "credits": 0.0,
	}))
	assert.NoError(t, err)
}

func TestMarketplaceService_BadImages(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.CreateUser(t, db, "7", "alice")
	svc := newMarketplaceService()

	_, err := svc.CreateListing(context.Background(), db, "7", listingInput(map[string]interface{}{"images": "not-a-list"}))
	requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)

	_, err = svc.CreateListing(context.Background(), db, "7", listingInput(map[string]interface{}{"images": []interface{}{"nope"}}))
	requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
}

func TestMarketplaceService_OnlyAvailableListed(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.CreateUser(t, db, "7", "alice")
	svc := newMarketplaceService()
	ctx := context.Background()

	first, err := svc.CreateListing(ctx, db, "7", listingInput(map[string]interface{}{"title": "first"}))
	require.NoError(t, err)
	_, err = svc.CreateListing(ctx, db, "7", listingInput(map[string]interface{}{"title": "second"}))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Account{}).Where("id = ?", first.ListingID).
		Update("status", models.AccountStatusSold).Error)

	listings, err := svc.GetAvailableListings(ctx, db)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "second", listings[0].Title)
}
