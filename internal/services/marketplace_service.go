package services

import (
	"context"
	"strings"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MarketplaceListLimit caps the public listing query.
const MarketplaceListLimit = 100

var listingSchema = validator.NewSchema(
	validator.String("title").Required(),
	validator.String("rank").Required(),
	validator.Int("level").Required().NonNegative(),
	validator.Float("price").Required().NonNegative(),
	validator.Int("operators").NonNegative(),
	validator.Int("renown").NonNegative(),
	validator.Int("credits").NonNegative(),
	validator.String("description"),
)

type MarketplaceService interface {
	CreateListing(ctx context.Context, db *gorm.DB, sellerID string, input map[string]interface{}) (*dto.CreateListingResponse, error)
	GetAvailableListings(ctx context.Context, db *gorm.DB) ([]models.Account, error)
}

type marketplaceService struct {
	accountRepo repositories.AccountRepository
	validator   *validator.Validator
}

func NewMarketplaceService(accountRepo repositories.AccountRepository, v *validator.Validator) MarketplaceService {
	return &marketplaceService{
		accountRepo: accountRepo,
		validator:   v,
	}
}

func (s *marketplaceService) CreateListing(ctx context.Context, db *gorm.DB, sellerID string, input map[string]interface{}) (*dto.CreateListingResponse, error) {
	values, err := listingSchema.Validate(input)
	if err != nil {
		return nil, inputError(err)
	}

	images, err := imageList(input["images"])
	if err != nil {
		return nil, err
	}

	req := dto.CreateListingRequest{
		Title:       values.String("title"),
		Rank:        values.String("rank"),
		Level:       values.Int("level"),
		Operators:   values.Int("operators"),
		Renown:      values.Int("renown"),
		Credits:     values.Int("credits"),
		Price:       values.Float("price"),
		Description: values.String("description"),
		Images:      images,
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, inputError(err)
	}

	account := &models.Account{
		SellerID:       sellerID,
		Title:          req.Title,
		Rank:           req.Rank,
		Level:          req.Level,
		OperatorsCount: req.Operators,
		Renown:         req.Renown,
		R6Credits:      req.Credits,
		Price:          req.Price,
		Description:    req.Description,
		Status:         models.AccountStatusAvailable,
		Images:         datatypes.JSONSlice[string](req.Images),
	}
	if err := s.accountRepo.Create(db, account); err != nil {
		return nil, storeError(ctx, "create listing", err)
	}

	logger.CtxInfo(ctx, "Listing created", "listing_id", account.ID, "price", account.Price)
	return &dto.CreateListingResponse{Success: true, ListingID: account.ID}, nil
}

func (s *marketplaceService) GetAvailableListings(ctx context.Context, db *gorm.DB) ([]models.Account, error) {
	accounts, err := s.accountRepo.FindAvailable(db, MarketplaceListLimit)
	if err != nil {
		return nil, storeError(ctx, "list listings", err)
	}
	return accounts, nil
}

// imageList accepts a missing field or a JSON array of strings.
func imageList(raw interface{}) ([]string, error) {
	if raw == nil {
		return []string{}, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, apperrors.ValidationError([]string{"images must be a list of URLs"})
	}

	images := make([]string, 0, len(items))
	for _, item := range items {
		url, ok := item.(string)
		if !ok || strings.TrimSpace(url) == "" {
			return nil, apperrors.ValidationError([]string{"images must be a list of URLs"})
		}
		images = append(images, strings.TrimSpace(url))
	}
	return images, nil
}
