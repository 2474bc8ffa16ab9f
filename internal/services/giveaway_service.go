package services

import (
	"context"
	"time"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"gorm.io/gorm"
)

var giveawaySchema = validator.NewSchema(
	validator.String("title").Required(),
	validator.String("prize").Required(),
	validator.Time("end_time").Required(),
	validator.Int("winners_count").Min(1).Default(1),
	validator.String("description"),
	validator.String("channel_id"),
)

type GiveawayService interface {
	CreateGiveaway(ctx context.Context, db *gorm.DB, hostID string, input map[string]interface{}) (*dto.CreateGiveawayResponse, error)
	ListActive(ctx context.Context, db *gorm.DB) ([]models.Giveaway, error)
}

type giveawayService struct {
	giveawayRepo repositories.GiveawayRepository
	validator    *validator.Validator
	now          func() time.Time
}

func NewGiveawayService(giveawayRepo repositories.GiveawayRepository, v *validator.Validator) GiveawayService {
	return &giveawayService{
		giveawayRepo: giveawayRepo,
		validator:    v,
		now:          time.Now,
	}
}

func (s *giveawayService) CreateGiveaway(ctx context.Context, db *gorm.DB, hostID string, input map[string]interface{}) (*dto.CreateGiveawayResponse, error) {
	values, err := giveawaySchema.Validate(input)
	if err != nil {
		return nil, inputError(err)
	}

	req := dto.CreateGiveawayRequest{
		Title:        values.String("title"),
		Description:  values.String("description"),
		Prize:        values.String("prize"),
		WinnersCount: values.Int("winners_count"),
		EndTime:      values.Time("end_time"),
		ChannelID:    values.String("channel_id"),
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, inputError(err)
	}
	if !req.EndTime.After(s.now()) {
		return nil, apperrors.NewValidationMessage("end_time must be in the future")
	}

	giveaway := &models.Giveaway{
		Title:        req.Title,
		Description:  req.Description,
		Prize:        req.Prize,
		WinnersCount: req.WinnersCount,
		EndTime:      req.EndTime.UTC(),
		ChannelID:    req.ChannelID,
		HostID:       hostID,
		Status:       models.GiveawayStatusActive,
	}
	if err := s.giveawayRepo.Create(db, giveaway); err != nil {
		return nil, storeError(ctx, "create giveaway", err)
	}

	logger.CtxInfo(ctx, "Giveaway created", "giveaway_id", giveaway.ID, "ends_at", giveaway.EndTime)
	return &dto.CreateGiveawayResponse{Success: true, GiveawayID: giveaway.ID}, nil
}

func (s *giveawayService) ListActive(ctx context.Context, db *gorm.DB) ([]models.Giveaway, error) {
	giveaways, err := s.giveawayRepo.FindActive(db)
	if err != nil {
		return nil, storeError(ctx, "list giveaways", err)
	}
	return giveaways, nil
}
