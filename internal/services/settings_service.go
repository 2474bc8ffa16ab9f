package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModerationCategory writes are mirrored into mod_logs.
const ModerationCategory = "moderation"

type SettingsService interface {
	Get(ctx context.Context, db *gorm.DB, category, key string) (*dto.SettingResponse, error)
	List(ctx context.Context, db *gorm.DB, category string) (map[string]json.RawMessage, error)
	Set(ctx context.Context, db *gorm.DB, actorID, category, key string, value json.RawMessage) (*dto.SettingResponse, error)
	RecentModLogs(ctx context.Context, db *gorm.DB, limit int) ([]models.ModLog, error)
}

type settingsService struct {
	settingRepo repositories.SettingRepository
	modLogRepo  repositories.ModLogRepository
	validator   *validator.Validator
}

func NewSettingsService(
	settingRepo repositories.SettingRepository,
	modLogRepo repositories.ModLogRepository,
	v *validator.Validator,
) SettingsService {
	return &settingsService{
		settingRepo: settingRepo,
		modLogRepo:  modLogRepo,
		validator:   v,
	}
}

func (s *settingsService) checkNames(category, key string) error {
	if err := s.validator.Validate(dto.SettingNames{Category: category, Key: key}); err != nil {
		return inputError(err)
	}
	return nil
}

func (s *settingsService) Get(ctx context.Context, db *gorm.DB, category, key string) (*dto.SettingResponse, error) {
	if key == "" {
		return nil, apperrors.NewValidationMessage("key is required")
	}
	if err := s.checkNames(category, key); err != nil {
		return nil, err
	}

	setting, err := s.settingRepo.Find(db, category, key)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return nil, apperrors.ErrNotFound(err, "settings", "Setting not found")
		}
		return nil, storeError(ctx, "get setting", err)
	}

	return &dto.SettingResponse{
		Category: setting.Category,
		Key:      setting.Key,
		Value:    json.RawMessage(setting.Value),
	}, nil
}

func (s *settingsService) List(ctx context.Context, db *gorm.DB, category string) (map[string]json.RawMessage, error) {
	if err := s.checkNames(category, ""); err != nil {
		return nil, err
	}

	settings, err := s.settingRepo.FindByCategory(db, category)
	if err != nil {
		return nil, storeError(ctx, "list settings", err)
	}

	values := make(map[string]json.RawMessage, len(settings))
	for _, setting := range settings {
		values[setting.Key] = json.RawMessage(setting.Value)
	}
	return values, nil
}

// Set validates the value as JSON and upserts it.
func (s *settingsService) Set(ctx context.Context, db *gorm.DB, actorID, category, key string, value json.RawMessage) (*dto.SettingResponse, error) {
	if key == "" {
		return nil, apperrors.NewValidationMessage("key is required")
	}
	if err := s.checkNames(category, key); err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, apperrors.NewValidationMessage("value is required")
	}
	if !json.Valid(value) {
		return nil, apperrors.NewValidationMessage("value must be valid JSON")
	}

	setting := &models.Setting{
		Category:  category,
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedBy: actorID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.settingRepo.Upsert(tx, setting); err != nil {
			return err
		}
		if category != ModerationCategory {
			return nil
		}
		return s.modLogRepo.Create(tx, &models.ModLog{
			ModeratorID: actorID,
			Action:      "settings.update",
			Target:      fmt.Sprintf("%s/%s", category, key),
			Details:     string(value),
		})
	})
	if err != nil {
		return nil, storeError(ctx, "set setting", err)
	}

	logger.CtxInfo(ctx, "Setting updated", "category", category, "key", key)
	return &dto.SettingResponse{Category: category, Key: key, Value: value}, nil
}

func (s *settingsService) RecentModLogs(ctx context.Context, db *gorm.DB, limit int) ([]models.ModLog, error) {
	entries, err := s.modLogRepo.FindRecent(db, limit)
	if err != nil {
		return nil, storeError(ctx, "list mod logs", err)
	}
	return entries, nil
}
