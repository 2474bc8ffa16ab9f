package services

import (
	"context"
	"encoding/json"
	"errors"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ruleSchema = validator.NewSchema(
	validator.String("trigger").Required(),
	validator.String("response").Required(),
)

type AutoresponderService interface {
	ListRules(ctx context.Context, db *gorm.DB) ([]models.AutoresponderRule, error)
	CreateRule(ctx context.Context, db *gorm.DB, actorID string, input map[string]interface{}) (*dto.CreateRuleResponse, error)
}

type autoresponderService struct {
	ruleRepo  repositories.AutoresponderRepository
	validator *validator.Validator
}

func NewAutoresponderService(ruleRepo repositories.AutoresponderRepository, v *validator.Validator) AutoresponderService {
	return &autoresponderService{
		ruleRepo:  ruleRepo,
		validator: v,
	}
}

func (s *autoresponderService) ListRules(ctx context.Context, db *gorm.DB) ([]models.AutoresponderRule, error) {
	rules, err := s.ruleRepo.FindAll(db)
	if err != nil {
		return nil, storeError(ctx, "list autoresponder rules", err)
	}
	return rules, nil
}

func (s *autoresponderService) CreateRule(ctx context.Context, db *gorm.DB, actorID string, input map[string]interface{}) (*dto.CreateRuleResponse, error) {
	values, err := ruleSchema.Validate(input)
	if err != nil {
		return nil, inputError(err)
	}

	req := dto.CreateRuleRequest{
		Trigger:  values.String("trigger"),
		Response: values.String("response"),
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, inputError(err)
	}

	var problems []string
	embedEnabled, ok := optionalBool(input, "embed_enabled", false)
	if !ok {
		problems = append(problems, "embed_enabled must be a boolean")
	}
	enabled, ok := optionalBool(input, "enabled", true)
	if !ok {
		problems = append(problems, "enabled must be a boolean")
	}

	var embedData datatypes.JSON
	if raw, present := input["embed_data"]; present && raw != nil {
		obj, isObject := raw.(map[string]interface{})
		if !isObject {
			problems = append(problems, "embed_data must be a JSON object")
		} else if encoded, err := json.Marshal(obj); err == nil {
			embedData = datatypes.JSON(encoded)
		}
	}
	if len(problems) > 0 {
		return nil, apperrors.ValidationError(problems)
	}

	exists, err := s.ruleRepo.ExistsByTrigger(db, req.Trigger)
	if err != nil {
		return nil, storeError(ctx, "check trigger", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateTrigger
	}

	rule := &models.AutoresponderRule{
		TriggerPhrase: req.Trigger,
		Response:      req.Response,
		EmbedEnabled:  embedEnabled,
		EmbedData:     embedData,
		Enabled:       enabled,
		CreatedBy:     actorID,
	}
	if err := s.ruleRepo.Create(db, rule); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTrigger) {
			return nil, apperrors.ErrDuplicateTrigger
		}
		return nil, storeError(ctx, "create autoresponder rule", err)
	}

	logger.CtxInfo(ctx, "Autoresponder rule created", "rule_id", rule.ID)
	return &dto.CreateRuleResponse{Success: true, RuleID: rule.ID}, nil
}

func optionalBool(input map[string]interface{}, name string, def bool) (bool, bool) {
	raw, present := input[name]
	if !present || raw == nil {
		return def, true
	}
	b, ok := raw.(bool)
	return b, ok
}
