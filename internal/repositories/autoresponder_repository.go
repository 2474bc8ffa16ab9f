package repositories

import (
	"errors"

	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateTrigger is returned when another rule already uses the trigger, in any case.
var ErrDuplicateTrigger = errors.New("duplicate trigger")

type AutoresponderRepository interface {
	Create(db *gorm.DB, rule *models.AutoresponderRule) error
	FindAll(db *gorm.DB) ([]models.AutoresponderRule, error)
	ExistsByTrigger(db *gorm.DB, trigger string) (bool, error)
}

type AutoresponderRepositoryImpl struct{}

func NewAutoresponderRepository() AutoresponderRepository {
	return &AutoresponderRepositoryImpl{}
}

// Create relies on the unique trigger_key index; a lost race surfaces as ErrDuplicateTrigger.
func (r *AutoresponderRepositoryImpl) Create(db *gorm.DB, rule *models.AutoresponderRule) error {
	err := db.Create(rule).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateTrigger
	}
	return err
}

func (r *AutoresponderRepositoryImpl) FindAll(db *gorm.DB) ([]models.AutoresponderRule, error) {
	var rules []models.AutoresponderRule
	err := db.Order("created_at DESC").Order("id DESC").Find(&rules).Error
	return rules, err
}

// ExistsByTrigger matches case-insensitively.
func (r *AutoresponderRepositoryImpl) ExistsByTrigger(db *gorm.DB, trigger string) (bool, error) {
	var count int64
	err := db.Model(&models.AutoresponderRule{}).
		Where("trigger_key = ?", models.TriggerKeyFor(trigger)).
		Count(&count).Error
	return count > 0, err
}
