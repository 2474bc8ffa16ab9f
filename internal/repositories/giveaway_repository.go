package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type GiveawayRepository interface {
	Create(db *gorm.DB, giveaway *models.Giveaway) error
	FindActive(db *gorm.DB) ([]models.Giveaway, error)
}

type GiveawayRepositoryImpl struct{}

func NewGiveawayRepository() GiveawayRepository {
	return &GiveawayRepositoryImpl{}
}

func (r *GiveawayRepositoryImpl) Create(db *gorm.DB, giveaway *models.Giveaway) error {
	return db.Create(giveaway).Error
}

func (r *GiveawayRepositoryImpl) FindActive(db *gorm.DB) ([]models.Giveaway, error) {
	var giveaways []models.Giveaway
	err := db.Where("status = ?", models.GiveawayStatusActive).
		Order("created_at DESC").Order("id DESC").
		Find(&giveaways).Error
	return giveaways, err
}
