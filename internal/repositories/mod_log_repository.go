package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type ModLogRepository interface {
	Create(db *gorm.DB, entry *models.ModLog) error
	FindRecent(db *gorm.DB, limit int) ([]models.ModLog, error)
}

type ModLogRepositoryImpl struct{}

func NewModLogRepository() ModLogRepository {
	return &ModLogRepositoryImpl{}
}

func (r *ModLogRepositoryImpl) Create(db *gorm.DB, entry *models.ModLog) error {
	return db.Create(entry).Error
}

func (r *ModLogRepositoryImpl) FindRecent(db *gorm.DB, limit int) ([]models.ModLog, error) {
	var entries []models.ModLog
	err := db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
