package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type WebhookLogRepository interface {
	Create(db *gorm.DB, entry *models.WebhookLog) error
	FindBySource(db *gorm.DB, source string) ([]models.WebhookLog, error)
}

type WebhookLogRepositoryImpl struct{}

func NewWebhookLogRepository() WebhookLogRepository {
	return &WebhookLogRepositoryImpl{}
}

func (r *WebhookLogRepositoryImpl) Create(db *gorm.DB, entry *models.WebhookLog) error {
	return db.Create(entry).Error
}

func (r *WebhookLogRepositoryImpl) FindBySource(db *gorm.DB, source string) ([]models.WebhookLog, error) {
	var entries []models.WebhookLog
	err := db.Where("source = ?", source).Order("id ASC").Find(&entries).Error
	return entries, err
}
