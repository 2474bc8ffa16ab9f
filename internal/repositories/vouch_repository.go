package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type VouchRepository interface {
	Create(db *gorm.DB, vouch *models.Vouch) error
	FindByAuthor(db *gorm.DB, userID string) ([]models.Vouch, error)
	FindByTarget(db *gorm.DB, userID string) ([]models.Vouch, error)
	CountByTarget(db *gorm.DB, userID string) (int64, error)
	AverageRatingForTarget(db *gorm.DB, userID string) (float64, error)
}

type VouchRepositoryImpl struct{}

func NewVouchRepository() VouchRepository {
	return &VouchRepositoryImpl{}
}

func (r *VouchRepositoryImpl) Create(db *gorm.DB, vouch *models.Vouch) error {
	return db.Create(vouch).Error
}

func (r *VouchRepositoryImpl) FindByAuthor(db *gorm.DB, userID string) ([]models.Vouch, error) {
	var vouches []models.Vouch
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&vouches).Error
	return vouches, err
}

func (r *VouchRepositoryImpl) FindByTarget(db *gorm.DB, userID string) ([]models.Vouch, error) {
	var vouches []models.Vouch
	err := db.Where("target_user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&vouches).Error
	return vouches, err
}

func (r *VouchRepositoryImpl) CountByTarget(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Vouch{}).Where("target_user_id = ?", userID).Count(&count).Error
	return count, err
}

// AverageRatingForTarget is 0 when the user has no vouches.
func (r *VouchRepositoryImpl) AverageRatingForTarget(db *gorm.DB, userID string) (float64, error) {
	var avg float64
	err := db.Model(&models.Vouch{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("target_user_id = ?", userID).
		Scan(&avg).Error
	return avg, err
}
