package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type InviteRepository interface {
	CountByInviter(db *gorm.DB, inviterID string) (int64, error)
}

type InviteRepositoryImpl struct{}

func NewInviteRepository() InviteRepository {
	return &InviteRepositoryImpl{}
}

func (r *InviteRepositoryImpl) CountByInviter(db *gorm.DB, inviterID string) (int64, error) {
	var count int64
	err := db.Model(&models.Invite{}).Where("inviter_id = ?", inviterID).Count(&count).Error
	return count, err
}
