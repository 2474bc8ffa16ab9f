package repositories

import (
	"errors"

	"iceai_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Upsert(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	SetVerified(db *gorm.DB, id, code string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// Upsert inserts the user or refreshes its profile fields. verified and created_at survive re-login.
func (r *UserRepositoryImpl) Upsert(db *gorm.DB, user *models.User) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "avatar", "discriminator", "updated_at"}),
	}).Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) SetVerified(db *gorm.DB, id, code string) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verified":          true,
		"verification_code": code,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
