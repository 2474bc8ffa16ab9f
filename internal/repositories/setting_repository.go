package repositories

import (
	"errors"

	"iceai_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingRepository interface {
	Find(db *gorm.DB, category, key string) (*models.Setting, error)
	FindByCategory(db *gorm.DB, category string) ([]models.Setting, error)
	Upsert(db *gorm.DB, setting *models.Setting) error
}

type SettingRepositoryImpl struct{}

func NewSettingRepository() SettingRepository {
	return &SettingRepositoryImpl{}
}

func (r *SettingRepositoryImpl) Find(db *gorm.DB, category, key string) (*models.Setting, error) {
	var setting models.Setting
	err := db.Where("category = ? AND "+quotedKey(db)+" = ?", category, key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepositoryImpl) FindByCategory(db *gorm.DB, category string) ([]models.Setting, error) {
	var settings []models.Setting
	err := db.Where("category = ?", category).Order(quotedKey(db)).Find(&settings).Error
	return settings, err
}

func (r *SettingRepositoryImpl) Upsert(db *gorm.DB, setting *models.Setting) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(setting).Error
}

// "key" is reserved in MySQL, so the column name is quoted per dialect.
func quotedKey(db *gorm.DB) string {
	return db.Statement.Quote("key")
}
