package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(db *gorm.DB, account *models.Account) error
	FindAvailable(db *gorm.DB, limit int) ([]models.Account, error)
	CountBySeller(db *gorm.DB, sellerID string) (int64, error)

	// Transactions
	CountCompletedTrades(db *gorm.DB, userID string) (int64, error)
	SumCompletedSales(db *gorm.DB, sellerID string) (float64, error)
}

type AccountRepositoryImpl struct{}

func NewAccountRepository() AccountRepository {
	return &AccountRepositoryImpl{}
}

func (r *AccountRepositoryImpl) Create(db *gorm.DB, account *models.Account) error {
	return db.Create(account).Error
}

// FindAvailable lists listings of every seller that are still for sale.
func (r *AccountRepositoryImpl) FindAvailable(db *gorm.DB, limit int) ([]models.Account, error) {
	var accounts []models.Account
	err := db.Where("status = ?", models.AccountStatusAvailable).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepositoryImpl) CountBySeller(db *gorm.DB, sellerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Account{}).Where("seller_id = ?", sellerID).Count(&count).Error
	return count, err
}

// CountCompletedTrades counts completed transactions where the user bought or sold.
func (r *AccountRepositoryImpl) CountCompletedTrades(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Transaction{}).
		Where("status = ?", models.TransactionStatusCompleted).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *AccountRepositoryImpl) SumCompletedSales(db *gorm.DB, sellerID string) (float64, error) {
	var total float64
	err := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ? AND seller_id = ?", models.TransactionStatusCompleted, sellerID).
		Scan(&total).Error
	return total, err
}
