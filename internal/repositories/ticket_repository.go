package repositories

import (
	"iceai_backend/internal/models"

	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(db *gorm.DB, ticket *models.Ticket) error
	FindByUser(db *gorm.DB, userID string) ([]models.Ticket, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type TicketRepositoryImpl struct{}

func NewTicketRepository() TicketRepository {
	return &TicketRepositoryImpl{}
}

func (r *TicketRepositoryImpl) Create(db *gorm.DB, ticket *models.Ticket) error {
	return db.Create(ticket).Error
}

func (r *TicketRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Ticket{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
