package services

import (
	"context"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/validator"

	"gorm.io/gorm"
)

var ticketSchema = validator.NewSchema(
	validator.String("type").Required(),
	validator.String("subject").Required(),
	validator.String("description").Required(),
)

type TicketService interface {
	CreateTicket(ctx context.Context, db *gorm.DB, userID string, input map[string]interface{}) (*dto.CreateTicketResponse, error)
	GetUserTickets(ctx context.Context, db *gorm.DB, userID string) ([]models.Ticket, error)
}

type ticketService struct {
	ticketRepo repositories.TicketRepository
	validator  *validator.Validator
}

func NewTicketService(ticketRepo repositories.TicketRepository, v *validator.Validator) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		validator:  v,
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, db *gorm.DB, userID string, input map[string]interface{}) (*dto.CreateTicketResponse, error) {
	values, err := ticketSchema.Validate(input)
	if err != nil {
		return nil, inputError(err)
	}

	req := dto.CreateTicketRequest{
		Type:        values.String("type"),
		Subject:     values.String("subject"),
		Description: values.String("description"),
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, inputError(err)
	}

	ticket := &models.Ticket{
		UserID:      userID,
		TicketType:  req.Type,
		Status:      models.TicketStatusOpen,
		Subject:     req.Subject,
		Description: req.Description,
	}
	if err := s.ticketRepo.Create(db, ticket); err != nil {
		return nil, storeError(ctx, "create ticket", err)
	}

	logger.CtxInfo(ctx, "Ticket created", "ticket_id", ticket.ID)
	return &dto.CreateTicketResponse{Success: true, TicketID: ticket.ID}, nil
}

func (s *ticketService) GetUserTickets(ctx context.Context, db *gorm.DB, userID string) ([]models.Ticket, error) {
	tickets, err := s.ticketRepo.FindByUser(db, userID)
	if err != nil {
		return nil, storeError(ctx, "list tickets", err)
	}
	return tickets, nil
}
