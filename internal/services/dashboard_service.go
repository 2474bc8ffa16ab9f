package services

import (
	"context"
	"errors"
	"math"

	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"

	"gorm.io/gorm"
)

type DashboardService interface {
	GetUserStats(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardStats, error)
}

type dashboardService struct {
	userRepo    repositories.UserRepository
	vouchRepo   repositories.VouchRepository
	ticketRepo  repositories.TicketRepository
	accountRepo repositories.AccountRepository
	inviteRepo  repositories.InviteRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	vouchRepo repositories.VouchRepository,
	ticketRepo repositories.TicketRepository,
	accountRepo repositories.AccountRepository,
	inviteRepo repositories.InviteRepository,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		vouchRepo:   vouchRepo,
		ticketRepo:  ticketRepo,
		accountRepo: accountRepo,
		inviteRepo:  inviteRepo,
	}
}

// GetUserStats runs one scalar query per figure. Empty aggregates are zero.
func (s *dashboardService) GetUserStats(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	var err error

	if stats.Vouches, err = s.vouchRepo.CountByTarget(db, userID); err != nil {
		return nil, storeError(ctx, "count vouches", err)
	}
	if stats.Tickets, err = s.ticketRepo.CountByUser(db, userID); err != nil {
		return nil, storeError(ctx, "count tickets", err)
	}
	if stats.AccountsListed, err = s.accountRepo.CountBySeller(db, userID); err != nil {
		return nil, storeError(ctx, "count listings", err)
	}

	avg, err := s.vouchRepo.AverageRatingForTarget(db, userID)
	if err != nil {
		return nil, storeError(ctx, "average rating", err)
	}
	stats.AvgRating = math.Round(avg*10) / 10

	if stats.Invites, err = s.inviteRepo.CountByInviter(db, userID); err != nil {
		return nil, storeError(ctx, "count invites", err)
	}
	if stats.TotalTrades, err = s.accountRepo.CountCompletedTrades(db, userID); err != nil {
		return nil, storeError(ctx, "count trades", err)
	}
	if stats.TotalEarnings, err = s.accountRepo.SumCompletedSales(db, userID); err != nil {
		return nil, storeError(ctx, "sum earnings", err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	switch {
	case err == nil:
		stats.MemberSince = user.CreatedAt.Year()
	case errors.Is(err, repositories.ErrUserNotFound):
	default:
		return nil, storeError(ctx, "find user", err)
	}

	return stats, nil
}
