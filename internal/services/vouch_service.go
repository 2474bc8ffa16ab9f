package services

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/models"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// VouchCSVHeader is the first line of every vouch export.
const VouchCSVHeader = "id,target_user_id,rating,trade_type,account_rank,price,payment_method,message,created_at"

var vouchSchema = validator.NewSchema(
	validator.String("target").Required(),
	validator.String("message").Required(),
	validator.Int("rating").Required().Between(1, 5, "Rating must be between 1 and 5"),
	validator.String("trade_type"),
	validator.String("account_rank"),
	validator.Float("price").NonNegative(),
	validator.String("payment_method"),
)

type VouchService interface {
	CreateVouch(ctx context.Context, db *gorm.DB, authorID string, input map[string]interface{}) (*dto.CreateVouchResponse, error)
	GetUserVouches(ctx context.Context, db *gorm.DB, userID string) ([]models.Vouch, error)
	GetReceivedVouches(ctx context.Context, db *gorm.DB, userID string) ([]models.Vouch, error)
	ExportCSV(ctx context.Context, db *gorm.DB, userID string, w io.Writer) error
}

type vouchService struct {
	vouchRepo repositories.VouchRepository
	validator *validator.Validator
}

func NewVouchService(vouchRepo repositories.VouchRepository, v *validator.Validator) VouchService {
	return &vouchService{
		vouchRepo: vouchRepo,
		validator: v,
	}
}

func (s *vouchService) CreateVouch(ctx context.Context, db *gorm.DB, authorID string, input map[string]interface{}) (*dto.CreateVouchResponse, error) {
	values, err := vouchSchema.Validate(input)
	if err != nil {
		return nil, inputError(err)
	}

	req := dto.CreateVouchRequest{
		Target:        values.String("target"),
		Message:       values.String("message"),
		Rating:        values.Int("rating"),
		TradeType:     values.String("trade_type"),
		AccountRank:   values.String("account_rank"),
		Price:         values.Float("price"),
		PaymentMethod: values.String("payment_method"),
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, inputError(err)
	}
	if req.Target == authorID {
		return nil, apperrors.ErrSelfVouch
	}

	vouch := &models.Vouch{
		UserID:        authorID,
		TargetUserID:  req.Target,
		Message:       req.Message,
		Rating:        req.Rating,
		TradeType:     req.TradeType,
		AccountRank:   req.AccountRank,
		Price:         req.Price,
		PaymentMethod: req.PaymentMethod,
	}
	if err := s.vouchRepo.Create(db, vouch); err != nil {
		return nil, storeError(ctx, "create vouch", err)
	}

	logger.CtxInfo(ctx, "Vouch created", "vouch_id", vouch.ID, "target", vouch.TargetUserID, "rating", vouch.Rating)
	return &dto.CreateVouchResponse{Success: true, VouchID: vouch.ID}, nil
}

func (s *vouchService) GetUserVouches(ctx context.Context, db *gorm.DB, userID string) ([]models.Vouch, error) {
	vouches, err := s.vouchRepo.FindByAuthor(db, userID)
	if err != nil {
		return nil, storeError(ctx, "list vouches", err)
	}
	return vouches, nil
}

func (s *vouchService) GetReceivedVouches(ctx context.Context, db *gorm.DB, userID string) ([]models.Vouch, error) {
	vouches, err := s.vouchRepo.FindByTarget(db, userID)
	if err != nil {
		return nil, storeError(ctx, "list received vouches", err)
	}
	return vouches, nil
}

// ExportCSV writes the vouches userID authored. Every data field is quoted.
func (s *vouchService) ExportCSV(ctx context.Context, db *gorm.DB, userID string, w io.Writer) error {
	vouches, err := s.vouchRepo.FindByAuthor(db, userID)
	if err != nil {
		return storeError(ctx, "export vouches", err)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(VouchCSVHeader)
	bw.WriteString("\n")
	for _, v := range vouches {
		writeCSVRow(bw, []string{
			strconv.FormatUint(uint64(v.ID), 10),
			v.TargetUserID,
			strconv.Itoa(v.Rating),
			v.TradeType,
			v.AccountRank,
			strconv.FormatFloat(v.Price, 'f', -1, 64),
			v.PaymentMethod,
			v.Message,
			v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return bw.Flush()
}

func writeCSVRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
