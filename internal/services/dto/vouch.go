package dto

import "iceai_backend/internal/models"

type CreateVouchRequest struct {
	Target        string  `json:"target" validate:"required,snowflake"`
	Message       string  `json:"message" validate:"required,max=2000"`
	Rating        int     `json:"rating" validate:"gte=1,lte=5"`
	TradeType     string  `json:"trade_type" validate:"max=50"`
	AccountRank   string  `json:"account_rank" validate:"max=50"`
	Price         float64 `json:"price" validate:"gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"max=50"`
}

type CreateVouchResponse struct {
	Success bool `json:"success"`
	VouchID uint `json:"vouch_id"`
}

// VouchLists is what the vouches page shows.
type VouchLists struct {
	Given    []models.Vouch `json:"given"`
	Received []models.Vouch `json:"received"`
}
