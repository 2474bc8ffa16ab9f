package models

import (
	"time"

	"gorm.io/datatypes"
)

// Account is a game-account listing in the marketplace.
type Account struct {
	BaseModel
	SellerID       string                      `gorm:"not null;index;type:varchar(32)" json:"seller_id"`
	Title          string                      `gorm:"not null" json:"title"`
	Rank           string                      `json:"rank"`
	Level          int                         `gorm:"default:0;check:chk_r6_accounts_level,level >= 0" json:"level"`
	OperatorsCount int                         `gorm:"default:0;check:chk_r6_accounts_operators,operators_count >= 0" json:"operators"`
	Renown         int                         `gorm:"default:0;check:chk_r6_accounts_renown,renown >= 0" json:"renown"`
	R6Credits      int                         `gorm:"column:r6_credits;default:0;check:chk_r6_accounts_credits,r6_credits >= 0" json:"credits"`
	Price          float64                     `gorm:"not null;check:chk_r6_accounts_price,price >= 0" json:"price"`
	Description    string                      `json:"description"`
	Status         AccountStatus               `gorm:"type:varchar(20);default:'available';index;check:chk_r6_accounts_status,status IN ('available','sold','pending')" json:"-"`
	Images         datatypes.JSONSlice[string] `json:"images"`

	Seller *User `gorm:"foreignKey:SellerID" json:"-"`
}

func (Account) TableName() string {
	return "r6_accounts"
}

// Transaction records a sale of an Account.
type Transaction struct {
	BaseModel
	AccountID   uint              `gorm:"not null;index" json:"account_id"`
	BuyerID     string            `gorm:"not null;index;type:varchar(32)" json:"buyer_id"`
	SellerID    string            `gorm:"not null;index;type:varchar(32)" json:"seller_id"`
	Price       float64           `gorm:"not null;check:chk_r6_transactions_price,price >= 0" json:"price"`
	Status      TransactionStatus `gorm:"type:varchar(20);default:'pending';check:chk_r6_transactions_status,status IN ('pending','completed','cancelled')" json:"status"`
	CompletedAt *time.Time        `json:"completed_at"`
}

func (Transaction) TableName() string {
	return "r6_transactions"
}
