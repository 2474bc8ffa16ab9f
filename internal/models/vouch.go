package models

// Vouch is a reputation record left by UserID about TargetUserID. Append-only.
type Vouch struct {
	BaseModel
	UserID        string  `gorm:"not null;index;type:varchar(32)" json:"user_id"`
	TargetUserID  string  `gorm:"not null;index;type:varchar(32)" json:"target_user_id"`
	Message       string  `gorm:"not null" json:"message"`
	Rating        int     `gorm:"not null;check:chk_vouches_rating,rating >= 1 AND rating <= 5" json:"rating"`
	TradeType     string  `json:"trade_type"`
	AccountRank   string  `json:"account_rank"`
	Price         float64 `gorm:"default:0;check:chk_vouches_price,price >= 0" json:"price"`
	PaymentMethod string  `json:"payment_method"`

	Author *User `gorm:"foreignKey:UserID" json:"-"`
}
