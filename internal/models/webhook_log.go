package models

// WebhookLog keeps an inbound webhook body exactly as received.
type WebhookLog struct {
	BaseModel
	Source  string `gorm:"not null;type:varchar(32)" json:"source"`
	Payload string `gorm:"type:text;not null" json:"payload"`
}
