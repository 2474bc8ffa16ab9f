package models

import "time"

type Ticket struct {
	BaseModel
	UserID      string       `gorm:"not null;index;type:varchar(32)" json:"user_id"`
	TicketType  string       `gorm:"column:ticket_type;not null" json:"ticket_type"`
	Status      TicketStatus `gorm:"type:varchar(20);default:'open';check:chk_tickets_status,status IN ('open','closed','pending')" json:"status"`
	Subject     string       `gorm:"not null" json:"subject"`
	Description string       `gorm:"not null" json:"description"`
	ClosedAt    *time.Time   `json:"closed_at"`

	Owner *User `gorm:"foreignKey:UserID" json:"-"`
}
