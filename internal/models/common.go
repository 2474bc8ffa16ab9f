package models

import "time"

// BaseModel is embedded by every append-only record keyed by an autoincrement id.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
