package models

import "time"

// User is keyed by the Discord account id.
type User struct {
	ID               string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Username         string    `gorm:"not null" json:"username"`
	Avatar           string    `json:"avatar"`
	Discriminator    string    `gorm:"type:varchar(8)" json:"discriminator"`
	Verified         bool      `gorm:"default:false" json:"verified"`
	VerificationCode string    `json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
