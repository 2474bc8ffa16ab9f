package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting is one value in the namespaced key-value store.
type Setting struct {
	Category  string         `gorm:"primaryKey;type:varchar(64)" json:"category"`
	Key       string         `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedBy string         `gorm:"type:varchar(32)" json:"updated_by"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
