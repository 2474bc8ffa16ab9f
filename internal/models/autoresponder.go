package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AutoresponderRule answers messages containing TriggerPhrase.
// Enabled carries no column default; the service always sets it.
type AutoresponderRule struct {
	BaseModel
	TriggerPhrase string         `gorm:"not null" json:"trigger"`
	TriggerKey    string         `gorm:"not null;uniqueIndex:idx_autoresponder_trigger_key;type:varchar(255)" json:"-"`
	Response      string         `gorm:"not null" json:"response"`
	EmbedEnabled  bool           `gorm:"default:false" json:"embed_enabled"`
	EmbedData     datatypes.JSON `json:"embed_data,omitempty"`
	Enabled       bool           `gorm:"not null" json:"enabled"`
	CreatedBy     string         `gorm:"type:varchar(32)" json:"created_by"`
}

func (AutoresponderRule) TableName() string {
	return "autoresponder"
}

// TriggerKeyFor is the case-folded form trigger phrases are unique on.
func TriggerKeyFor(trigger string) string {
	return strings.ToLower(strings.TrimSpace(trigger))
}

func (r *AutoresponderRule) BeforeSave(tx *gorm.DB) error {
	r.TriggerKey = TriggerKeyFor(r.TriggerPhrase)
	return nil
}
