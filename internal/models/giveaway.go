package models

import "time"

type Giveaway struct {
	BaseModel
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description"`
	Prize        string         `gorm:"not null" json:"prize"`
	WinnersCount int            `gorm:"not null;default:1;check:chk_giveaways_winners,winners_count > 0" json:"winners_count"`
	EndTime      time.Time      `gorm:"not null;index" json:"end_time"`
	ChannelID    string         `json:"channel_id"`
	MessageID    string         `json:"message_id"`
	HostID       string         `gorm:"index;type:varchar(32)" json:"host_id"`
	Status       GiveawayStatus `gorm:"type:varchar(20);default:'active';check:chk_giveaways_status,status IN ('active','ended','cancelled')" json:"status"`
}
