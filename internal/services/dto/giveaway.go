package dto

import "time"

type CreateGiveawayRequest struct {
	Title        string    `json:"title" validate:"required,max=120"`
	Description  string    `json:"description" validate:"max=2000"`
	Prize        string    `json:"prize" validate:"required,max=200"`
	WinnersCount int       `json:"winners_count" validate:"gte=1,lte=100"`
	EndTime      time.Time `json:"end_time"`
	ChannelID    string    `json:"channel_id" validate:"snowflake"`
}

type CreateGiveawayResponse struct {
	Success    bool `json:"success"`
	GiveawayID uint `json:"giveaway_id"`
}
