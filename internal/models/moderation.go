package models

// ScammerReport and MarketAlert are schema only; no route reads or writes them yet.
type ScammerReport struct {
	BaseModel
	ReporterID string              `gorm:"not null;type:varchar(32)" json:"reporter_id"`
	ScammerID  string              `gorm:"not null;index;type:varchar(32)" json:"scammer_id"`
	Reason     string              `json:"reason"`
	Evidence   string              `json:"evidence"`
	Status     ScammerReportStatus `gorm:"type:varchar(20);default:'open';check:chk_scammer_reports_status,status IN ('open','confirmed','dismissed')" json:"status"`
}

type MarketAlert struct {
	BaseModel
	UserID   string  `gorm:"not null;index;type:varchar(32)" json:"user_id"`
	Rank     string  `json:"rank"`
	MaxPrice float64 `gorm:"check:chk_market_alerts_max_price,max_price >= 0" json:"max_price"`
}

// ModLog is an audit entry for a moderation action.
type ModLog struct {
	BaseModel
	ModeratorID string `gorm:"not null;index;type:varchar(32)" json:"moderator_id"`
	Action      string `gorm:"not null" json:"action"`
	Target      string `json:"target"`
	Details     string `json:"details"`
}
