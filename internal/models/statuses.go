package models

type TicketStatus string
type AccountStatus string
type TransactionStatus string
type GiveawayStatus string
type ScammerReportStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusClosed  TicketStatus = "closed"
	TicketStatusPending TicketStatus = "pending"

	AccountStatusAvailable AccountStatus = "available"
	AccountStatusSold      AccountStatus = "sold"
	AccountStatusPending   AccountStatus = "pending"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"

	GiveawayStatusActive    GiveawayStatus = "active"
	GiveawayStatusEnded     GiveawayStatus = "ended"
	GiveawayStatusCancelled GiveawayStatus = "cancelled"

	ScammerReportStatusOpen      ScammerReportStatus = "open"
	ScammerReportStatusConfirmed ScammerReportStatus = "confirmed"
	ScammerReportStatusDismissed ScammerReportStatus = "dismissed"
)
