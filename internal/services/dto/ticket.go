package dto

type CreateTicketRequest struct {
	Type        string `json:"type" validate:"required,max=50"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=4000"`
}

type CreateTicketResponse struct {
	Success  bool `json:"success"`
	TicketID uint `json:"ticket_id"`
}
