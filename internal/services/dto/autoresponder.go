package dto

type CreateRuleRequest struct {
	Trigger  string `json:"trigger" validate:"required,max=200"`
	Response string `json:"response" validate:"required,max=2000"`
}

type CreateRuleResponse struct {
	Success bool `json:"success"`
	RuleID  uint `json:"rule_id"`
}
