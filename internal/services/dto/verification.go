package dto

type VerifyRequest struct {
	Code string `json:"code" validate:"required,max=128"`
}

type VerificationStatus struct {
	Verified bool `json:"verified"`
}
