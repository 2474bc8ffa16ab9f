package apperrors

// ErrorCode is the machine-readable part of an error response.
type ErrorCode string

// Generic, non-domain codes
const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeNotConfigured        ErrorCode = "NOT_CONFIGURED"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Auth
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeAuthFailed       ErrorCode = "AUTH_FAILED"
	CodeInvalidSignature ErrorCode = "INVALID_SIGNATURE"
)
