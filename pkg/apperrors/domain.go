package apperrors

import (
	"net/http"
)

// ErrNotFound wraps a repository "record not found" (404).
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Vouches ---

var ErrSelfVouch = NewValidationMessage("You cannot vouch for yourself")

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

var ErrUnreadableImage = New(
	CodeValidationFailed,
	"validation",
	"The image could not be read or its dimensions are too large",
	http.StatusUnprocessableEntity,
)

// --- Autoresponder ---

var ErrDuplicateTrigger = New(
	CodeConflict,
	"autoresponder",
	"A rule with this trigger already exists",
	http.StatusConflict,
)

// --- Verification ---

var ErrVerificationDisabled = New(
	CodeNotConfigured,
	"verification",
	"Verification is not configured",
	http.StatusServiceUnavailable,
)

var ErrInvalidVerificationCode = NewValidationMessage("Invalid verification code")

// --- Webhooks ---

// ErrWebhookUnauthorized covers both a missing signature header and a missing shared secret.
var ErrWebhookUnauthorized = New(
	CodeUnauthorized,
	"webhook",
	"Unauthorized",
	http.StatusUnauthorized,
)

var ErrInvalidSignature = New(
	CodeInvalidSignature,
	"webhook",
	"Invalid signature",
	http.StatusUnauthorized,
)
