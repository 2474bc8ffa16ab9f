package services

import (
	"context"
	"errors"

	"iceai_backend/internal/logger"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"
)

// inputError turns a schema or struct validation failure into a 400.
func inputError(err error) error {
	var schemaErr *validator.SchemaError
	if errors.As(err, &schemaErr) {
		return apperrors.ValidationError(schemaErr.Errors)
	}
	var structErr *validator.ValidationError
	if errors.As(err, &structErr) {
		return apperrors.ValidationError(structErr.Messages())
	}
	return apperrors.InternalError(err)
}

// storeError logs a failed store call and hides the cause from the caller.
func storeError(ctx context.Context, op string, err error) error {
	logger.CtxWithError(ctx, "Database error", err, "op", op)
	return apperrors.PersistenceError(err)
}
