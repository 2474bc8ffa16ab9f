package apperrors

import (
	"iceai_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler renders errors for gin.
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{}

// SetDebug controls whether unexpected errors expose their cause.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if h.Debug {
			appErr.Details = err.Error()
		}
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "Server error",
			"code", appErr.Code,
			"cause", appErr.Unwrap(),
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError renders err with the package-level handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError tries to unwrap err into *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
