package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"iceai_backend/internal/auth"
	"iceai_backend/internal/logger"
	"iceai_backend/internal/middleware"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"
	"iceai_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Flash categories.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashError   = "error"
)

type BaseHandler struct {
	validator *validator.Validator
	sessions  *auth.SessionStore
}

func NewBaseHandler(v *validator.Validator, sessions *auth.SessionStore) *BaseHandler {
	return &BaseHandler{
		validator: v,
		sessions:  sessions,
	}
}

// GetDB returns the *gorm.DB placed on the context by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		if errors.Is(err, io.EOF) {
			apperrors.HandleError(c, apperrors.NewBadRequestError("No data provided"))
		} else {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		}
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Messages()))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// BindInput decodes a JSON object body for the schema-validated services.
// Anything but a JSON object is rejected with "No data provided".
func (h *BaseHandler) BindInput(c *gin.Context) (map[string]interface{}, bool) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil || input == nil {
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Unreadable JSON body", "error", err, "path", c.Request.URL.Path)
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("No data provided"))
		return nil, false
	}
	return input, true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(ctx, "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	return userID, true
}

// --- session helpers ---

func (h *BaseHandler) Session(c *gin.Context) *auth.Session {
	return middleware.GetSession(c)
}

// SaveSession writes the session cookie. A failure is logged; the response still goes out.
func (h *BaseHandler) SaveSession(c *gin.Context) {
	if err := h.sessions.Save(c.Writer, h.Session(c)); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to save session", err)
	}
}

// FlashError queues the user-facing message of err.
func (h *BaseHandler) FlashError(c *gin.Context, err error) {
	message := "An unexpected error occurred"
	if appErr, ok := apperrors.AsAppError(err); ok {
		message = appErr.Message
	}
	h.Session(c).AddFlash(FlashError, message)
}

// RedirectWithFlash saves one flash and redirects with 302.
func (h *BaseHandler) RedirectWithFlash(c *gin.Context, location, category, message string) {
	h.Session(c).AddFlash(category, message)
	h.SaveSession(c)
	c.Redirect(http.StatusFound, location)
}

// RenderPage writes a page view model. Pending flashes are drained into it.
func (h *BaseHandler) RenderPage(c *gin.Context, page string, data gin.H) {
	sess := h.Session(c)
	body := gin.H{
		"page":    page,
		"user":    sess.User,
		"flashes": sess.PopFlashes(),
	}
	if sess.User != nil {
		body["avatar_url"] = sess.User.AvatarURL()
	}
	for k, v := range data {
		body[k] = v
	}
	h.SaveSession(c)
	c.JSON(http.StatusOK, body)
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
