package handlers

import (
	"net/http"

	"iceai_backend/internal/auth"
	"iceai_backend/internal/logger"
	"iceai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)
	r.GET("/login", h.Login)
	r.GET("/callback", h.Callback)
	r.GET("/logout", h.Logout)
}

// Index sends logged-in users to the dashboard and renders the login page otherwise.
func (h *AuthHandler) Index(c *gin.Context) {
	if h.Session(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.RenderPage(c, "login", gin.H{"login_url": "/login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	url, state := h.authService.BeginLogin()

	sess := h.Session(c)
	sess.OAuthState = state
	h.SaveSession(c)

	c.Redirect(http.StatusFound, url)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.Session(c)

	code := c.Query("code")
	if code == "" {
		h.RedirectWithFlash(c, "/", FlashError, "Authentication failed: No code received")
		return
	}

	expected := sess.OAuthState
	sess.OAuthState = ""
	if expected == "" || c.Query("state") != expected {
		logger.CtxWarn(ctx, "OAuth state mismatch", "ip", c.ClientIP())
		h.RedirectWithFlash(c, "/", FlashError, "Authentication failed: invalid state")
		return
	}

	user, err := h.authService.CompleteLogin(ctx, h.GetDB(c), code)
	if err != nil {
		h.FlashError(c, err)
		h.SaveSession(c)
		c.Redirect(http.StatusFound, "/")
		return
	}

	sess.User = &auth.SessionUser{
		ID:            user.ID,
		Username:      user.Username,
		Avatar:        user.Avatar,
		Discriminator: user.Discriminator,
	}
	h.RedirectWithFlash(c, "/dashboard", FlashSuccess, "Welcome back, "+user.Username+"!")
}

// Logout always succeeds, with or without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := h.Session(c)
	if sess.User != nil {
		logger.CtxInfo(c.Request.Context(), "User logged out", "user_id", sess.User.ID)
	}
	sess.Clear()
	h.RedirectWithFlash(c, "/", FlashInfo, "You have been logged out successfully")
}
