package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"iceai_backend/internal/auth"
	"iceai_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(store *auth.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), SessionMiddleware(store))
	r.GET("/private", LoginRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c)+"|"+logger.GetUserID(c.Request.Context()))
	})
	return r
}

func TestLoginRequired_RedirectsAnonymous(t *testing.T) {
	store := auth.NewSessionStore(auth.SessionConfig{Secret: "s"})
	w := httptest.NewRecorder()
	newRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoginRequired_PassesUser(t *testing.T) {
	store := auth.NewSessionStore(auth.SessionConfig{Secret: "s"})
	token, err := store.Encode(&auth.Session{User: &auth.SessionUser{ID: "7", Username: "alice"}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: store.CookieName(), Value: token})
	w := httptest.NewRecorder()
	newRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7|7", w.Body.String())
}

func TestLoginRequired_ForgedCookie(t *testing.T) {
	other := auth.NewSessionStore(auth.SessionConfig{Secret: "other"})
	token, err := other.Encode(&auth.Session{User: &auth.SessionUser{ID: "7", Username: "alice"}})
	require.NoError(t, err)

	store := auth.NewSessionStore(auth.SessionConfig{Secret: "s"})
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: store.CookieName(), Value: token})
	w := httptest.NewRecorder()
	newRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	store := auth.NewSessionStore(auth.SessionConfig{Secret: "s"})
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	newRouter(store).ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
