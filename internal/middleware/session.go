package middleware

import (
	"iceai_backend/internal/auth"
	"iceai_backend/internal/logger"
	"iceai_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware loads the cookie session into the gin context.
// A missing, forged or expired cookie yields an empty session.
func SessionMiddleware(store *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(contextkeys.SessionContextKey), store.Load(c.Request))
		c.Next()
	}
}

// GetSession returns the request's session. It is never nil.
func GetSession(c *gin.Context) *auth.Session {
	if val, ok := c.Get(string(contextkeys.SessionContextKey)); ok {
		if sess, ok := val.(*auth.Session); ok && sess != nil {
			return sess
		}
	}
	logger.CtxWarn(c.Request.Context(), "Session middleware not installed", "path", c.Request.URL.Path)
	sess := &auth.Session{}
	c.Set(string(contextkeys.SessionContextKey), sess)
	return sess
}
