package middleware

import (
	"net/http"

	"iceai_backend/internal/logger"
	"iceai_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// LoginRequired redirects anonymous visitors to /login. For a logged-in
// user it records the id on the gin and request contexts and continues.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), sess.User.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.UserIDContextKey), sess.User.ID)
		c.Next()
	}
}

// GetUserID returns the id set by LoginRequired, or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(string(contextkeys.UserIDContextKey))
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
