package contextkeys

// Custom type so keys never collide with other packages.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or transaction) for the request.
const DBContextKey = contextKey("db")

// SessionContextKey holds the *auth.Session loaded by the session middleware.
const SessionContextKey = contextKey("session")

// UserIDContextKey holds the Discord id of the authenticated user.
const UserIDContextKey = contextKey("userID")
