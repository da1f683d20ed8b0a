package middleware

import (
	"net/http"
	"strings"

	"mrbs/internal/handler/httperr"
	"mrbs/internal/pkg/cookie"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const (
	ctxSessionIDKey = "session_id"
	ctxUserIDKey    = "user_id"
)

var errSessionRequired = errors.New("session token required")

type SessionMiddleware struct{}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// CaptureSession stores the cookie or bearer token, if any. Resolution is left
// to the usecase so that a body session_id can still take precedence.
func (m *SessionMiddleware) CaptureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			c.Set(ctxSessionIDKey, token)
		}
		c.Next()
	}
}

// RequireSession rejects requests that carry no token at all.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionRequired, "Authentication required", nil)
			return
		}
		c.Set(ctxSessionIDKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionID(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SessionID prefers an explicit token from the request body over the captured one.
func SessionID(c *gin.Context, explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	return c.GetString(ctxSessionIDKey)
}

// SetUserID records the resolved user for the request log.
func SetUserID(c *gin.Context, userID int64) {
	c.Set(ctxUserIDKey, userID)
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}
