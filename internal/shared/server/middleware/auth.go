package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/auth"
	"career-backend/internal/shared/server/respond"
	"career-backend/internal/shared/telemetry"
)

const (
	userIDKey   = "userId"
	userNameKey = "userName"

	unauthorizedMessage = "missing or invalid token"
)

// TokenVerifier verifies a bearer token. *auth.TokenService implements it.
type TokenVerifier interface {
	Verify(token string) (auth.SessionClaim, error)
}

// Auth rejects requests without a valid bearer token and stores the owner id in context.
// Every failure is reported as the same 401; the reason is only logged.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, reason := bearerToken(c.GetHeader("Authorization"))
		if reason != "" {
			reject(c, reason)
			return
		}

		claim, err := verifier.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				reject(c, "expired")
			default:
				reject(c, "malformed")
			}
			return
		}

		c.Set(userIDKey, claim.OwnerID)
		c.Set(userNameKey, claim.Username)
		c.Next()
	}
}

func bearerToken(header string) (string, string) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "missing"
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "scheme"
	}
	return parts[1], ""
}

func reject(c *gin.Context, reason string) {
	telemetry.Warn("auth.rejected", map[string]any{
		"request_id": RequestIDFromContext(c),
		"path":       c.Request.URL.Path,
		"reason":     reason,
	})
	respond.Error(c, http.StatusUnauthorized, "unauthorized", unauthorizedMessage, nil)
}

// UserIDFromContext fetches the owner id set by the auth middleware.
func UserIDFromContext(c *gin.Context) (int64, bool) {
	if c == nil {
		return 0, false
	}
	val, _ := c.Get(userIDKey)
	id, ok := val.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// UserNameFromContext fetches the username set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}
