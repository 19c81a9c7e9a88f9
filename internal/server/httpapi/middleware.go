package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/akimovd/traintrack/internal/common"
	"github.com/akimovd/traintrack/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware chain.
const (
	ContextUserIDKey    = "userID"
	ContextRequestIDKey = "requestID"
)

// RequestIDMiddleware tags every request with a generated id, exposed both
// to handlers and to the client via the X-Request-Id header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(ContextRequestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// AuthMiddleware verifies the Bearer token and stores the trusted user
// identifier in the request context. The identifier is never read from
// request input; a request without a valid token never reaches a handler.
func AuthMiddleware(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], []byte(secretKey))
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "invalid token")
			}
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// getUserIDFromContext returns the trusted user id set by AuthMiddleware.
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok || idStr == "" {
		return "", errors.New("invalid user ID in context")
	}
	return idStr, nil
}
