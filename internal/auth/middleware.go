package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/entities"
)

// ContextKeyUsername holds the authenticated principal.
const ContextKeyUsername = "auth_username"

// TokenValidator resolves a plaintext API token to a user.
type TokenValidator interface {
	ValidateToken(token string) (*entities.User, error)
}

// Middleware resolves bearer tokens to principals for protected routes.
type Middleware struct {
	tokens TokenValidator
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(tokens TokenValidator) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth aborts with 401 unless the request carries a valid
// "Authorization: Bearer <token>" header. On success the username is
// available through GetUsername.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		user, err := m.tokens.ValidateToken(token)
		switch {
		case err == nil:
		case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
			abortUnauthorized(c, err.Error())
			return
		default:
			log.Printf("Token validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}

		c.Set(ContextKeyUsername, user.Username)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="bookgoblin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUsername retrieves the authenticated user's username from the context.
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}
