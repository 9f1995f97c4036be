package middleware

import (
	"net/http"
	"strings"

	"doctorportal/utils"

	"github.com/gin-gonic/gin"
)

// EmailKey is the gin context key holding the verified caller email.
const EmailKey = "email"

// TokenVerifier validates a raw bearer token and returns its email claim.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// Identity is the caller proven by a valid bearer token.
type Identity struct {
	Email string
}

// AuthenticatedHandler is a handler that runs only after AuthGuard succeeded.
type AuthenticatedHandler func(c *gin.Context, id Identity)

// AuthGuard requires "Authorization: Bearer <token>".
type AuthGuard struct {
	Tokens TokenVerifier
}

// Authenticate resolves the caller identity or writes the rejection and
// aborts the chain. ok is false when the request was rejected.
func (g *AuthGuard) Authenticate(c *gin.Context) (id Identity, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "unauthorized access"})
		return Identity{}, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	email, err := g.Tokens.Verify(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "forbidden access"})
		return Identity{}, false
	}

	c.Set(EmailKey, email)
	return Identity{Email: email}, true
}

// Require wraps h so it only runs for authenticated callers.
func (g *AuthGuard) Require(h AuthenticatedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := g.Authenticate(c)
		if !ok {
			return
		}
		h(c, id)
	}
}
