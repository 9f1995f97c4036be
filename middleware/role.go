package middleware

import (
	"context"
	"net/http"

	"doctorportal/models"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLookup finds users by email; nil, nil means no such user.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminIdentity is an Identity whose stored role was checked to be admin.
// Only RoleGuard produces one.
type AdminIdentity struct {
	Identity
	User *models.User
}

// AdminHandler is a handler that runs only after AuthGuard and RoleGuard succeeded.
type AdminHandler func(c *gin.Context, admin AdminIdentity)

// RoleGuard requires the authenticated caller to hold the admin role. It takes
// the Identity produced by AuthGuard as an argument, so it cannot run first.
type RoleGuard struct {
	Users  UserLookup
	Logger *zap.Logger
}

// Authorize looks up id and writes the rejection when it is not an admin.
func (g *RoleGuard) Authorize(c *gin.Context, id Identity) (AdminIdentity, bool) {
	u, err := g.Users.GetByEmail(c.Request.Context(), id.Email)
	if err != nil {
		g.Logger.Error("role lookup failed", zap.String("email", id.Email), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "internal server error"})
		return AdminIdentity{}, false
	}
	if !u.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "forbidden access"})
		return AdminIdentity{}, false
	}
	return AdminIdentity{Identity: id, User: u}, true
}

// Guards composes AuthGuard and RoleGuard in their only valid order.
type Guards struct {
	Auth *AuthGuard
	Role *RoleGuard
}

// NewGuards builds the guard chain.
func NewGuards(tokens TokenVerifier, users UserLookup, logger *zap.Logger) *Guards {
	return &Guards{
		Auth: &AuthGuard{Tokens: tokens},
		Role: &RoleGuard{Users: users, Logger: logger},
	}
}

// Authenticated gates h behind AuthGuard.
func (g *Guards) Authenticated(h AuthenticatedHandler) gin.HandlerFunc {
	return g.Auth.Require(h)
}

// Admin gates h behind AuthGuard then RoleGuard.
func (g *Guards) Admin(h AdminHandler) gin.HandlerFunc {
	return g.Auth.Require(func(c *gin.Context, id Identity) {
		admin, ok := g.Role.Authorize(c, id)
		if !ok {
			return
		}
		h(c, admin)
	})
}
