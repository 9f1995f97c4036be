package handlers

import (
	"context"
	"errors"
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/auth"
	"doctorportal/services/user"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer mints access tokens for registered emails.
type TokenIssuer interface {
	Issue(ctx context.Context, email string) (string, error)
}

// UserHandler exposes user registration, token issuance and role management.
type UserHandler struct {
	Users  user.UserService
	Tokens TokenIssuer
	Logger *zap.Logger
}

func NewUserHandler(us user.UserService, tokens TokenIssuer, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: us, Tokens: tokens, Logger: logger}
}

// SaveUser answers POST /users.
func (h *UserHandler) SaveUser(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "invalid user", err.Error())
		return
	}
	res, err := h.Users.Save(c.Request.Context(), input)
	if err != nil {
		utils.InternalError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// IssueToken answers GET /jwt?email=E.
func (h *UserHandler) IssueToken(c *gin.Context) {
	token, err := h.Tokens.Issue(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": "", "message": "forbidden access"})
			return
		}
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// GetAllUsers answers GET /users.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdmin answers GET /users/admin/:email.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	isAdmin, err := h.Users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// MakeAdmin answers PUT /users/admin/:id.
func (h *UserHandler) MakeAdmin(c *gin.Context, admin middleware.AdminIdentity) {
	logger := getLogger(c, h.Logger)
	target := c.Param("id")

	res, err := h.Users.Promote(c.Request.Context(), target)
	if err != nil {
		utils.InternalError(c, logger, err)
		return
	}
	logger.Info("user promoted", zap.String("target", target), zap.String("by", admin.Email))
	c.JSON(http.StatusOK, res)
}
