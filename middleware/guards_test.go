package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorportal/database/repository/memory"
	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T, users middleware.UserLookup) (*gin.Engine, *auth.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewUserStore(
		models.User{ID: "u1", Email: "user@x.com"},
		models.User{ID: "u2", Email: "admin@x.com", Role: models.RoleAdmin},
	)
	if users == nil {
		users = store
	}
	tokens := auth.NewTokenIssuer("secret", store)
	guards := middleware.NewGuards(tokens, users, zap.NewNop())

	r := gin.New()
	r.GET("/me", guards.Authenticated(func(c *gin.Context, id middleware.Identity) {
		c.JSON(http.StatusOK, gin.H{"email": id.Email, "ctx": c.GetString(middleware.EmailKey)})
	}))
	r.GET("/admin", guards.Admin(func(c *gin.Context, admin middleware.AdminIdentity) {
		c.JSON(http.StatusOK, gin.H{"email": admin.Email})
	}))
	return r, tokens
}

func do(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func bearer(t *testing.T, tokens *auth.TokenIssuer, email string) string {
	t.Helper()
	tok, err := tokens.Issue(context.Background(), email)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthGuard(t *testing.T) {
	r, tokens := setupRouter(t, nil)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"missing header", "", http.StatusUnauthorized, "unauthorized access"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "unauthorized access"},
		{"invalid token", "Bearer not-a-token", http.StatusForbidden, "forbidden access"},
		{"valid token", bearer(t, tokens, "user@x.com"), http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/me", tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, message(t, w))
			}
		})
	}
}

func TestAuthGuardAttachesIdentity(t *testing.T) {
	r, tokens := setupRouter(t, nil)

	w := do(r, "/me", bearer(t, tokens, "user@x.com"))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user@x.com", body["email"])
	assert.Equal(t, "user@x.com", body["ctx"])
}

func TestRoleGuard(t *testing.T) {
	r, tokens := setupRouter(t, nil)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", "Bearer garbage").Code)

	w := do(r, "/admin", bearer(t, tokens, "user@x.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden access", message(t, w))

	assert.Equal(t, http.StatusOK, do(r, "/admin", bearer(t, tokens, "admin@x.com")).Code)
}

// emptyUsers knows no users; tokens are still issued by the setup store.
type emptyUsers struct{}

func (emptyUsers) GetByEmail(context.Context, string) (*models.User, error) { return nil, nil }

func TestRoleGuardRejectsMissingUserRecord(t *testing.T) {
	r, tokens := setupRouter(t, emptyUsers{})

	w := do(r, "/admin", bearer(t, tokens, "admin@x.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

type brokenUsers struct{}

func (brokenUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection reset")
}

func TestRoleGuardStoreFault(t *testing.T) {
	r, tokens := setupRouter(t, brokenUsers{})

	w := do(r, "/admin", bearer(t, tokens, "admin@x.com"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", message(t, w))
}
