package auth

import (
	"context"
	"fmt"
	"time"

	"doctorportal/models"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is the lifetime of an issued access token.
const TokenTTL = 24 * time.Hour

// UserLookup finds users by email; it returns nil, nil when none exists.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Claims is the payload of an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenIssuer mints and verifies HS256 access tokens carrying an email claim.
type TokenIssuer struct {
	secret []byte
	users  UserLookup
	now    func() time.Time
}

// NewTokenIssuer returns an issuer signing with secret. Tokens are only issued
// for emails users knows about.
func NewTokenIssuer(secret string, users UserLookup) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), users: users, now: time.Now}
}

// WithClock replaces the clock used for iat/exp; intended for tests.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

// Issue signs a token for email. It returns ErrForbidden when no user with
// that email is registered.
func (t *TokenIssuer) Issue(ctx context.Context, email string) (string, error) {
	user, err := t.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("token issue lookup: %w", err)
	}
	if user == nil {
		return "", ErrForbidden
	}

	now := t.now()
	claims := Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("token sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the embedded email.
// Every failure maps to ErrForbidden.
func (t *TokenIssuer) Verify(raw string) (string, error) {
	parser := jwt.Parser{
		ValidMethods: []string{jwt.SigningMethodHS256.Alg()},
		// expiry is checked below against the issuer's clock
		SkipClaimsValidation: true,
	}
	claims := &Claims{}
	tok, err := parser.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrForbidden
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrForbidden
	}
	if !claims.VerifyExpiresAt(t.now().Unix(), true) || claims.Email == "" {
		return "", ErrForbidden
	}
	return claims.Email, nil
}
