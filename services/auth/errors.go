package auth

import "errors"

var (
	// ErrUnauthorized means no credential was presented.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means the credential is invalid or expired, the principal is
	// unknown, or it lacks the required role.
	ErrForbidden = errors.New("forbidden access")
)
