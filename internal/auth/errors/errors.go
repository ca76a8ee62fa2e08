package errors

import "errors"

var (
	ErrAdminNotFound = errors.New("admin not found")

	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenClaims    = errors.New("token claims are invalid")
	ErrTokenRevoked   = errors.New("token has been revoked")
)
