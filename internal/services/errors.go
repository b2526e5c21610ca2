// internal/services/errors.go
package services

import "errors"

// Sentinel errors crossing the service boundary. Handlers map these onto
// HTTP statuses; everything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
