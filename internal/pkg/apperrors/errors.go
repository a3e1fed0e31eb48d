package apperrors

import (
	"errors"
)

var (
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrForbidden         = errors.New("access denied for this portal")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrSessionExpired    = errors.New("session expired or revoked")
	ErrNotFound          = errors.New("not found")
	ErrRateLimited       = errors.New("too many requests")
	ErrInvalidOTP        = errors.New("invalid OTP code")
	ErrExpiredOTP        = errors.New("OTP code expired")
	ErrEmailTaken        = errors.New("email or phone already in use")
	ErrInternal          = errors.New("internal error")
)
