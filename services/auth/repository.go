package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vndocs/authcore/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vndocs/authcore/services/auth UserRepo,SessionRepo,TokenRepo,OTPRepo

// UserRepo is the durable user-record store. Credential hashes and the
// OTP fallback columns live on this record.
type UserRepo interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	MarkVerified(ctx context.Context, userID uuid.UUID) error

	// SetOTPState mirrors a freshly issued code onto the user row and
	// resets the retry counter.
	SetOTPState(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
	ClearOTPState(ctx context.Context, userID uuid.UUID) error
	IncrementOTPRetry(ctx context.Context, userID uuid.UUID) (int, error)
}

// SessionRepo is the durable session ledger: one row per login event.
type SessionRepo interface {
	CreateSession(ctx context.Context, session *models.SessionDevice) error
	GetSessionByRefreshJTI(ctx context.Context, jtiRF string) (*models.SessionDevice, error)

	// UpdateAccessJTI repoints the session row at the newly minted access
	// token; the only mutation a refresh performs on the ledger.
	UpdateAccessJTI(ctx context.Context, jtiRF, jti string) error
	RevokeSession(ctx context.Context, jtiRF string) error
	GetActiveSessionsByUser(ctx context.Context, userID uuid.UUID) ([]models.SessionDevice, error)
	RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredSessions removes ledger rows whose refresh expiry has
	// passed, returning how many were deleted.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

// TokenRepo stores token records in the key-value store, keyed by jti,
// expiring with the token itself.
type TokenRepo interface {
	StoreTokenRecord(ctx context.Context, jti string, record *models.TokenRecord, ttl time.Duration) error
	GetTokenRecord(ctx context.Context, jti string) (*models.TokenRecord, error)
	DeleteTokenRecord(ctx context.Context, jti string) error
}

// OTPRepo holds the ephemeral OTP state: codes, rate-limit counters,
// cooldown and block markers, and one-shot sign keys. Counters use the
// store's atomic increment, never read-modify-write.
type OTPRepo interface {
	StoreCode(ctx context.Context, phone, code string, ttl time.Duration) error
	// GetCode returns an empty string when no code is stored.
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error

	// IncrementRequestCount bumps the per-phone counter, seeding (or
	// re-seeding) the window TTL, and returns the new count plus the
	// remaining window.
	IncrementRequestCount(ctx context.Context, phone string, window time.Duration) (int64, time.Duration, error)
	IncrementIPCount(ctx context.Context, ip string, window time.Duration) (int64, error)

	// CooldownRemaining returns zero when no cooldown marker is present.
	CooldownRemaining(ctx context.Context, phone string) (time.Duration, error)
	SetCooldown(ctx context.Context, phone string, ttl time.Duration) error

	IsBlocked(ctx context.Context, phone string) (bool, error)
	SetBlock(ctx context.Context, phone string, ttl time.Duration) error

	StoreSignKey(ctx context.Context, key, userID string, ttl time.Duration) error
	// PopSignKey atomically consumes the key, returning an empty string
	// when it is absent or already used.
	PopSignKey(ctx context.Context, key string) (string, error)
}
