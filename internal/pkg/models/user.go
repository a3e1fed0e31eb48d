package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User represents an account in the users table. The otp_* columns are the
// durable fallback copy of the ephemeral OTP state held in redis.
type User struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	Email     string         `json:"email" db:"email"`
	Password  string         `json:"-" db:"password"`
	FullName  string         `json:"full_name" db:"full_name"`
	Phone     string         `json:"phone" db:"phone"`
	Role      string         `json:"role" db:"role"`
	IsActive  bool           `json:"is_active" db:"is_active"`
	IsVerify  bool           `json:"is_verify" db:"is_verify"`
	OTPCode   sql.NullString `json:"-" db:"otp_code"`
	OTPExp    sql.NullTime   `json:"-" db:"otp_exp"`
	OTPRetry  int            `json:"-" db:"otp_retry"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// PublicUser is the projection returned to callers after login.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone"`
}

// Public returns the caller-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		Phone:    u.Phone,
	}
}
