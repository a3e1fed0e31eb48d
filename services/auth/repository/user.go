package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vndocs/authcore/internal/pkg/apperrors"
	"github.com/vndocs/authcore/internal/pkg/models"
)

const userColumns = `id, email, password, full_name, phone, role, is_active, is_verify,
		otp_code, otp_exp, otp_retry, created_at, updated_at`

// getUserByField is a helper function to get a user by a specific field
func (r *AuthRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByPhone retrieves a user by phone number
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserByField(ctx, "phone", phone)
}

// GetUserByEmailOrPhone retrieves a user by either identifier
func (r *AuthRepo) GetUserByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 OR phone = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new user in the database
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, password, full_name, phone, role,
			is_active, is_verify, otp_retry, created_at, updated_at
		) VALUES (:id, :email, :password, :full_name, :phone, :role,
			:is_active, :is_verify, :otp_retry, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdatePassword replaces the stored credential hash
func (r *AuthRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// MarkVerified flips the is_verify flag after a completed OTP round-trip
func (r *AuthRepo) MarkVerified(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET is_verify = true, updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	return nil
}

// SetOTPState mirrors a freshly issued code onto the user row and resets
// the retry counter.
func (r *AuthRepo) SetOTPState(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET otp_code = $1, otp_exp = $2, otp_retry = 0, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, code, expiresAt, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set OTP state: %w", err)
	}

	return nil
}

// ClearOTPState wipes the durable OTP fields after a successful verification
func (r *AuthRepo) ClearOTPState(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET otp_code = NULL, otp_exp = NULL, otp_retry = 0, updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear OTP state: %w", err)
	}

	return nil
}

// IncrementOTPRetry bumps the durable retry counter atomically and returns
// the new value.
func (r *AuthRepo) IncrementOTPRetry(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		UPDATE users
		SET otp_retry = otp_retry + 1, updated_at = $1
		WHERE id = $2
		RETURNING otp_retry
	`
	var retry int
	err := r.db.QueryRowContext(ctx, query, time.Now(), userID).Scan(&retry)
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP retry: %w", err)
	}

	return retry, nil
}
