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

// CreateSession inserts one ledger row for a login event
func (r *AuthRepo) CreateSession(ctx context.Context, session *models.SessionDevice) error {
	session.ID = uuid.New()
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	query := `
		INSERT INTO session_devices (id, jti, jti_rf, exp, user_agent, device_name,
			revoked, user_id, created_at, updated_at
		) VALUES (:id, :jti, :jti_rf, :exp, :user_agent, :device_name,
			:revoked, :user_id, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// GetSessionByRefreshJTI retrieves the ledger row for a refresh token
func (r *AuthRepo) GetSessionByRefreshJTI(ctx context.Context, jtiRF string) (*models.SessionDevice, error) {
	query := `
		SELECT id, jti, jti_rf, exp, user_agent, device_name, revoked, user_id, created_at, updated_at
		FROM session_devices
		WHERE jti_rf = $1
	`

	var session models.SessionDevice
	err := r.db.GetContext(ctx, &session, query, jtiRF)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// UpdateAccessJTI repoints the session row at the newly minted access token
func (r *AuthRepo) UpdateAccessJTI(ctx context.Context, jtiRF, jti string) error {
	query := `
		UPDATE session_devices
		SET jti = $1, updated_at = $2
		WHERE jti_rf = $3
	`
	_, err := r.db.ExecContext(ctx, query, jti, time.Now(), jtiRF)
	if err != nil {
		return fmt.Errorf("failed to update session access jti: %w", err)
	}

	return nil
}

// RevokeSession marks the session row revoked; rows are never deleted
func (r *AuthRepo) RevokeSession(ctx context.Context, jtiRF string) error {
	query := `
		UPDATE session_devices
		SET revoked = true, updated_at = $1
		WHERE jti_rf = $2
	`
	_, err := r.db.ExecContext(ctx, query, time.Now(), jtiRF)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// GetActiveSessionsByUser lists all non-revoked sessions for a user
func (r *AuthRepo) GetActiveSessionsByUser(ctx context.Context, userID uuid.UUID) ([]models.SessionDevice, error) {
	query := `
		SELECT id, jti, jti_rf, exp, user_agent, device_name, revoked, user_id, created_at, updated_at
		FROM session_devices
		WHERE user_id = $1 AND revoked = false
	`

	var sessions []models.SessionDevice
	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// DeleteExpiredSessions removes ledger rows whose refresh expiry predates
// the cutoff. The exp column stores epoch milliseconds as text.
func (r *AuthRepo) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM session_devices
		WHERE CAST(exp AS BIGINT) < $1
	`
	result, err := r.db.ExecContext(ctx, query, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted sessions: %w", err)
	}

	return deleted, nil
}

// RevokeAllUserSessions bulk-marks every non-revoked session of a user as
// revoked in a single statement.
func (r *AuthRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE session_devices
		SET revoked = true, updated_at = $1
		WHERE user_id = $2 AND revoked = false
	`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to revoke user sessions: %w", err)
	}

	return nil
}
