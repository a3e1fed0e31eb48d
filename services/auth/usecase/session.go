package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vndocs/authcore/internal/pkg/apperrors"
	"github.com/vndocs/authcore/internal/pkg/constants"
	"github.com/vndocs/authcore/internal/pkg/logger"
	"github.com/vndocs/authcore/internal/pkg/models"
)

// Login mints a token pair for an already-authenticated user and records
// the device session. Redis records are written before the ledger row so a
// mid-sequence failure leaves only self-expiring key-value orphans, never a
// ledger row with no matching live token.
func (u *AuthUC) Login(ctx context.Context, user *models.User, portal, userAgent, deviceName string) (*models.LoginResult, error) {
	switch portal {
	case constants.PortalAdmin:
		if user.Role != constants.RoleAdmin {
			return nil, fmt.Errorf("%w: admin portal requires the admin role", apperrors.ErrForbidden)
		}
	default:
		if user.Role == constants.RoleAdmin {
			return nil, fmt.Errorf("%w: admin accounts must use the admin portal", apperrors.ErrForbidden)
		}
	}

	jti := uuid.New().String()
	jtiRF := uuid.New().String()

	accessTTL := time.Duration(u.cfg.JWT.AccessExpiration) * time.Minute
	refreshTTL := time.Duration(u.cfg.JWT.RefreshExpiration) * time.Minute

	accessToken, accessExp, err := u.issuer.GenerateAccessToken(user, jti)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, refreshExp, err := u.issuer.GenerateRefreshToken(user.ID.String(), jtiRF)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	accessRecord := &models.TokenRecord{
		Exp:    accessExp,
		Type:   constants.TokenKindAccess,
		Parent: jtiRF,
		UserID: user.ID.String(),
	}
	if err := u.tokenRepo.StoreTokenRecord(ctx, jti, accessRecord, accessTTL); err != nil {
		return nil, fmt.Errorf("failed to store access token record: %w", err)
	}

	refreshRecord := &models.TokenRecord{
		Exp:    refreshExp,
		Type:   constants.TokenKindRefresh,
		Parent: "",
		UserID: user.ID.String(),
	}
	if err := u.tokenRepo.StoreTokenRecord(ctx, jtiRF, refreshRecord, refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token record: %w", err)
	}

	session := &models.SessionDevice{
		JTI:        jti,
		JTIRefresh: jtiRF,
		Exp:        strconv.FormatInt(refreshExp*1000, 10),
		UserAgent:  userAgent,
		DeviceName: deviceName,
		UserID:     user.ID,
	}
	if err := u.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logger.Info("user logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("portal", portal),
		logger.String("device", deviceName))

	return &models.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

// RefreshToken re-derives the session from a refresh token and mints a new
// access token. The refresh token itself is never rotated: the caller gets
// back the exact string it presented. All internal failure causes collapse
// to ErrInvalidToken or ErrSessionExpired so a caller cannot tell which
// check rejected it.
func (u *AuthUC) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := u.issuer.Verify(refreshToken)
	if err != nil || claims.Type != constants.TokenKindRefresh {
		return nil, apperrors.ErrInvalidToken
	}

	jtiRF := claims.ID
	userID := claims.Subject

	record, err := u.tokenRepo.GetTokenRecord(ctx, jtiRF)
	if err != nil {
		logger.WithError(err).Warn("refresh: token record lookup failed")
		return nil, apperrors.ErrInvalidToken
	}

	if record != nil {
		userID = record.UserID
	} else {
		// The fast store has expired or evicted the record; the ledger is
		// the fallback source of truth and carries the extra revocation
		// and expiry checks.
		session, err := u.sessionRepo.GetSessionByRefreshJTI(ctx, jtiRF)
		if err != nil || session.Revoked {
			return nil, apperrors.ErrSessionExpired
		}
		expMillis, err := strconv.ParseInt(session.Exp, 10, 64)
		if err != nil || time.Now().UnixMilli() > expMillis {
			return nil, apperrors.ErrSessionExpired
		}
		userID = session.UserID.String()
	}

	// Always re-fetch: role, name, or phone may have changed since login.
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	jti := uuid.New().String()
	accessTTL := time.Duration(u.cfg.JWT.AccessExpiration) * time.Minute

	accessToken, accessExp, err := u.issuer.GenerateAccessToken(user, jti)
	if err != nil {
		logger.WithError(err).Error("refresh: failed to sign access token")
		return nil, apperrors.ErrInvalidToken
	}

	accessRecord := &models.TokenRecord{
		Exp:    accessExp,
		Type:   constants.TokenKindAccess,
		Parent: jtiRF,
		UserID: user.ID.String(),
	}
	if err := u.tokenRepo.StoreTokenRecord(ctx, jti, accessRecord, accessTTL); err != nil {
		logger.WithError(err).Error("refresh: failed to store access token record")
		return nil, apperrors.ErrInvalidToken
	}

	if err := u.sessionRepo.UpdateAccessJTI(ctx, jtiRF, jti); err != nil {
		logger.WithError(err).Error("refresh: failed to update session ledger")
		return nil, apperrors.ErrInvalidToken
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// IsTokenValid reports whether a token record is live. An access record
// with a parent reference is only live while the parent refresh record
// still exists: revoking a refresh token implicitly kills every access
// token descended from it, checked lazily here instead of by a fan-out
// delete. Malformed records are invalid, never an error.
func (u *AuthUC) IsTokenValid(ctx context.Context, jti string) bool {
	record, err := u.tokenRepo.GetTokenRecord(ctx, jti)
	if err != nil || record == nil {
		return false
	}

	if record.Type == constants.TokenKindAccess && record.Parent != "" {
		parent, err := u.tokenRepo.GetTokenRecord(ctx, record.Parent)
		if err != nil || parent == nil {
			return false
		}
	}

	return true
}

// PruneSessions deletes ledger rows whose refresh expiry has passed. The
// token records behind them have long self-expired, so this is pure ledger
// hygiene and safe to run at any time.
func (u *AuthUC) PruneSessions(ctx context.Context) (int64, error) {
	deleted, err := u.sessionRepo.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}

	if deleted > 0 {
		logger.Info("pruned expired sessions", logger.Int64("deleted", deleted))
	}
	return deleted, nil
}

// Logout revokes the session behind a refresh token. Best-effort by
// contract: a missing or malformed token is a no-op and internal failures
// are swallowed after logging, because failing logout must never block a
// client from discarding its credentials.
func (u *AuthUC) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}

	claims, err := u.issuer.Verify(refreshToken)
	if err != nil || claims.Type != constants.TokenKindRefresh {
		return
	}

	if err := u.tokenRepo.DeleteTokenRecord(ctx, claims.ID); err != nil {
		logger.WithError(err).Warn("logout: failed to delete refresh token record")
	}
	if err := u.sessionRepo.RevokeSession(ctx, claims.ID); err != nil {
		logger.WithError(err).Warn("logout: failed to revoke session")
	}
}
