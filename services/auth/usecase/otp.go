package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vndocs/authcore/internal/pkg/apperrors"
	"github.com/vndocs/authcore/internal/pkg/logger"
	"github.com/vndocs/authcore/internal/pkg/models"
	"github.com/vndocs/authcore/internal/utils"
)

// CreateOTP issues a verification code for a phone number, enforcing the
// per-phone window, the per-IP daily limit, and the cooldown marker, in
// that order. The code is mailed to the user's registered address; a failed
// send aborts the whole issuance since an unnotified user cannot verify.
func (u *AuthUC) CreateOTP(ctx context.Context, phone, requestIP string) (*models.OTPResult, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, err.Error())
	}

	window := time.Duration(u.cfg.OTP.RequestWindowSeconds) * time.Second
	count, remaining, err := u.otpRepo.IncrementRequestCount(ctx, normalized, window)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if count > int64(u.cfg.OTP.MaxRequests) {
		return nil, fmt.Errorf("%w: too many OTP requests, try again in %d seconds",
			apperrors.ErrRateLimited, int(remaining.Seconds()))
	}

	ipCount, err := u.otpRepo.IncrementIPCount(ctx, requestIP, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if ipCount > int64(u.cfg.OTP.IPDailyLimit) {
		return nil, fmt.Errorf("%w: daily OTP limit reached for this address", apperrors.ErrRateLimited)
	}

	cooldown, err := u.otpRepo.CooldownRemaining(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if cooldown > 0 {
		return nil, fmt.Errorf("%w: please wait %d seconds before requesting a new code",
			apperrors.ErrRateLimited, int(cooldown.Seconds()))
	}

	user, err := u.userRepo.GetUserByPhone(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: no account for this phone number", apperrors.ErrNotFound)
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	expiry := time.Duration(u.cfg.OTP.ExpirySeconds) * time.Second
	expiresAt := time.Now().Add(expiry)

	if err := u.otpRepo.StoreCode(ctx, normalized, code, expiry); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	// Durable fallback copy; also resets the retry counter.
	if err := u.userRepo.SetOTPState(ctx, user.ID, code, expiresAt); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in %d seconds.",
		code, u.cfg.OTP.ExpirySeconds)
	if err := u.mailGW.Send(ctx, user.Email, subject, body); err != nil {
		// The user was never notified; do not leave a usable code behind.
		if delErr := u.otpRepo.DeleteCode(ctx, normalized); delErr != nil {
			logger.WithError(delErr).Warn("otp: failed to delete unmailed code")
		}
		if clrErr := u.userRepo.ClearOTPState(ctx, user.ID); clrErr != nil {
			logger.WithError(clrErr).Warn("otp: failed to clear unmailed OTP state")
		}
		return nil, fmt.Errorf("%w: failed to send verification code", apperrors.ErrInternal)
	}

	cooldownTTL := time.Duration(u.cfg.OTP.CooldownSeconds) * time.Second
	if err := u.otpRepo.SetCooldown(ctx, normalized, cooldownTTL); err != nil {
		logger.WithError(err).Warn("otp: failed to set cooldown marker")
	}

	logger.Info("OTP issued",
		logger.String("phone", utils.MaskPhone(normalized)),
		logger.Int("expires_in", u.cfg.OTP.ExpirySeconds))

	return &models.OTPResult{
		Message:   "verification code sent",
		ExpiresIn: u.cfg.OTP.ExpirySeconds,
	}, nil
}

// VerifyOTP checks a submitted code against the key-value store, falling
// back to the durable copy on the user row. Three consecutive failures set
// a block marker that outlasts the code's own TTL. Success mints a one-shot
// sign key consumed by FinalizeRegister or ResetPassword.
func (u *AuthUC) VerifyOTP(ctx context.Context, phone, code string) (*models.VerifyOTPResult, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, err.Error())
	}

	user, err := u.userRepo.GetUserByPhone(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: no account for this phone number", apperrors.ErrNotFound)
	}

	blocked, err := u.otpRepo.IsBlocked(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if blocked {
		return nil, fmt.Errorf("%w: verification is temporarily blocked", apperrors.ErrRateLimited)
	}

	stored, err := u.otpRepo.GetCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if stored == "" {
		// Fast-store entry expired or was evicted; the durable copy must
		// then honor its own expiry field.
		if !user.OTPCode.Valid || user.OTPCode.String == "" {
			return nil, fmt.Errorf("%w: no OTP request found", apperrors.ErrNotFound)
		}
		if !user.OTPExp.Valid || time.Now().After(user.OTPExp.Time) {
			return nil, apperrors.ErrExpiredOTP
		}
		stored = user.OTPCode.String
	}

	if stored != code {
		retry, err := u.userRepo.IncrementOTPRetry(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
		}
		if retry >= u.cfg.OTP.MaxRetries {
			blockTTL := time.Duration(u.cfg.OTP.BlockSeconds) * time.Second
			if err := u.otpRepo.SetBlock(ctx, normalized, blockTTL); err != nil {
				logger.WithError(err).Warn("otp: failed to set block marker")
			}
			return nil, fmt.Errorf("%w: too many failed attempts, blocked for %d minutes",
				apperrors.ErrRateLimited, u.cfg.OTP.BlockSeconds/60)
		}
		return nil, fmt.Errorf("%w: %d attempts remaining",
			apperrors.ErrInvalidOTP, u.cfg.OTP.MaxRetries-retry)
	}

	if err := u.otpRepo.DeleteCode(ctx, normalized); err != nil {
		logger.WithError(err).Warn("otp: failed to delete verified code")
	}
	if err := u.userRepo.ClearOTPState(ctx, user.ID); err != nil {
		logger.WithError(err).Warn("otp: failed to clear durable OTP state")
	}

	signKey := uuid.New().String()
	signKeyTTL := time.Duration(u.cfg.OTP.SignKeyTTLSeconds) * time.Second
	if err := u.otpRepo.StoreSignKey(ctx, signKey, user.ID.String(), signKeyTTL); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	logger.Info("OTP verified", logger.String("user_id", user.ID.String()))

	return &models.VerifyOTPResult{
		SignKey: signKey,
		UserID:  user.ID.String(),
	}, nil
}

// FinalizeRegister consumes a sign key and marks the account verified.
func (u *AuthUC) FinalizeRegister(ctx context.Context, signKey string) error {
	userID, err := u.resolveSignKey(ctx, signKey)
	if err != nil {
		return err
	}

	if err := u.userRepo.MarkVerified(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	logger.Info("registration finalized", logger.String("user_id", userID.String()))
	return nil
}

// ResetPassword consumes a sign key, stores the new credential hash, and
// revokes every session belonging to the user: all devices are killed on a
// password reset.
func (u *AuthUC) ResetPassword(ctx context.Context, signKey, newPassword string) error {
	userID, err := u.resolveSignKey(ctx, signKey)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if err := u.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if err := u.userRepo.MarkVerified(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	sessions, err := u.sessionRepo.GetActiveSessionsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	for _, session := range sessions {
		if session.JTIRefresh != "" {
			if err := u.tokenRepo.DeleteTokenRecord(ctx, session.JTIRefresh); err != nil {
				logger.WithError(err).Warn("reset: failed to delete refresh token record")
			}
		}
		if session.JTI != "" {
			if err := u.tokenRepo.DeleteTokenRecord(ctx, session.JTI); err != nil {
				logger.WithError(err).Warn("reset: failed to delete access token record")
			}
		}
	}
	if err := u.sessionRepo.RevokeAllUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	logger.Info("password reset, all sessions revoked",
		logger.String("user_id", userID.String()),
		logger.Int("sessions", len(sessions)))

	return nil
}

func (u *AuthUC) resolveSignKey(ctx context.Context, signKey string) (uuid.UUID, error) {
	raw, err := u.otpRepo.PopSignKey(ctx, signKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: sign key not found or already used", apperrors.ErrNotFound)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed sign key mapping", apperrors.ErrNotFound)
	}

	return userID, nil
}
