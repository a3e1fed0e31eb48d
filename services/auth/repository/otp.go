package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/vndocs/authcore/internal/pkg/constants"
)

// StoreCode persists an OTP code for a phone number with the configured TTL
func (r *AuthRepo) StoreCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyOTPCode, phone)
	if err := r.redisClient.Set(ctx, key, code, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetCode retrieves the OTP code for a phone number, empty when absent
func (r *AuthRepo) GetCode(ctx context.Context, phone string) (string, error) {
	key := fmt.Sprintf(constants.KeyOTPCode, phone)
	code, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	return code, nil
}

// DeleteCode removes the OTP code for a phone number
func (r *AuthRepo) DeleteCode(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyOTPCode, phone)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}

	return nil
}

// IncrementRequestCount bumps the per-phone request counter with the
// store's atomic INCR. The window TTL is seeded on the first increment and
// re-seeded if the key is somehow left without one, so the counter can
// never outlive its window.
func (r *AuthRepo) IncrementRequestCount(ctx context.Context, phone string, window time.Duration) (int64, time.Duration, error) {
	key := fmt.Sprintf(constants.KeyOTPRequests, phone)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to increment request counter: %w", err)
	}

	ttl, err := r.redisClient.TTL(ctx, key)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read request counter TTL: %w", err)
	}

	if count == 1 || ttl < 0 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, 0, fmt.Errorf("failed to seed request counter TTL: %w", err)
		}
		ttl = window
	}

	return count, ttl, nil
}

// IncrementIPCount bumps the per-IP daily counter
func (r *AuthRepo) IncrementIPCount(ctx context.Context, ip string, window time.Duration) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPIPLimit, ip)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment IP counter: %w", err)
	}

	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, fmt.Errorf("failed to seed IP counter TTL: %w", err)
		}
	}

	return count, nil
}

// CooldownRemaining returns the remaining cooldown for a phone, zero when
// no marker is present.
func (r *AuthRepo) CooldownRemaining(ctx context.Context, phone string) (time.Duration, error) {
	key := fmt.Sprintf(constants.KeyOTPCooldown, phone)
	ttl, err := r.redisClient.TTL(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read cooldown TTL: %w", err)
	}
	if ttl < 0 {
		return 0, nil
	}

	return ttl, nil
}

// SetCooldown places the cooldown marker after a successful issuance
func (r *AuthRepo) SetCooldown(ctx context.Context, phone string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyOTPCooldown, phone)
	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to set cooldown marker: %w", err)
	}

	return nil
}

// IsBlocked reports whether the phone is locked out from verification
func (r *AuthRepo) IsBlocked(ctx context.Context, phone string) (bool, error) {
	key := fmt.Sprintf(constants.KeyOTPBlock, phone)
	blocked, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check block marker: %w", err)
	}

	return blocked, nil
}

// SetBlock places the lockout marker. It outlives the OTP code's own TTL.
func (r *AuthRepo) SetBlock(ctx context.Context, phone string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyOTPBlock, phone)
	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to set block marker: %w", err)
	}

	return nil
}

// StoreSignKey maps a one-shot sign key to a user id
func (r *AuthRepo) StoreSignKey(ctx context.Context, key, userID string, ttl time.Duration) error {
	redisKey := fmt.Sprintf(constants.KeySignKey, key)
	if err := r.redisClient.Set(ctx, redisKey, userID, ttl); err != nil {
		return fmt.Errorf("failed to store sign key: %w", err)
	}

	return nil
}

// PopSignKey atomically consumes a sign key (GETDEL), returning the mapped
// user id, or an empty string when the key is absent or already used.
func (r *AuthRepo) PopSignKey(ctx context.Context, key string) (string, error) {
	redisKey := fmt.Sprintf(constants.KeySignKey, key)
	userID, err := r.redisClient.GetDel(ctx, redisKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to pop sign key: %w", err)
	}

	return userID, nil
}
