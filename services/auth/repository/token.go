package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/vndocs/authcore/internal/pkg/constants"
	"github.com/vndocs/authcore/internal/pkg/models"
)

// StoreTokenRecord writes a token record keyed by jti, expiring with the
// token itself.
func (r *AuthRepo) StoreTokenRecord(ctx context.Context, jti string, record *models.TokenRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal token record: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTokenRecord, jti)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store token record in Redis: %w", err)
	}

	return nil
}

// GetTokenRecord retrieves a token record by jti. A missing key yields a
// nil record, not an error; a malformed value is reported as an error so
// the caller can treat the token as invalid.
func (r *AuthRepo) GetTokenRecord(ctx context.Context, jti string) (*models.TokenRecord, error) {
	key := fmt.Sprintf(constants.KeyTokenRecord, jti)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token record from Redis: %w", err)
	}

	var record models.TokenRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token record: %w", err)
	}

	return &record, nil
}

// DeleteTokenRecord removes a token record, revoking the token
func (r *AuthRepo) DeleteTokenRecord(ctx context.Context, jti string) error {
	key := fmt.Sprintf(constants.KeyTokenRecord, jti)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete token record from Redis: %w", err)
	}

	return nil
}
