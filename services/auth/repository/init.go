package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/vndocs/authcore/internal/pkg/database"
	"github.com/vndocs/authcore/internal/pkg/models"
)

// AuthRepo implements the auth repository interfaces over postgres (users,
// session ledger) and redis (token records, OTP state).
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
