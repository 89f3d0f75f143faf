package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/markazhub/markaz/internal/pkg/database"
)

// AuthRepo implements the auth service's Postgres-backed account store
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{db: db}
}

// OTPRepo implements the Redis-backed expiring challenge cache
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}
