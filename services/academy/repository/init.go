package repository

import (
	"github.com/jmoiron/sqlx"
)

// AcademyRepo implements the Postgres-backed admin data layer
type AcademyRepo struct {
	db *sqlx.DB
}

// NewAcademyRepo creates a new academy repository
func NewAcademyRepo(db *sqlx.DB) *AcademyRepo {
	return &AcademyRepo{db: db}
}
