package repository

import (
	"review-cloud/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Review ReviewRepository
}

// NewCSVRepository serves reviews from a delimited file.
func NewCSVRepository(path string, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewCSVReviewRepository(path, log),
	}
}

// NewPostgresRepository serves reviews from Postgres.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewPostgresReviewRepository(db, log),
	}
}
