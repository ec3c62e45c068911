package repository

import (
	"context"
	"fmt"

	"review-cloud/internal/data/entity"
	"review-cloud/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgReviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPostgresReviewRepository reads table movie_reviews(id, movie, sentence, score).
// id is the ordering column that keeps rows in source order, as a BIGSERIAL
// primary key filled in file order on import.
func NewPostgresReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &pgReviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_pg")),
	}
}

func (r *pgReviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	query := `
		SELECT movie, sentence, score
		FROM movie_reviews
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	return r.scanReviews(rows)
}

func (r *pgReviewRepository) FindByMovie(ctx context.Context, movie string) ([]entity.Review, error) {
	query := `
		SELECT movie, sentence, score
		FROM movie_reviews
		WHERE movie = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, movie)
	if err != nil {
		r.log.Error("Failed to find reviews by movie",
			zap.Error(err),
			zap.String("movie", movie),
		)
		return nil, fmt.Errorf("find reviews by movie %q: %w", movie, err)
	}

	return r.scanReviews(rows)
}

func (r *pgReviewRepository) scanReviews(rows pgx.Rows) ([]entity.Review, error) {
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var (
			movie, sentence *string
			review          entity.Review
		)
		if err := rows.Scan(&movie, &sentence, &review.Score); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		if movie != nil {
			review.Movie = *movie
		}
		if sentence != nil {
			review.Sentence = *sentence
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate review rows", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
