package repository

import (
	"context"

	"review-cloud/internal/data/entity"
)

// ReviewRepository reads the review dataset. Implementations return rows in
// source order.
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
	// FindByMovie returns rows whose movie field equals movie exactly.
	FindByMovie(ctx context.Context, movie string) ([]entity.Review, error)
}

func filterByMovie(reviews []entity.Review, movie string) []entity.Review {
	var out []entity.Review
	for _, r := range reviews {
		if r.Movie == movie {
			out = append(out, r)
		}
	}
	return out
}
