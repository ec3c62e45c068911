package wire

import (
	"review-cloud/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/summary - dataset overview and per-movie stats
	r.Get("/api/summary", reviewHandler.GetSummary)

	// GET /api/movies/stats?title= - one movie's average score and review count
	r.Get("/api/movies/stats", reviewHandler.GetMovieStats)
}
