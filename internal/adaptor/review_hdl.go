package adaptor

import (
	"net/http"

	"review-cloud/internal/dto/response"
	"review-cloud/internal/usecase"
	"review-cloud/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetSummary handles GET /api/summary
func (h *ReviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		handleServiceError(w, r, h.log, err, "get summary")
		return
	}

	utils.ResponseSuccess(w, "success", response.SummaryToResponse(summary))
}

// GetMovieStats handles GET /api/movies/stats?title=
func (h *ReviewHandler) GetMovieStats(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		utils.ResponseBadRequest(w, "Movie title is required", nil)
		return
	}

	stats, err := h.service.GetMovieStats(r.Context(), title)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movie stats")
		return
	}

	utils.ResponseSuccess(w, "success", response.MovieStatsToResponse(*stats))
}
