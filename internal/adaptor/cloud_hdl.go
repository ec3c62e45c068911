package adaptor

import (
	"encoding/json"
	"net/http"

	"review-cloud/internal/dto/request"
	"review-cloud/internal/usecase"
	"review-cloud/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CloudHandler struct {
	service usecase.CloudService
	log     *zap.Logger
}

func NewCloudHandler(service usecase.CloudService, log *zap.Logger) *CloudHandler {
	return &CloudHandler{
		service: service,
		log:     log.With(zap.String("handler", "cloud")),
	}
}

// CreateCloud handles POST /api/clouds
func (h *CloudHandler) CreateCloud(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCloudRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cloud, err := h.service.CreateCloud(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create cloud")
		return
	}

	utils.ResponseCreated(w, "success", cloud)
}

// ListClouds handles GET /api/clouds
func (h *CloudHandler) ListClouds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(query.Get("page"), query.Get("per_page"))

	clouds, err := h.service.ListClouds(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "list clouds")
		return
	}

	utils.ResponseSuccess(w, "success", clouds)
}

// GetCloud handles GET /api/clouds/{id}
func (h *CloudHandler) GetCloud(w http.ResponseWriter, r *http.Request) {
	cloudID := chi.URLParam(r, "id")

	cloud, err := h.service.GetCloud(r.Context(), cloudID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get cloud")
		return
	}

	utils.ResponseSuccess(w, "success", cloud)
}

// GetCloudImage handles GET /api/clouds/{id}/image.png?variant=filtered|raw
func (h *CloudHandler) GetCloudImage(w http.ResponseWriter, r *http.Request) {
	cloudID := chi.URLParam(r, "id")
	variant := r.URL.Query().Get("variant")

	img, err := h.service.GetCloudImage(r.Context(), cloudID, variant)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get cloud image")
		return
	}

	if err := utils.ResponsePNG(w, img); err != nil {
		h.log.Warn("Failed to stream cloud image", zap.Error(err), zap.String("cloud_id", cloudID))
	}
}
