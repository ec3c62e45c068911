package adaptor

import (
	"errors"
	"net/http"

	"review-cloud/internal/render"
	"review-cloud/internal/usecase"
	"review-cloud/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
	Cloud  *CloudHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, log),
		Cloud:  NewCloudHandler(service.Cloud, log),
	}
}

// handleServiceError maps service errors to HTTP responses by their
// sentinel. Error text carries user input, so it is never matched.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", utils.GetRequestID(r.Context())),
	}

	switch {
	case errors.Is(err, render.ErrNoWords):
		log.Warn(operation+" failed - empty table", fields...)
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", fields...)
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, fields...)
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, fields...)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
