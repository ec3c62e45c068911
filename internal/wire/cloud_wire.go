package wire

import (
	"review-cloud/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCloud(r chi.Router, cloudHandler *adaptor.CloudHandler) {
	r.Route("/api/clouds", func(r chi.Router) {
		r.Post("/", cloudHandler.CreateCloud)                 // POST /api/clouds
		r.Get("/", cloudHandler.ListClouds)                   // GET /api/clouds
		r.Get("/{id}", cloudHandler.GetCloud)                 // GET /api/clouds/{id}
		r.Get("/{id}/image.png", cloudHandler.GetCloudImage) // GET /api/clouds/{id}/image.png
	})
}
