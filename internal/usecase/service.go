package usecase

import (
	"review-cloud/internal/data/repository"
	"review-cloud/internal/nlp"
	"review-cloud/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Review ReviewService
	Cloud  CloudService
}

func NewService(
	repo *repository.Repository,
	analyzer nlp.Analyzer,
	renderer CloudRenderer,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Review: NewReviewService(repo, log),
		Cloud:  NewCloudService(repo, analyzer, renderer, config.Cloud.TopN, config.Cloud.StoreLimit, log),
	}
}
