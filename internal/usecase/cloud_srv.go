package usecase

import (
	"context"
	"fmt"
	"image"
	"time"

	"review-cloud/internal/data/entity"
	"review-cloud/internal/data/repository"
	"review-cloud/internal/dto/request"
	"review-cloud/internal/dto/response"
	"review-cloud/internal/nlp"
	"review-cloud/internal/render"
	"review-cloud/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultTopN is how many words a frequency table keeps.
	DefaultTopN = 50
	// DefaultStoreLimit is how many results the service keeps in memory.
	DefaultStoreLimit = 100
)

// keptTags are the parts of speech that reach the frequency tables.
var keptTags = []entity.Tag{entity.TagNoun, entity.TagAdjective}

// CloudRenderer lays out a frequency table as an image.
type CloudRenderer interface {
	Render(freqs []entity.WordCount) (*render.Cloud, error)
}

type CloudService interface {
	// Analyze runs load, clean, tokenize and count for one target and stores
	// the result.
	Analyze(ctx context.Context, target entity.Target, topN int) (*entity.CloudResult, error)
	Render(ctx context.Context, result *entity.CloudResult, variant entity.CloudVariant) (image.Image, error)

	CreateCloud(ctx context.Context, req *request.CreateCloudRequest) (*response.CloudResponse, error)
	GetCloud(ctx context.Context, id string) (*response.CloudResponse, error)
	ListClouds(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CloudSummaryResponse], error)
	GetCloudImage(ctx context.Context, id, variant string) (image.Image, error)
}

type cloudService struct {
	repo     *repository.Repository
	analyzer nlp.Analyzer
	renderer CloudRenderer
	topN     int
	store    *cloudStore
	log      *zap.Logger
}

func NewCloudService(
	repo *repository.Repository,
	analyzer nlp.Analyzer,
	renderer CloudRenderer,
	topN int,
	storeLimit int,
	log *zap.Logger,
) CloudService {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if storeLimit <= 0 {
		storeLimit = DefaultStoreLimit
	}
	return &cloudService{
		repo:     repo,
		analyzer: analyzer,
		renderer: renderer,
		topN:     topN,
		store:    newCloudStore(storeLimit),
		log:      log.With(zap.String("service", "cloud")),
	}
}

func (s *cloudService) Analyze(ctx context.Context, target entity.Target, topN int) (*entity.CloudResult, error) {
	if topN <= 0 {
		topN = s.topN
	}

	reviews, err := s.repo.Review.FindByMovie(ctx, target.Title)
	if err != nil {
		s.log.Error("Failed to load movie reviews",
			zap.Error(err),
			zap.String("movie", target.Title),
		)
		return nil, fmt.Errorf("load reviews for %q: %w", target.Title, err)
	}
	if len(reviews) == 0 {
		return nil, fmt.Errorf("movie %q %w", target.Title, ErrNotFound)
	}

	stopwords := nlp.NewStopwordSet(target.Stopwords)
	raw, filtered := nlp.NewCounter(), nlp.NewCounter()
	tokenCount := 0

	for _, review := range reviews {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !review.HasSentence() {
			continue
		}

		tokens := s.analyzer.Pos(nlp.StripNonHangul(review.Sentence))
		tokenCount += len(tokens)

		raw.AddAll(nlp.SelectWords(tokens, nil, keptTags...))
		filtered.AddAll(nlp.SelectWords(tokens, stopwords, keptTags...))
	}

	result := &entity.CloudResult{
		ID:          uuid.New(),
		Movie:       target.Title,
		Stopwords:   target.Stopwords,
		ReviewCount: len(reviews),
		TokenCount:  tokenCount,
		Raw:         raw.MostCommon(topN),
		Filtered:    filtered.MostCommon(topN),
		CreatedAt:   time.Now(),
	}
	for _, id := range s.store.Put(result) {
		s.log.Debug("Cloud evicted", zap.String("cloud_id", id.String()))
	}

	s.log.Info("Movie analyzed",
		zap.String("cloud_id", result.ID.String()),
		zap.String("movie", result.Movie),
		zap.Int("reviews", result.ReviewCount),
		zap.Int("tokens", tokenCount),
		zap.Int("distinct_raw", raw.Len()),
		zap.Int("distinct_filtered", filtered.Len()),
	)

	return result, nil
}

func (s *cloudService) Render(ctx context.Context, result *entity.CloudResult, variant entity.CloudVariant) (image.Image, error) {
	if variant != entity.VariantFiltered && variant != entity.VariantRaw {
		return nil, fmt.Errorf("%w cloud variant %q", ErrInvalidInput, variant)
	}
	if img, ok := s.store.Image(result.ID, variant); ok {
		return img, nil
	}

	table := result.Table(variant)
	cloud, err := s.renderer.Render(table)
	if err != nil {
		s.log.Error("Failed to render cloud",
			zap.Error(err),
			zap.String("cloud_id", result.ID.String()),
			zap.String("variant", string(variant)),
		)
		return nil, fmt.Errorf("render %s cloud for %q: %w", variant, result.Movie, err)
	}

	s.store.PutImage(result.ID, variant, cloud.Image)

	s.log.Debug("Cloud rendered",
		zap.String("cloud_id", result.ID.String()),
		zap.String("variant", string(variant)),
		zap.Int("placed", len(cloud.Placements)),
		zap.Int("words", len(table)),
	)

	return cloud.Image, nil
}

func (s *cloudService) CreateCloud(ctx context.Context, req *request.CreateCloudRequest) (*response.CloudResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cloud validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	target := entity.Target{
		Title:     req.Movie,
		Stopwords: req.Stopwords,
	}

	result, err := s.Analyze(ctx, target, req.TopN)
	if err != nil {
		return nil, fmt.Errorf("create cloud: %w", err)
	}

	resp := response.CloudToResponse(result)
	return &resp, nil
}

func (s *cloudService) GetCloud(ctx context.Context, id string) (*response.CloudResponse, error) {
	result, err := s.findResult(id)
	if err != nil {
		return nil, err
	}

	resp := response.CloudToResponse(result)
	return &resp, nil
}

func (s *cloudService) ListClouds(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CloudSummaryResponse], error) {
	results := s.store.Newest()
	start, end := utils.PageBounds(len(results), req.Page, req.Limit())

	summaries := make([]response.CloudSummaryResponse, 0, end-start)
	for _, result := range results[start:end] {
		summaries = append(summaries, response.CloudToSummaryResponse(result))
	}

	return response.NewPaginatedResponse(summaries, req.Page, req.Limit(), int64(len(results))), nil
}

func (s *cloudService) GetCloudImage(ctx context.Context, id, variant string) (image.Image, error) {
	result, err := s.findResult(id)
	if err != nil {
		return nil, err
	}

	v := entity.CloudVariant(variant)
	if variant == "" {
		v = entity.VariantFiltered
	}

	return s.Render(ctx, result, v)
}

func (s *cloudService) findResult(id string) (*entity.CloudResult, error) {
	cloudID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w cloud ID format: %w", ErrInvalidInput, err)
	}

	result, ok := s.store.Get(cloudID)
	if !ok {
		return nil, fmt.Errorf("cloud %s %w", id, ErrNotFound)
	}
	return result, nil
}
