package usecase

import (
	"context"
	"fmt"
	"sort"

	"review-cloud/internal/data/entity"
	"review-cloud/internal/data/repository"
	"review-cloud/pkg/utils"

	"go.uber.org/zap"
)

const (
	columnMovie    = "movie"
	columnSentence = "sentence"
	columnScore    = "score"
)

type ReviewService interface {
	// Summary reports row and null counts, distinct titles, and per-movie
	// average score and review count.
	Summary(ctx context.Context) (*entity.DatasetSummary, error)
	GetMovieStats(ctx context.Context, movie string) (*entity.MovieStats, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Summary(ctx context.Context) (*entity.DatasetSummary, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	summary := Summarize(reviews)

	s.log.Debug("Dataset summarized",
		zap.Int("rows", summary.TotalRows),
		zap.Int("movies", len(summary.DistinctMovies)),
		zap.Any("nulls", summary.NullCounts),
	)

	return summary, nil
}

func (s *reviewService) GetMovieStats(ctx context.Context, movie string) (*entity.MovieStats, error) {
	if movie == "" {
		return nil, fmt.Errorf("%w movie title: empty", ErrInvalidInput)
	}

	reviews, err := s.repo.Review.FindByMovie(ctx, movie)
	if err != nil {
		s.log.Error("Failed to load movie reviews", zap.Error(err), zap.String("movie", movie))
		return nil, fmt.Errorf("load reviews for %q: %w", movie, err)
	}

	summary := Summarize(reviews)
	if len(summary.Movies) == 0 {
		return nil, fmt.Errorf("movie %q %w", movie, ErrNotFound)
	}

	return &summary.Movies[0], nil
}

// Summarize computes the dataset summary over reviews. Null movie titles are
// counted but excluded from distinct titles and per-movie stats; per-movie
// stats are ordered by title.
func Summarize(reviews []entity.Review) *entity.DatasetSummary {
	summary := &entity.DatasetSummary{
		TotalRows: len(reviews),
		NullCounts: map[string]int{
			columnMovie:    0,
			columnSentence: 0,
			columnScore:    0,
		},
	}

	type aggregate struct {
		sum       float64
		scored    int
		sentences int
	}
	groups := make(map[string]*aggregate)

	for _, r := range reviews {
		if !r.HasSentence() {
			summary.NullCounts[columnSentence]++
		}
		if r.Score == nil {
			summary.NullCounts[columnScore]++
		}
		if r.Movie == "" {
			summary.NullCounts[columnMovie]++
			continue
		}

		agg, ok := groups[r.Movie]
		if !ok {
			agg = &aggregate{}
			groups[r.Movie] = agg
			summary.DistinctMovies = append(summary.DistinctMovies, r.Movie)
		}
		if r.Score != nil {
			agg.sum += *r.Score
			agg.scored++
		}
		if r.HasSentence() {
			agg.sentences++
		}
	}

	titles := make([]string, 0, len(groups))
	for title := range groups {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		agg := groups[title]
		stats := entity.MovieStats{
			Movie:         title,
			ScoredCount:   agg.scored,
			SentenceCount: agg.sentences,
		}
		if agg.scored > 0 {
			stats.AverageScore = utils.Round2(agg.sum / float64(agg.scored))
		}
		summary.Movies = append(summary.Movies, stats)
	}

	return summary
}
