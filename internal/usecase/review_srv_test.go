package usecase

import (
	"context"
	"testing"

	"review-cloud/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func score(f float64) *float64 { return &f }

func TestSummarize(t *testing.T) {
	reviews := []entity.Review{
		{Movie: "B", Sentence: "좋다", Score: score(1)},
		{Movie: "A", Sentence: "별로", Score: score(2)},
		{Movie: "B", Sentence: "", Score: score(2)},
		{Movie: "B", Sentence: "그냥", Score: score(2)},
		{Movie: "", Sentence: "제목 없음", Score: nil},
	}

	summary := Summarize(reviews)

	assert.Equal(t, 5, summary.TotalRows)
	assert.Equal(t, map[string]int{"movie": 1, "sentence": 1, "score": 1}, summary.NullCounts)
	assert.Equal(t, []string{"B", "A"}, summary.DistinctMovies)
	assert.Equal(t, []entity.MovieStats{
		{Movie: "A", AverageScore: 2, ScoredCount: 1, SentenceCount: 1},
		{Movie: "B", AverageScore: 1.67, ScoredCount: 3, SentenceCount: 2},
	}, summary.Movies)
}

func TestSummarizeUnscoredMovie(t *testing.T) {
	summary := Summarize([]entity.Review{
		{Movie: "A", Sentence: "좋다"},
		{Movie: "A", Sentence: "별로"},
	})

	require.Len(t, summary.Movies, 1)
	assert.Equal(t, 0, summary.Movies[0].ScoredCount)
	assert.Zero(t, summary.Movies[0].AverageScore)
	assert.Equal(t, 2, summary.Movies[0].SentenceCount)
	assert.Equal(t, 2, summary.NullCounts["score"])
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalRows)
	assert.Empty(t, summary.DistinctMovies)
	assert.Empty(t, summary.Movies)
	assert.Equal(t, 0, summary.NullCounts["score"])
}

func TestReviewServiceSummary(t *testing.T) {
	svc := NewReviewService(newTestRepo(t, reviewFixture), zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TotalRows)
	assert.Equal(t, []string{owl, panther}, summary.DistinctMovies)
	require.Len(t, summary.Movies, 2)

	// groups are ordered by title
	assert.Equal(t, panther, summary.Movies[0].Movie)
	assert.Equal(t, 7.0, summary.Movies[0].AverageScore)
	assert.Equal(t, 1, summary.Movies[0].SentenceCount)

	assert.Equal(t, owl, summary.Movies[1].Movie)
	assert.Equal(t, 7.0, summary.Movies[1].AverageScore)
	assert.Equal(t, 2, summary.Movies[1].ScoredCount)
	assert.Equal(t, 3, summary.Movies[1].SentenceCount)
}

func TestReviewServiceGetMovieStats(t *testing.T) {
	svc := NewReviewService(newTestRepo(t, reviewFixture), zap.NewNop())
	ctx := context.Background()

	stats, err := svc.GetMovieStats(ctx, owl)
	require.NoError(t, err)
	assert.Equal(t, owl, stats.Movie)
	assert.Equal(t, 3, stats.SentenceCount)

	_, err = svc.GetMovieStats(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetMovieStats(ctx, "없는 영화")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewServiceMissingSource(t *testing.T) {
	svc := NewReviewService(newTestRepo(t, "movie,sentence\n"), zap.NewNop())

	_, err := svc.Summary(context.Background())
	assert.ErrorContains(t, err, `missing column "score"`)
}
