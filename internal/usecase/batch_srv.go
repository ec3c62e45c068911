package usecase

import (
	"context"
	"fmt"

	"review-cloud/internal/data/entity"
	"review-cloud/internal/render"

	"go.uber.org/zap"
)

// RunTargets analyzes each target in order and shows its clouds. The first
// error stops the run.
func RunTargets(
	ctx context.Context,
	cloud CloudService,
	displayer render.Displayer,
	targets []entity.Target,
	topN int,
	log *zap.Logger,
) ([]*entity.CloudResult, error) {
	results := make([]*entity.CloudResult, 0, len(targets))

	for _, target := range targets {
		result, err := cloud.Analyze(ctx, target, topN)
		if err != nil {
			return results, fmt.Errorf("analyze %q: %w", target.Title, err)
		}

		log.Info("Top words before stopword removal",
			zap.String("movie", target.Title),
			zap.Any("words", result.Raw),
		)
		log.Info("Top words after stopword removal",
			zap.String("movie", target.Title),
			zap.Any("words", result.Filtered),
		)

		variants := []entity.CloudVariant{entity.VariantFiltered}
		if target.RenderUnfiltered {
			variants = append([]entity.CloudVariant{entity.VariantRaw}, variants...)
		}

		for _, variant := range variants {
			img, err := cloud.Render(ctx, result, variant)
			if err != nil {
				return results, err
			}

			name := target.Title
			if variant == entity.VariantRaw {
				name += " raw"
			}
			if err := displayer.Show(name, img); err != nil {
				return results, fmt.Errorf("show %s cloud for %q: %w", variant, target.Title, err)
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// LogSummary writes the dataset overview the way the exploration step prints it.
func LogSummary(log *zap.Logger, summary *entity.DatasetSummary) {
	log.Info("Dataset loaded",
		zap.Int("rows", summary.TotalRows),
		zap.Any("null_counts", summary.NullCounts),
	)
	log.Info("Distinct movies",
		zap.Int("count", len(summary.DistinctMovies)),
		zap.Strings("titles", summary.DistinctMovies),
	)
	for _, m := range summary.Movies {
		avg := zap.Float64("average_score", m.AverageScore)
		if m.ScoredCount == 0 {
			avg = zap.Skip()
		}
		log.Info("Movie stats",
			zap.String("movie", m.Movie),
			avg,
			zap.Int("review_count", m.SentenceCount),
		)
	}
}
