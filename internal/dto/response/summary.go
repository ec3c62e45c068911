package response

import (
	"review-cloud/internal/data/entity"
)

// MovieStatsResponse reports average_score as null when no review of the
// movie has a score.
type MovieStatsResponse struct {
	Movie        string   `json:"movie"`
	AverageScore *float64 `json:"average_score"`
	ReviewCount  int      `json:"review_count"`
	ScoredCount  int      `json:"scored_count"`
}

type DatasetSummaryResponse struct {
	TotalRows      int                  `json:"total_rows"`
	NullCounts     map[string]int       `json:"null_counts"`
	MovieCount     int                  `json:"movie_count"`
	DistinctMovies []string             `json:"distinct_movies"`
	Movies         []MovieStatsResponse `json:"movies"`
}

func MovieStatsToResponse(stats entity.MovieStats) MovieStatsResponse {
	resp := MovieStatsResponse{
		Movie:       stats.Movie,
		ReviewCount: stats.SentenceCount,
		ScoredCount: stats.ScoredCount,
	}
	if stats.ScoredCount > 0 {
		avg := stats.AverageScore
		resp.AverageScore = &avg
	}
	return resp
}

func SummaryToResponse(summary *entity.DatasetSummary) DatasetSummaryResponse {
	movies := make([]MovieStatsResponse, len(summary.Movies))
	for i, m := range summary.Movies {
		movies[i] = MovieStatsToResponse(m)
	}

	return DatasetSummaryResponse{
		TotalRows:      summary.TotalRows,
		NullCounts:     summary.NullCounts,
		MovieCount:     len(summary.DistinctMovies),
		DistinctMovies: summary.DistinctMovies,
		Movies:         movies,
	}
}
