package entity

// MovieStats mirrors a groupby over the movie column. AverageScore is only
// meaningful when ScoredCount > 0.
type MovieStats struct {
	Movie         string
	AverageScore  float64
	ScoredCount   int
	SentenceCount int
}

type DatasetSummary struct {
	TotalRows      int
	NullCounts     map[string]int
	DistinctMovies []string
	Movies         []MovieStats
}
