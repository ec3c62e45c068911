package entity

import (
	"time"

	"github.com/google/uuid"
)

// CloudResult holds both frequency tables computed for one movie.
// Raw ignores stopwords, Filtered applies them.
type CloudResult struct {
	ID          uuid.UUID
	Movie       string
	Stopwords   []string
	ReviewCount int
	TokenCount  int
	Raw         []WordCount
	Filtered    []WordCount
	CreatedAt   time.Time
}

type CloudVariant string

const (
	VariantFiltered CloudVariant = "filtered"
	VariantRaw      CloudVariant = "raw"
)

// Table returns the frequency table for v; unknown variants yield nil.
func (r *CloudResult) Table(v CloudVariant) []WordCount {
	switch v {
	case VariantFiltered:
		return r.Filtered
	case VariantRaw:
		return r.Raw
	}
	return nil
}
