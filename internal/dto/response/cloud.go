package response

import (
	"time"

	"review-cloud/internal/data/entity"
)

type CloudResponse struct {
	ID          string             `json:"id"`
	Movie       string             `json:"movie"`
	Stopwords   []string           `json:"stopwords"`
	ReviewCount int                `json:"review_count"`
	TokenCount  int                `json:"token_count"`
	Raw         []entity.WordCount `json:"raw"`
	Filtered    []entity.WordCount `json:"filtered"`
	CreatedAt   time.Time          `json:"created_at"`
}

type CloudSummaryResponse struct {
	ID          string    `json:"id"`
	Movie       string    `json:"movie"`
	ReviewCount int       `json:"review_count"`
	TopWord     string    `json:"top_word,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func CloudToResponse(result *entity.CloudResult) CloudResponse {
	return CloudResponse{
		ID:          result.ID.String(),
		Movie:       result.Movie,
		Stopwords:   result.Stopwords,
		ReviewCount: result.ReviewCount,
		TokenCount:  result.TokenCount,
		Raw:         result.Raw,
		Filtered:    result.Filtered,
		CreatedAt:   result.CreatedAt,
	}
}

func CloudToSummaryResponse(result *entity.CloudResult) CloudSummaryResponse {
	resp := CloudSummaryResponse{
		ID:          result.ID.String(),
		Movie:       result.Movie,
		ReviewCount: result.ReviewCount,
		CreatedAt:   result.CreatedAt,
	}
	if len(result.Filtered) > 0 {
		resp.TopWord = result.Filtered[0].Word
	}
	return resp
}
