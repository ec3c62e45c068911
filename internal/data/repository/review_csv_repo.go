package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"review-cloud/internal/data/entity"

	"go.uber.org/zap"
)

var requiredColumns = []string{"movie", "sentence", "score"}

type csvReviewRepository struct {
	path string
	log  *zap.Logger

	once    sync.Once
	reviews []entity.Review
	err     error
}

// NewCSVReviewRepository reads path lazily on first use and keeps the rows in memory.
func NewCSVReviewRepository(path string, log *zap.Logger) ReviewRepository {
	return &csvReviewRepository{
		path: path,
		log:  log.With(zap.String("repository", "review_csv")),
	}
}

func (r *csvReviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	if err := r.load(); err != nil {
		return nil, err
	}

	out := make([]entity.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *csvReviewRepository) FindByMovie(ctx context.Context, movie string) ([]entity.Review, error) {
	if err := r.load(); err != nil {
		return nil, err
	}

	reviews := filterByMovie(r.reviews, movie)
	r.log.Debug("Reviews filtered by movie",
		zap.String("movie", movie),
		zap.Int("count", len(reviews)),
	)
	return reviews, nil
}

func (r *csvReviewRepository) load() error {
	r.once.Do(func() {
		f, err := os.Open(r.path)
		if err != nil {
			r.log.Error("Failed to open review file", zap.Error(err), zap.String("path", r.path))
			r.err = fmt.Errorf("open review file %s: %w", r.path, err)
			return
		}
		defer f.Close()

		r.reviews, r.err = ReadReviews(f)
		if r.err != nil {
			r.log.Error("Failed to parse review file", zap.Error(r.err), zap.String("path", r.path))
			r.err = fmt.Errorf("parse review file %s: %w", r.path, r.err)
			return
		}

		r.log.Info("Review file loaded",
			zap.String("path", r.path),
			zap.Int("rows", len(r.reviews)),
		)
	})
	return r.err
}

// ReadReviews parses a delimited file with a header row naming at least
// movie, sentence and score. Extra columns are ignored. Quotes inside an
// unquoted field are kept as text and missing trailing fields are nulls.
func ReadReviews(in io.Reader) ([]entity.Review, error) {
	reader := csv.NewReader(in)
	reader.ReuseRecord = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}
	movieIdx, sentenceIdx, scoreIdx := index["movie"], index["sentence"], index["score"]

	var reviews []entity.Review
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		review := entity.Review{
			Movie:    field(record, movieIdx),
			Sentence: field(record, sentenceIdx),
		}

		if raw := strings.TrimSpace(field(record, scoreIdx)); raw != "" {
			score, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid score %q: %w", line, raw, err)
			}
			review.Score = &score
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}

// field returns record[i], or "" when the row ends before column i.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
