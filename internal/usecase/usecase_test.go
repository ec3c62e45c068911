package usecase

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"review-cloud/internal/data/entity"
	"review-cloud/internal/data/repository"
	"review-cloud/internal/nlp"
	"review-cloud/internal/render"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	owl     = "올빼미"
	panther = "블랙 팬서: 와칸다 포에버"
)

const reviewFixture = `movie,sentence,score
올빼미,영화 진짜 최고예요!!,10
올빼미,영화 지루했다,4
올빼미,연기가 좋았다 ㅋㅋ,
블랙 팬서: 와칸다 포에버,"배우들이 멋진 영화, 추모 영화",8
,빈 제목,5
블랙 팬서: 와칸다 포에버,,6
`

func newTestRepo(t *testing.T, content string) *repository.Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return repository.NewCSVRepository(path, zap.NewNop())
}

type fakeRenderer struct {
	calls int
	last  []entity.WordCount
	err   error
}

func (r *fakeRenderer) Render(freqs []entity.WordCount) (*render.Cloud, error) {
	r.calls++
	r.last = freqs
	if r.err != nil {
		return nil, r.err
	}
	return &render.Cloud{Image: image.NewRGBA(image.Rect(0, 0, 4, 2))}, nil
}

type fakeDisplayer struct {
	shown []string
	err   error
}

func (d *fakeDisplayer) Show(name string, img image.Image) error {
	if d.err != nil {
		return d.err
	}
	d.shown = append(d.shown, name)
	return nil
}

func newTestCloudService(t *testing.T, content string) (CloudService, *fakeRenderer) {
	t.Helper()
	renderer := &fakeRenderer{}
	svc := NewCloudService(newTestRepo(t, content), nlp.NewRuleAnalyzer(), renderer, DefaultTopN, DefaultStoreLimit, zap.NewNop())
	return svc, renderer
}
