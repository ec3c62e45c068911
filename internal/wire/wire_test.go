package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"review-cloud/internal/data/repository"
	"review-cloud/internal/nlp"
	"review-cloud/internal/render"
	"review-cloud/internal/usecase"
	"review-cloud/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

const reviewFixture = `movie,sentence,score
올빼미,영화 진짜 최고예요!!,10
올빼미,영화 지루했다,4
올빼미,연기가 좋았다 ㅋㅋ,
블랙 팬서: 와칸다 포에버,"배우들이 멋진 영화, 추모 영화",8
`

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte(reviewFixture), 0o644))
	return newTestServerFor(t, path)
}

func newTestServerFor(t *testing.T, path string) *httptest.Server {
	t.Helper()

	log := zap.NewNop()
	renderer, err := render.NewRenderer(goregular.TTF, render.DefaultOptions(), log)
	require.NoError(t, err)

	config := &utils.Config{Cloud: utils.CloudConfig{TopN: 50}}
	service := usecase.NewService(repository.NewCSVRepository(path, log), nlp.NewRuleAnalyzer(), renderer, config, log)

	srv := httptest.NewServer(Wiring(service, log).Router)
	t.Cleanup(srv.Close)
	return srv
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func postCloud(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/clouds", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestSummaryRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		TotalRows      int      `json:"total_rows"`
		MovieCount     int      `json:"movie_count"`
		DistinctMovies []string `json:"distinct_movies"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &summary))
	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 2, summary.MovieCount)
	assert.Equal(t, []string{"올빼미", "블랙 팬서: 와칸다 포에버"}, summary.DistinctMovies)

	tests := []struct {
		query string
		want  int
	}{
		{"?title=%EC%98%AC%EB%B9%BC%EB%AF%B8", http.StatusOK},
		{"?title=nope", http.StatusNotFound},
		{"", http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + "/api/movies/stats" + tt.query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tt.want, resp.StatusCode, tt.query)
	}
}

func TestCloudLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := postCloud(t, srv, `{"movie":"올빼미","stopwords":["영화","진짜","최고"],"top_n":10}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID       string `json:"id"`
		Movie    string `json:"movie"`
		Filtered []struct {
			Word  string `json:"word"`
			Count int    `json:"count"`
		} `json:"filtered"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "올빼미", created.Movie)
	require.NotEmpty(t, created.Filtered)
	for _, wc := range created.Filtered {
		assert.NotContains(t, []string{"영화", "진짜", "최고"}, wc.Word)
	}

	resp, err := http.Get(srv.URL + "/api/clouds/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/clouds?page=1&per_page=5")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.ID, list.Data[0].ID)

	for _, variant := range []string{"", "raw", "filtered"} {
		url := fmt.Sprintf("%s/api/clouds/%s/image.png?variant=%s", srv.URL, created.ID, variant)
		resp, err := http.Get(url)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, variant)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		img, err := png.Decode(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	}
}

func TestCloudErrors(t *testing.T) {
	srv := newTestServer(t)

	t.Run("malformed body", func(t *testing.T) {
		resp := postCloud(t, srv, `{"movie":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("validation", func(t *testing.T) {
		resp := postCloud(t, srv, `{"movie":"","top_n":500}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		env := decode(t, resp)
		assert.False(t, env.Status)
		assert.Contains(t, env.Errors, "Movie")
		assert.Contains(t, env.Errors, "TopN")
	})

	t.Run("unknown movie", func(t *testing.T) {
		resp := postCloud(t, srv, `{"movie":"없는 영화"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("stopwords remove everything", func(t *testing.T) {
		resp := postCloud(t, srv, `{"movie":"블랙 팬서: 와칸다 포에버","stopwords":["배우들","멋진","영화","추모"]}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(decode(t, resp).Data, &created))

		resp, err := http.Get(srv.URL + "/api/clouds/" + created.ID + "/image.png")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	tests := []struct {
		path string
		want int
	}{
		{"/api/clouds/not-a-uuid", http.StatusBadRequest},
		{"/api/clouds/6f1c2a7e-3b0e-4c55-9d7b-2a1f0e9c8d11", http.StatusNotFound},
		{"/api/clouds/6f1c2a7e-3b0e-4c55-9d7b-2a1f0e9c8d11/image.png", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tt.want, resp.StatusCode, tt.path)
	}
}

func TestSourceFailuresAreServerErrors(t *testing.T) {
	badScore := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(badScore, []byte("movie,sentence,score\n올빼미,좋다,열점\n"), 0o644))

	sources := map[string]string{
		"missing file": filepath.Join(t.TempDir(), "nope.csv"),
		"bad score":    badScore,
	}

	for name, path := range sources {
		t.Run(name, func(t *testing.T) {
			srv := newTestServerFor(t, path)

			for _, title := range []string{"invalid", "page not found", "validation failed"} {
				resp := postCloud(t, srv, fmt.Sprintf(`{"movie":%q}`, title))
				resp.Body.Close()
				assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, title)
			}

			resp, err := http.Get(srv.URL + "/api/movies/stats?title=invalid")
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

			resp, err = http.Get(srv.URL + "/api/summary")
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		})
	}
}
