package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"review-cloud/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(goregular.TTF, opts, zap.NewNop())
	require.NoError(t, err)
	return r
}

var sampleFreqs = []entity.WordCount{
	{Word: "alpha", Count: 10},
	{Word: "beta", Count: 5},
	{Word: "gamma", Count: 3},
	{Word: "delta", Count: 2},
	{Word: "epsilon", Count: 1},
}

func TestRenderLayout(t *testing.T) {
	opts := DefaultOptions()
	r := newTestRenderer(t, opts)

	cloud, err := r.Render(sampleFreqs)
	require.NoError(t, err)

	bounds := cloud.Image.Bounds()
	assert.Equal(t, opts.Width, bounds.Dx())
	assert.Equal(t, opts.Height, bounds.Dy())

	require.NotEmpty(t, cloud.Placements)
	assert.Equal(t, "alpha", cloud.Placements[0].Word)
	assert.Equal(t, opts.MaxFontSize, cloud.Placements[0].FontSize)

	for i, p := range cloud.Placements {
		assert.GreaterOrEqual(t, p.X, 0.0, p.Word)
		assert.GreaterOrEqual(t, p.Y, 0.0, p.Word)
		assert.LessOrEqual(t, p.X+p.W, float64(opts.Width), p.Word)
		assert.LessOrEqual(t, p.Y+p.H, float64(opts.Height), p.Word)
		assert.GreaterOrEqual(t, p.FontSize, opts.MinFontSize, p.Word)
		assert.Contains(t, Viridis, p.Color)

		if i > 0 {
			assert.LessOrEqual(t, p.FontSize, cloud.Placements[i-1].FontSize, p.Word)
		}
		for _, q := range cloud.Placements[:i] {
			assert.False(t, q.overlaps(p.X, p.Y, p.W, p.H), "%s overlaps %s", p.Word, q.Word)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t, DefaultOptions())

	first, err := r.Render(sampleFreqs)
	require.NoError(t, err)
	second, err := r.Render(sampleFreqs)
	require.NoError(t, err)

	assert.Equal(t, first.Placements, second.Placements)
}

func TestRenderStopsWhenCanvasIsFull(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 60, 30
	opts.MinFontSize = 8
	r := newTestRenderer(t, opts)

	freqs := make([]entity.WordCount, 0, 40)
	for i := 0; i < 40; i++ {
		freqs = append(freqs, entity.WordCount{Word: "word", Count: 40 - i})
	}

	cloud, err := r.Render(freqs)
	require.NoError(t, err)
	assert.Less(t, len(cloud.Placements), len(freqs))
}

func TestRenderNoWords(t *testing.T) {
	r := newTestRenderer(t, DefaultOptions())

	_, err := r.Render(nil)
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = r.Render([]entity.WordCount{{Word: "zero", Count: 0}})
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestNewRendererErrors(t *testing.T) {
	_, err := NewRenderer([]byte("not a font"), DefaultOptions(), zap.NewNop())
	assert.ErrorContains(t, err, "parse font")

	opts := DefaultOptions()
	opts.Width = 0
	_, err = NewRenderer(goregular.TTF, opts, zap.NewNop())
	assert.ErrorContains(t, err, "invalid canvas size")

	opts = DefaultOptions()
	opts.MinFontSize, opts.MaxFontSize = 20, 10
	_, err = NewRenderer(goregular.TTF, opts, zap.NewNop())
	assert.ErrorContains(t, err, "invalid font size range")
}

func TestLoadFontMissing(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "white", want: color.White},
		{in: " Black ", want: color.Black},
		{in: "#Ff8800", want: color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "chartreuse", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
