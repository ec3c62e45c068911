package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"os"

	"review-cloud/internal/data/entity"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

var ErrNoWords = errors.New("no words to render")

type Options struct {
	Width           int
	Height          int
	MaxFontSize     float64
	MinFontSize     float64
	RelativeScaling float64
	Margin          float64
	Background      color.Color
	Palette         []color.Color
	Seed            int64
}

func DefaultOptions() Options {
	return Options{
		Width:           400,
		Height:          200,
		MaxFontSize:     60,
		MinFontSize:     4,
		RelativeScaling: 0.5,
		Margin:          2,
		Background:      color.White,
		Palette:         Viridis,
		Seed:            42,
	}
}

// Placement records where one word was drawn. X, Y is the top-left corner.
type Placement struct {
	Word     string
	Count    int
	FontSize float64
	X, Y     float64
	W, H     float64
	Color    color.Color
}

func (p Placement) overlaps(x, y, w, h float64) bool {
	return x < p.X+p.W && p.X < x+w && y < p.Y+p.H && p.Y < y+h
}

type Cloud struct {
	Image      image.Image
	Placements []Placement
}

type Renderer struct {
	font *truetype.Font
	opts Options
	log  *zap.Logger
}

// LoadFont reads a TrueType font file.
func LoadFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return data, nil
}

func NewRenderer(ttf []byte, opts Options, log *zap.Logger) (*Renderer, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.MinFontSize <= 0 || opts.MaxFontSize < opts.MinFontSize {
		return nil, fmt.Errorf("invalid font size range [%g, %g]", opts.MinFontSize, opts.MaxFontSize)
	}
	if len(opts.Palette) == 0 {
		opts.Palette = Viridis
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	return &Renderer{
		font: f,
		opts: opts,
		log:  log.With(zap.String("component", "renderer")),
	}, nil
}

// Render lays out freqs, which must be sorted by descending count, largest
// first. Font size follows the relative scaling rule; a word that does not
// fit is retried one point smaller, and layout stops once the size drops
// below MinFontSize.
func (r *Renderer) Render(freqs []entity.WordCount) (*Cloud, error) {
	maxCount := 0
	for _, wc := range freqs {
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
	}
	if maxCount == 0 {
		return nil, ErrNoWords
	}

	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	dc.SetColor(r.opts.Background)
	dc.Clear()

	rng := rand.New(rand.NewSource(r.opts.Seed))
	rs := r.opts.RelativeScaling
	fontSize := r.opts.MaxFontSize
	lastFreq := 1.0

	var placed []Placement
	for _, wc := range freqs {
		if wc.Count <= 0 {
			continue
		}
		freq := float64(wc.Count) / float64(maxCount)
		fontSize = math.Round((rs*(freq/lastFreq) + (1-rs)) * fontSize)
		if fontSize > r.opts.MaxFontSize {
			fontSize = r.opts.MaxFontSize
		}

		var (
			face    font.Face
			spot    Placement
			ok      bool
			ascent  float64
			measure float64
		)
		for ; fontSize >= r.opts.MinFontSize; fontSize-- {
			face = truetype.NewFace(r.font, &truetype.Options{Size: fontSize})
			metrics := face.Metrics()
			ascent = float64(metrics.Ascent) / 64
			height := ascent + float64(metrics.Descent)/64
			measure = float64(font.MeasureString(face, wc.Word)) / 64

			spot, ok = r.findSpot(rng, placed, measure+2*r.opts.Margin, height+2*r.opts.Margin)
			if ok {
				break
			}
			face.Close()
		}
		if !ok {
			r.log.Debug("Canvas full, stopping layout",
				zap.String("word", wc.Word),
				zap.Int("placed", len(placed)),
			)
			break
		}

		spot.Word = wc.Word
		spot.Count = wc.Count
		spot.FontSize = fontSize
		spot.Color = r.opts.Palette[rng.Intn(len(r.opts.Palette))]

		dc.SetFontFace(face)
		dc.SetColor(spot.Color)
		dc.DrawString(wc.Word, spot.X+r.opts.Margin, spot.Y+r.opts.Margin+ascent)
		face.Close()

		placed = append(placed, spot)
		lastFreq = freq
	}

	return &Cloud{Image: dc.Image(), Placements: placed}, nil
}

// findSpot walks an elliptical spiral outward from a jittered canvas centre
// and returns the first free box of size w x h.
func (r *Renderer) findSpot(rng *rand.Rand, placed []Placement, w, h float64) (Placement, bool) {
	width, height := float64(r.opts.Width), float64(r.opts.Height)
	if w > width || h > height {
		return Placement{}, false
	}

	cx := (width-w)/2 + (rng.Float64()-0.5)*width*0.1
	cy := (height-h)/2 + (rng.Float64()-0.5)*height*0.1
	aspect := width / height
	start := rng.Float64() * 2 * math.Pi
	maxRadius := math.Hypot(width, height)

	for radius := 0.0; radius <= maxRadius; radius += 2 {
		steps := int(math.Max(8, 2*math.Pi*radius/4))
		for k := 0; k < steps; k++ {
			theta := start + 2*math.Pi*float64(k)/float64(steps)
			x := cx + radius*aspect*math.Cos(theta)
			y := cy + radius*math.Sin(theta)
			if x < 0 || y < 0 || x+w > width || y+h > height {
				continue
			}
			if fits(placed, x, y, w, h) {
				return Placement{X: x, Y: y, W: w, H: h}, true
			}
		}
	}
	return Placement{}, false
}

func fits(placed []Placement, x, y, w, h float64) bool {
	for _, p := range placed {
		if p.overlaps(x, y, w, h) {
			return false
		}
	}
	return true
}
