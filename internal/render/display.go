package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// Displayer shows a rendered cloud to the user.
type Displayer interface {
	Show(name string, img image.Image) error
}

// PNGDisplayer writes each image to <dir>/<name>.png.
type PNGDisplayer struct {
	dir string
	log *zap.Logger
}

func NewPNGDisplayer(dir string, log *zap.Logger) (*PNGDisplayer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &PNGDisplayer{
		dir: dir,
		log: log.With(zap.String("component", "png_displayer")),
	}, nil
}

func (d *PNGDisplayer) Show(name string, img image.Image) error {
	path := d.Path(name)
	if err := gg.SavePNG(path, img); err != nil {
		d.log.Error("Failed to write cloud image", zap.Error(err), zap.String("path", path))
		return fmt.Errorf("write %s: %w", path, err)
	}

	d.log.Info("Cloud image written", zap.String("path", path))
	return nil
}

func (d *PNGDisplayer) Path(name string) string {
	return filepath.Join(d.dir, FileName(name)+".png")
}

var fileNameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
)

// FileName turns a movie title into a file name: spaces become underscores
// and path or shell-hostile characters are dropped.
func FileName(name string) string {
	name = fileNameReplacer.Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return "cloud"
	}
	return name
}
