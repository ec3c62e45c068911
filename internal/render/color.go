package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Viridis is a ten-step sample of the viridis colormap.
var Viridis = []color.Color{
	color.RGBA{0x44, 0x01, 0x54, 0xff},
	color.RGBA{0x48, 0x28, 0x78, 0xff},
	color.RGBA{0x3e, 0x4a, 0x89, 0xff},
	color.RGBA{0x31, 0x68, 0x8e, 0xff},
	color.RGBA{0x26, 0x82, 0x8e, 0xff},
	color.RGBA{0x1f, 0x9e, 0x89, 0xff},
	color.RGBA{0x35, 0xb7, 0x79, 0xff},
	color.RGBA{0x6d, 0xcd, 0x59, 0xff},
	color.RGBA{0xb4, 0xde, 0x2c, 0xff},
	color.RGBA{0xfd, 0xe7, 0x25, 0xff},
}

var namedColors = map[string]color.Color{
	"white": color.White,
	"black": color.Black,
	"gray":  color.RGBA{0x80, 0x80, 0x80, 0xff},
	"ivory": color.RGBA{0xff, 0xff, 0xf0, 0xff},
}

// ParseColor accepts a named color or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 0xff}, nil
		}
	}
	return nil, fmt.Errorf("invalid color %q", s)
}
