// Package export renders a sketch frame to files. Each renderer replays
// the same command list the screen renderer draws.
package export

import (
	"GeoBoard/internal/config"

	"github.com/gogpu/gg"
)

// Style carries the drawing settings shared by all export renderers.
type Style struct {
	Width, Height int
	GridSpacing   float64
	PointRadius   float64
	LabelSize     float64
	Colors        config.Colors
}

// StyleFromConfig builds a Style from the app settings.
func StyleFromConfig(cfg config.Config) Style {
	return Style{
		Width:       cfg.Width,
		Height:      cfg.Height,
		GridSpacing: cfg.GridSpacing,
		PointRadius: cfg.HitRadius,
		LabelSize:   cfg.LabelSize,
		Colors:      cfg.Colors,
	}
}

// rgb255 converts a hex color to 0-255 channels.
func rgb255(hex string) (r, g, b int) {
	c := gg.Hex(hex)
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5), int(c.B*255 + 0.5)
}

// gridLines calls line for each backdrop grid line.
func (s Style) gridLines(line func(x1, y1, x2, y2 float64)) {
	w, h := float64(s.Width), float64(s.Height)
	for x := 0.0; x <= w; x += s.GridSpacing {
		line(x+0.5, 0, x+0.5, h)
	}
	for y := 0.0; y <= h; y += s.GridSpacing {
		line(0, y+0.5, w, y+0.5)
	}
}
