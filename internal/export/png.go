package export

import (
	"fmt"
	"io"
	"sync"

	"GeoBoard/internal/state"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// PNG rasterizes commands with gg. The first drawing error is kept and
// returned by Encode.
type PNG struct {
	dc    *gg.Context
	style Style
	err   error
}

var _ state.Renderer = (*PNG)(nil)

// NewPNG creates a white canvas with the grid backdrop drawn.
func NewPNG(style Style) (*PNG, error) {
	src, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	dc := gg.NewContext(style.Width, style.Height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.SetFont(src.Face(style.LabelSize))

	p := &PNG{dc: dc, style: style}
	p.dc.SetHexColor(style.Colors.Grid)
	p.dc.SetLineWidth(1)
	style.gridLines(func(x1, y1, x2, y2 float64) {
		p.dc.DrawLine(x1, y1, x2, y2)
	})
	p.stroke()
	return p, nil
}

func (p *PNG) stroke() {
	if err := p.dc.Stroke(); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *PNG) DrawPoint(c state.Point) {
	p.dc.SetHexColor(p.style.Colors.Point)
	p.dc.DrawCircle(c.X, c.Y, p.style.PointRadius)
	p.stroke()
}

func (p *PNG) DrawSegment(from, to state.Point) {
	p.dc.SetHexColor(p.style.Colors.Line)
	p.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	p.stroke()
}

func (p *PNG) DrawParallelogram(v [4]state.Point) {
	p.dc.SetHexColor(p.style.Colors.Line)
	p.dc.MoveTo(v[0].X, v[0].Y)
	for _, q := range v[1:] {
		p.dc.LineTo(q.X, q.Y)
	}
	p.dc.ClosePath()
	p.stroke()
}

func (p *PNG) DrawCircle(c state.Point, radius float64) {
	if radius <= 0 {
		return
	}
	p.dc.SetHexColor(p.style.Colors.Circle)
	p.dc.DrawCircle(c.X, c.Y, radius)
	p.stroke()
}

func (p *PNG) DrawLabel(pos state.Point, s string) {
	p.dc.SetHexColor(p.style.Colors.Label)
	p.dc.DrawString(s, pos.X, pos.Y+p.style.LabelSize)
}

// Encode encodes the image as PNG and releases the context.
func (p *PNG) Encode(w io.Writer) error {
	defer p.dc.Close()
	if p.err != nil {
		return fmt.Errorf("rasterize: %w", p.err)
	}
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG renders cmds as a PNG image to w.
func WritePNG(w io.Writer, style Style, cmds []state.Command) error {
	p, err := NewPNG(style)
	if err != nil {
		return err
	}
	state.Replay(p, cmds)
	return p.Encode(w)
}
