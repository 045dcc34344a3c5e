package ui

import (
	"image/color"

	"GeoBoard/internal/config"
	"GeoBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/gogpu/gg"
)

func hexColor(hex string) color.Color {
	return gg.Hex(hex).Color()
}

func pos(p state.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// canvasPainter turns render commands into fyne canvas objects.
type canvasPainter struct {
	cfg     config.Config
	objects []fyne.CanvasObject
}

var _ state.Renderer = (*canvasPainter)(nil)

func (p *canvasPainter) line(from, to state.Point, c color.Color) {
	l := canvas.NewLine(c)
	l.StrokeWidth = 1
	l.Position1 = pos(from)
	l.Position2 = pos(to)
	p.objects = append(p.objects, l)
}

func (p *canvasPainter) circle(center state.Point, r float64, c color.Color) {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = c
	ring.StrokeWidth = 1
	ring.Move(pos(center.Sub(state.Pt(r, r))))
	ring.Resize(fyne.NewSize(float32(2*r), float32(2*r)))
	p.objects = append(p.objects, ring)
}

func (p *canvasPainter) DrawPoint(c state.Point) {
	p.circle(c, p.cfg.HitRadius, hexColor(p.cfg.Colors.Point))
}

func (p *canvasPainter) DrawSegment(from, to state.Point) {
	p.line(from, to, hexColor(p.cfg.Colors.Line))
}

// DrawParallelogram draws the closing sides A-D-C; A-B and B-C come as
// segments.
func (p *canvasPainter) DrawParallelogram(v [4]state.Point) {
	c := hexColor(p.cfg.Colors.Line)
	p.line(v[0], v[3], c)
	p.line(v[3], v[2], c)
}

func (p *canvasPainter) DrawCircle(c state.Point, r float64) {
	if r <= 0 {
		return
	}
	p.circle(c, r, hexColor(p.cfg.Colors.Circle))
}

func (p *canvasPainter) DrawLabel(at state.Point, s string) {
	t := canvas.NewText(s, hexColor(p.cfg.Colors.Label))
	t.TextSize = float32(p.cfg.LabelSize)
	t.Move(pos(at))
	p.objects = append(p.objects, t)
}

// createGrid builds the backdrop grid covering the configured canvas.
func createGrid(cfg config.Config) []fyne.CanvasObject {
	var lines []fyne.CanvasObject
	gridColor := hexColor(cfg.Colors.Grid)
	w, h := float32(cfg.Width), float32(cfg.Height)
	step := float32(cfg.GridSpacing)

	for x := float32(0); x <= w; x += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x+0.5, 0)
		line.Position2 = fyne.NewPos(x+0.5, h)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	for y := float32(0); y <= h; y += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y+0.5)
		line.Position2 = fyne.NewPos(w, y+0.5)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	grid       []fyne.CanvasObject
	scene      []fyne.CanvasObject
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
		grid:       createGrid(b.cfg),
	}
	r.paint()
	return r
}

func (r *boardRenderer) paint() {
	p := &canvasPainter{cfg: r.board.cfg}
	state.Replay(p, r.board.frame.Commands)
	r.scene = p.objects
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 1+len(r.grid)+len(r.scene))
	objects = append(objects, r.background)
	objects = append(objects, r.grid...)
	return append(objects, r.scene...)
}

func (r *boardRenderer) Refresh() {
	r.paint()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.cfg.Width), float32(r.board.cfg.Height))
}

func (r *boardRenderer) Destroy() {}
