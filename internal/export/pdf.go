package export

import (
	"fmt"
	"io"

	"GeoBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF draws commands onto a single gofpdf page. One pixel maps to one point.
type PDF struct {
	doc   *gofpdf.Fpdf
	style Style
}

var _ state.Renderer = (*PDF)(nil)

// NewPDF creates a one-page document sized to the canvas, with the grid
// backdrop already drawn.
func NewPDF(style Style) *PDF {
	// Portrait keeps Size as given; landscape would swap it.
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(style.Width), Ht: float64(style.Height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetFont("Helvetica", "", style.LabelSize)

	p := &PDF{doc: doc, style: style}
	p.setDraw(style.Colors.Grid, 0.5)
	style.gridLines(doc.Line)
	return p
}

func (p *PDF) setDraw(hex string, width float64) {
	r, g, b := rgb255(hex)
	p.doc.SetDrawColor(r, g, b)
	p.doc.SetLineWidth(width)
}

func (p *PDF) DrawPoint(c state.Point) {
	p.setDraw(p.style.Colors.Point, 1)
	p.doc.Circle(c.X, c.Y, p.style.PointRadius, "D")
}

func (p *PDF) DrawSegment(from, to state.Point) {
	p.setDraw(p.style.Colors.Line, 1)
	p.doc.Line(from.X, from.Y, to.X, to.Y)
}

func (p *PDF) DrawParallelogram(v [4]state.Point) {
	p.setDraw(p.style.Colors.Line, 1)
	pts := make([]gofpdf.PointType, 0, len(v))
	for _, q := range v {
		pts = append(pts, gofpdf.PointType{X: q.X, Y: q.Y})
	}
	p.doc.Polygon(pts, "D")
}

func (p *PDF) DrawCircle(c state.Point, radius float64) {
	if radius <= 0 {
		return
	}
	p.setDraw(p.style.Colors.Circle, 1)
	p.doc.Circle(c.X, c.Y, radius, "D")
}

// DrawLabel places text with its top-left corner at pos.
func (p *PDF) DrawLabel(pos state.Point, text string) {
	r, g, b := rgb255(p.style.Colors.Label)
	p.doc.SetTextColor(r, g, b)
	p.doc.Text(pos.X, pos.Y+p.style.LabelSize, text)
}

// Encode writes the finished document to w.
func (p *PDF) Encode(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF renders cmds as a PDF document to w.
func WritePDF(w io.Writer, style Style, cmds []state.Command) error {
	p := NewPDF(style)
	state.Replay(p, cmds)
	return p.Encode(w)
}
