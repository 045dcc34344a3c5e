package ui

import (
	"fmt"
	"io"

	"GeoBoard/internal/config"
	"GeoBoard/internal/export"
	"GeoBoard/internal/logging"
	"GeoBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ExportFormat selects the file type written by BoardWidget.Export.
type ExportFormat int

const (
	ExportPDF ExportFormat = iota
	ExportPNG
)

// BoardWidget is the drawing surface. It forwards pointer events to the
// sketch controller and draws whatever frame the controller returns.
// All methods must run on the fyne main goroutine.
type BoardWidget struct {
	widget.BaseWidget
	ctrl     *state.Controller
	cfg      config.Config
	frame    state.Frame
	readOnly bool

	// OnFrame is called after a frame that changed the points.
	OnFrame func(f state.Frame)
	// OnReadout is called whenever readout values change.
	OnReadout func(r state.Readout)

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget creates an empty board using cfg.
func NewBoardWidget(cfg config.Config) *BoardWidget {
	b := &BoardWidget{
		ctrl:      state.NewController(cfg.ControllerOptions()...),
		cfg:       cfg,
		statusBar: widget.NewLabel("Ready"),
	}
	b.frame = b.ctrl.Frame()
	b.ExtendBaseWidget(b)
	return b
}

// Controller exposes the sketch controller, mainly for tests.
func (b *BoardWidget) Controller() *state.Controller { return b.ctrl }

// SetReadOnly makes the board ignore pointer presses and drags. Viewers
// mirror a host and never edit.
func (b *BoardWidget) SetReadOnly(ro bool) { b.readOnly = ro }

// ReadOnly reports whether the board ignores edits.
func (b *BoardWidget) ReadOnly() bool { return b.readOnly }

// StatusBar returns the label used for status messages.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

// SetStatus updates the status bar. Safe to call from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) apply(f state.Frame) {
	if f.Redraw {
		b.frame = f
		b.Refresh()
	}
	if b.OnReadout != nil {
		b.OnReadout(f.Readout)
	}
	if f.Changed && b.OnFrame != nil {
		b.OnFrame(f)
	}
}

// Reset clears the sketch.
func (b *BoardWidget) Reset() {
	if b.readOnly {
		return
	}
	b.apply(b.ctrl.Reset())
	b.statusBar.SetText("Cleared")
}

// Load mirrors pts from a host.
func (b *BoardWidget) Load(pts []state.Point) {
	b.apply(b.ctrl.Load(pts))
}

// Export writes the current sketch to w.
func (b *BoardWidget) Export(w io.Writer, format ExportFormat) error {
	style := export.StyleFromConfig(b.cfg)
	cmds := b.ctrl.Frame().Commands
	switch format {
	case ExportPDF:
		return export.WritePDF(w, style, cmds)
	case ExportPNG:
		return export.WritePNG(w, style, cmds)
	}
	return fmt.Errorf("unknown export format %d", format)
}

// SaveTo exports to a file chosen in a save dialog and reports the result
// in the status bar.
func (b *BoardWidget) SaveTo(writer fyne.URIWriteCloser, format ExportFormat) {
	defer func() {
		if err := writer.Close(); err != nil {
			logging.Logger().Warn("[UI] closing export file", "err", err)
		}
	}()
	if err := b.Export(writer, format); err != nil {
		logging.Logger().Error("[UI] export failed", "uri", writer.URI().String(), "err", err)
		b.statusBar.SetText("Export failed: " + err.Error())
		return
	}
	logging.Logger().Info("[UI] exported", "uri", writer.URI().String())
	b.statusBar.SetText("Exported " + writer.URI().Name())
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.readOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.apply(b.ctrl.PointerDown(toPoint(e.Position)))
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {
	b.ctrl.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.apply(b.ctrl.PointerMove(toPoint(e.Position)))
}

func (b *BoardWidget) DragEnd() {
	b.ctrl.PointerUp()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.apply(b.ctrl.PointerMove(toPoint(e.Position)))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}
