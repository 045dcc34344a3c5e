package ui

import (
	"bytes"
	"testing"

	"GeoBoard/internal/config"
	"GeoBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(b *BoardWidget, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
	b.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
}

func newTestBoard(t *testing.T) *BoardWidget {
	t.Helper()
	test.NewTempApp(t)
	cfg := config.Default()
	cfg.Width, cfg.Height = 200, 150
	return NewBoardWidget(cfg)
}

func countObjects[T any](objs []fyne.CanvasObject) int {
	n := 0
	for _, o := range objs {
		if _, ok := o.(T); ok {
			n++
		}
	}
	return n
}

func TestBoardPlacesPointsAndRenders(t *testing.T) {
	b := newTestBoard(t)
	var readouts []state.Readout
	var changed int
	b.OnReadout = func(r state.Readout) { readouts = append(readouts, r) }
	b.OnFrame = func(state.Frame) { changed++ }

	press(b, 20, 20)
	press(b, 120, 20)
	press(b, 120, 120)

	assert.Len(t, b.Controller().Points(), 3)
	assert.Equal(t, 3, changed)
	require.NotEmpty(t, readouts)
	last := readouts[len(readouts)-1]
	assert.True(t, last.HasAreas)
	assert.InDelta(t, 10000, last.ParallelogramArea, 1e-6)

	objs := test.WidgetRenderer(b).Objects()
	// 3 markers + circle
	assert.Equal(t, 4, countObjects[*canvas.Circle](objs))
	// 3 labels + fourth vertex label
	assert.Equal(t, 4, countObjects[*canvas.Text](objs))
}

func TestBoardMarkerMatchesHitRadius(t *testing.T) {
	test.NewTempApp(t)
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.HitRadius = 200, 150, 20
	b := NewBoardWidget(cfg)
	press(b, 50, 50)

	var markers []*canvas.Circle
	for _, o := range test.WidgetRenderer(b).Objects() {
		if c, ok := o.(*canvas.Circle); ok {
			markers = append(markers, c)
		}
	}
	require.Len(t, markers, 1)
	assert.Equal(t, fyne.NewSize(40, 40), markers[0].Size())
	assert.Equal(t, fyne.NewPos(30, 30), markers[0].Position())

	// A press on the marker's rim selects the point instead of adding one.
	press(b, 65, 50)
	assert.Len(t, b.Controller().Points(), 1)
}

func TestBoardDragMovesPoint(t *testing.T) {
	b := newTestBoard(t)
	press(b, 20, 20)
	press(b, 120, 20)
	press(b, 120, 120)

	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(121, 21)},
		Button:     desktop.MouseButtonPrimary,
	})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(120, 70)}})
	b.DragEnd()

	pts := b.Controller().Points()
	assert.Equal(t, state.Pt(120, 70), pts[1])
	st, _ := b.Controller().State()
	assert.Equal(t, state.Idle, st)
}

func TestBoardReadOnlyIgnoresPresses(t *testing.T) {
	b := newTestBoard(t)
	b.SetReadOnly(true)
	press(b, 20, 20)
	assert.Empty(t, b.Controller().Points())

	b.Load([]state.Point{state.Pt(0, 0), state.Pt(50, 0), state.Pt(50, 50)})
	assert.Len(t, b.Controller().Points(), 3)

	b.Reset()
	assert.Len(t, b.Controller().Points(), 3, "viewer cannot reset the host's sketch")
}

func TestBoardReset(t *testing.T) {
	b := newTestBoard(t)
	readouts := newReadouts()
	readouts.Bind(b)
	press(b, 20, 20)
	press(b, 120, 20)
	press(b, 120, 120)
	assert.Equal(t, "10000.00", readouts.Parallelogram.Text)

	b.Reset()
	assert.Empty(t, b.Controller().Points())
	assert.Equal(t, "", readouts.Parallelogram.Text)
	assert.Equal(t, "", readouts.Circle.Text)
	assert.Equal(t, "Cleared", b.StatusBar().Text)
}

func TestBoardMouseMovedUpdatesCursor(t *testing.T) {
	b := newTestBoard(t)
	readouts := newReadouts()
	readouts.Bind(b)

	b.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(12.5, 40)}})
	assert.Equal(t, "x: 12.500, y: 40.000", readouts.Cursor.Text)
	assert.Empty(t, b.Controller().Points())
}

func TestBoardExport(t *testing.T) {
	b := newTestBoard(t)
	press(b, 20, 20)

	var pdf, png bytes.Buffer
	require.NoError(t, b.Export(&pdf, ExportPDF))
	require.NoError(t, b.Export(&png, ExportPNG))
	assert.True(t, bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
	assert.Error(t, b.Export(&pdf, ExportFormat(9)))
}

func TestCreateGrid(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.GridSpacing = 50, 25, 25
	assert.Len(t, createGrid(cfg), 5)
}

func TestNewWindow(t *testing.T) {
	a := test.NewTempApp(t)
	b := NewBoardWidget(config.Default())
	win := NewWindow(a, "GeoBoard", b, "geoboard://10.0.0.2:8888")
	defer win.Close()

	assert.Equal(t, "GeoBoard", win.Title())
	assert.NotNil(t, win.Content())
}
