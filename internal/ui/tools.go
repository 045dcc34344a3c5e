package ui

import (
	"GeoBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const aboutText = `Click three times on the board to place points A, B and C.

GeoBoard completes the parallelogram A, B, C, D (B opposite D) and draws a
circle with the same center and the same area.

Drag any red point to reshape both figures. Reset clears the board.`

func exportAction(board *BoardWidget, win fyne.Window, format ExportFormat, name, ext string) func() {
	return func() {
		d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil {
				board.statusBar.SetText("Export failed: " + err.Error())
				return
			}
			if w == nil {
				return // cancelled
			}
			board.SaveTo(w, format)
		}, win)
		d.SetFileName(name)
		d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
		d.Show()
	}
}

// NewToolbar builds the toolbar above the board.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	items := []widget.ToolbarItem{}
	if !board.ReadOnly() {
		items = append(items,
			widget.NewToolbarAction(theme.ContentClearIcon(), board.Reset), // Reset
			widget.NewToolbarSeparator(),
		)
	}
	items = append(items,
		widget.NewToolbarAction(theme.DocumentSaveIcon(), exportAction(board, win, ExportPDF, "sketch.pdf", ".pdf")),
		widget.NewToolbarAction(theme.FileImageIcon(), exportAction(board, win, ExportPNG, "sketch.png", ".png")),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.InfoIcon(), func() {
			dialog.ShowInformation("About GeoBoard", aboutText, win)
		}),
	)
	return widget.NewToolbar(items...)
}

// Readouts shows the area and cursor values next to the board.
type Readouts struct {
	Parallelogram *widget.Label
	Circle        *widget.Label
	Cursor        *widget.Label
}

func newReadouts() *Readouts {
	return &Readouts{
		Parallelogram: widget.NewLabel(""),
		Circle:        widget.NewLabel(""),
		Cursor:        widget.NewLabel(""),
	}
}

// Bind makes the labels follow board readouts.
func (r *Readouts) Bind(board *BoardWidget) {
	board.OnReadout = func(v state.Readout) {
		r.Parallelogram.SetText(v.ParallelogramText())
		r.Circle.SetText(v.CircleText())
		r.Cursor.SetText(v.CursorText())
	}
}

// Panel lays the readouts out as a form.
func (r *Readouts) Panel() fyne.CanvasObject {
	return widget.NewForm(
		widget.NewFormItem("Parallelogram area", r.Parallelogram),
		widget.NewFormItem("Circle area", r.Circle),
		widget.NewFormItem("Mouse", r.Cursor),
	)
}
