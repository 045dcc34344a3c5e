package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewWindow assembles the toolbar, board, readouts and status bar into a
// window of app a.
func NewWindow(a fyne.App, title string, board *BoardWidget, shareLink string) fyne.Window {
	win := a.NewWindow(title)

	readouts := newReadouts()
	readouts.Bind(board)

	bottom := []fyne.CanvasObject{board.StatusBar()}
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		bottom = append(bottom, widget.NewForm(widget.NewFormItem("Share link", link)))
	}

	content := container.NewBorder(
		NewToolbar(board, win),
		container.NewVBox(bottom...),
		nil,
		readouts.Panel(),
		container.NewScroll(board),
	)
	win.SetContent(content)
	win.Resize(fyne.NewSize(float32(board.cfg.Width)+260, float32(board.cfg.Height)+120))
	return win
}
