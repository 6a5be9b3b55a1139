package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"LineSketch/internal/config"
	"LineSketch/internal/engine"
	"LineSketch/internal/export"
)

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(cfg config.Config, log *zap.Logger) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("Line Sketch")
	myWindow.Resize(fyne.NewSize(1024, 860))

	content, err := newContent(cfg, myWindow, log)
	if err != nil {
		return err
	}
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
	return nil
}

// newContent builds the board, its toolbar and the data output area.
func newContent(cfg config.Config, win fyne.Window, log *zap.Logger) (fyne.CanvasObject, error) {
	format, err := export.ParseFormat(cfg.DataFormat)
	if err != nil {
		return nil, err
	}
	board, err := NewBoardWidget(engine.Settings{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Thickness: config.ClampThickness(cfg.Thickness),
		Color:     cfg.Color,
		Format:    format,
	}, float32(cfg.Padding), log)
	if err != nil {
		return nil, err
	}

	output := widget.NewMultiLineEntry()
	output.Wrapping = fyne.TextWrapBreak
	output.SetMinRowsVisible(4)
	output.SetPlaceHolder("Draw something to see its line data")

	tools, bar := newToolbar(board, win, cfg)
	c := board.Canvas()
	c.OnOutput = output.SetText
	c.OnControls = tools.setControls

	return container.NewBorder(bar, output, nil, nil, board), nil
}
