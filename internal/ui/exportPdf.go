package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"LineSketch/internal/export"
	"LineSketch/internal/state"
)

// savePDF asks for a destination and renders the visible lines into it.
func savePDF(board *BoardWidget, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				board.log.Error("closing pdf", zap.Error(err))
			}
		}()

		c := board.Canvas()
		s := c.Settings()
		bounds := state.Size{Width: s.Width, Height: s.Height}
		if err := export.WritePDF(writer, c.Lines(), bounds, c.Scale()); err != nil {
			board.log.Error("saving pdf", zap.Error(err), zap.String("uri", writer.URI().String()))
			dialog.ShowError(fmt.Errorf("save pdf: %w", err), win)
			return
		}
		board.log.Info("pdf saved", zap.String("uri", writer.URI().String()), zap.Int("lines", len(c.Lines())))
	}, win)
}
