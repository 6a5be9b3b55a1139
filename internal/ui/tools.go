package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"LineSketch/internal/config"
	"LineSketch/internal/engine"
	"LineSketch/internal/export"
	"LineSketch/internal/render"
)

var formatLabels = map[export.Format]string{
	export.Raw:     "Points",
	export.Compact: "String",
}

// colorSwatch is a tappable square showing one pen color token.
type colorSwatch struct {
	widget.BaseWidget
	token    string
	OnTapped func(token string)
}

func newColorSwatch(token string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{token: token, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewRectangle(render.ColorOrBlack(s.token))
	fill.SetMinSize(fyne.NewSize(28, 28))
	fill.StrokeColor = color.Gray{Y: 150}
	fill.StrokeWidth = 1
	return widget.NewSimpleRenderer(fill)
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.token)
	}
}

// toolbar holds the controls whose state follows the engine.
type toolbar struct {
	undo, redo, erase *widget.Button
	thicknessSlider   *widget.Slider
	thicknessEntry    *widget.Entry
	formats           *widget.Select
	syncing           bool
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 160, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 200, A: 255},
	color.White,
}

// setControls enables the buttons the engine currently allows.
func (t *toolbar) setControls(ctl engine.Controls) {
	setEnabled(t.undo, ctl.UndoAvailable)
	setEnabled(t.redo, ctl.RedoAvailable)
	setEnabled(t.erase, ctl.ClearAvailable)
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// newToolbar builds the controls above the board.
func newToolbar(board *BoardWidget, win fyne.Window, cfg config.Config) (*toolbar, fyne.CanvasObject) {
	c := board.Canvas()
	t := &toolbar{}

	t.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() {
		c.Undo()
		board.Refresh()
	})
	t.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() {
		c.Redo()
		board.Refresh()
	})
	t.erase = widget.NewButtonWithIcon("Erase", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Erase drawing", "This will erase your entire drawing. Are you sure?", func(ok bool) {
			if ok {
				c.ClearAll()
				board.Refresh()
			}
		}, win)
	})
	save := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		savePDF(board, win)
	})

	colorBox := container.NewHBox()
	for _, col := range palette {
		token, err := render.HexColor(col)
		if err != nil {
			board.log.Warn("skipping palette color", zap.Any("color", col), zap.Error(err))
			continue
		}
		colorBox.Add(newColorSwatch(token, c.SetColor))
	}

	t.thicknessSlider = widget.NewSlider(0, config.MaxThickness)
	t.thicknessEntry = widget.NewEntry()
	t.thicknessSlider.OnChanged = func(v float64) {
		t.updateThickness(c, v, func(shown float64) {
			t.thicknessEntry.SetText(strconv.FormatFloat(shown, 'f', -1, 64))
		})
	}
	t.thicknessEntry.OnChanged = func(s string) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			t.updateThickness(c, v, t.thicknessSlider.SetValue)
		}
	}
	t.updateThickness(c, cfg.Thickness, func(shown float64) {
		t.thicknessSlider.SetValue(shown)
		t.thicknessEntry.SetText(strconv.FormatFloat(shown, 'f', -1, 64))
	})
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.thicknessSlider)
	entryContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(70, 35)), t.thicknessEntry)

	width := newNumberEntry(cfg.Width, func(v float64) {
		if err := c.SetSize(v, c.Settings().Height); err == nil {
			board.Refresh()
		}
	})
	height := newNumberEntry(cfg.Height, func(v float64) {
		if err := c.SetSize(c.Settings().Width, v); err == nil {
			board.Refresh()
		}
	})

	t.formats = widget.NewSelect([]string{formatLabels[export.Raw], formatLabels[export.Compact]}, func(label string) {
		f, ok := formatForLabel(label)
		if !ok {
			board.log.Warn("unknown data format", zap.String("label", label))
			return
		}
		if err := c.SetFormat(f); err != nil {
			board.log.Error("setting data format failed", zap.String("label", label), zap.Error(err))
		}
	})
	t.formats.SetSelected(formatLabels[c.Settings().Format])

	t.setControls(c.Controls())

	bar := container.NewHBox(
		t.undo, t.redo, t.erase,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"), sliderContainer, entryContainer,
		widget.NewSeparator(),
		widget.NewLabel("W"), width, widget.NewLabel("H"), height,
		widget.NewSeparator(),
		widget.NewLabel("Data:"), t.formats,
		layout.NewSpacer(),
		save,
	)
	return t, bar
}

// updateThickness hands the clamped value to the engine and mirrors it
// into the other input. The input being edited is left alone.
func (t *toolbar) updateThickness(c *engine.Canvas, v float64, mirror func(float64)) {
	if t.syncing {
		return
	}
	t.syncing = true
	defer func() { t.syncing = false }()

	mirror(min(max(v, 0), config.MaxThickness))
	c.SetThickness(config.ClampThickness(v))
}

func formatForLabel(label string) (export.Format, bool) {
	for f, l := range formatLabels {
		if l == label {
			return f, true
		}
	}
	return 0, false
}

func newNumberEntry(initial float64, changed func(float64)) fyne.CanvasObject {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(initial, 'f', -1, 64))
	e.OnChanged = func(s string) {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			changed(v)
		}
	}
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(70, 35)), e)
}
