package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"LineSketch/internal/engine"
	"LineSketch/internal/render"
	"LineSketch/internal/state"
)

// BoardWidget shows the drawing and turns mouse input into pointer events
// for the engine. It is the engine's rendering surface.
type BoardWidget struct {
	widget.BaseWidget
	mu      sync.RWMutex
	strokes []fyne.CanvasObject
	canvas  *engine.Canvas
	padding float32
	log     *zap.Logger
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ render.Surface = (*BoardWidget)(nil)

// NewBoardWidget creates a board and the engine that draws on it.
func NewBoardWidget(settings engine.Settings, padding float32, log *zap.Logger) (*BoardWidget, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &BoardWidget{padding: padding, log: log}
	c, err := engine.New(settings, b, engine.WithLogger(log))
	if err != nil {
		return nil, err
	}
	b.canvas = c
	b.ExtendBaseWidget(b)
	return b, nil
}

// Canvas returns the engine behind the board.
func (b *BoardWidget) Canvas() *engine.Canvas { return b.canvas }

// Clear drops the current frame.
func (b *BoardWidget) Clear() {
	b.mu.Lock()
	b.strokes = b.strokes[:0]
	b.mu.Unlock()
}

// Stroke adds one polyline to the current frame. Fyne lines have butt
// ends, so a disc at every point provides the round caps and joins.
func (b *BoardWidget) Stroke(s render.Stroke) {
	col := color.Color(render.ColorOrBlack(s.Color))
	width := float32(s.Width)

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, p := range s.Points {
		pos := fyne.NewPos(float32(p.X), float32(p.Y))
		dot := canvas.NewCircle(col)
		dot.Position1 = pos.SubtractXY(width/2, width/2)
		dot.Position2 = pos.AddXY(width/2, width/2)
		b.strokes = append(b.strokes, dot)
		if i == 0 {
			continue
		}
		prev := s.Points[i-1]
		seg := canvas.NewLine(col)
		seg.StrokeWidth = width
		seg.Position1 = fyne.NewPos(float32(prev.X), float32(prev.Y))
		seg.Position2 = pos
		b.strokes = append(b.strokes, seg)
	}
}

func toPoint(pos fyne.Position) render.Point {
	return render.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.canvas.PointerDown(toPoint(e.Position))
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.canvas.Interacting() {
		return
	}
	b.canvas.PointerUp()
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.canvas.Interacting() {
		// touch input arrives as drags without a preceding mouse down
		b.canvas.PointerDown(toPoint(e.Position.Subtract(e.Dragged)))
	}
	b.canvas.PointerMove(toPoint(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {
	if b.canvas.Interacting() {
		b.canvas.PointerUp()
		b.Refresh()
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.canvas.Interacting() {
		b.canvas.PointerMove(toPoint(e.Position))
		b.Refresh()
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// fit recomputes the display scale for the widget size.
func (b *BoardWidget) fit(size fyne.Size) {
	avail := state.Size{Width: float64(size.Width), Height: float64(size.Height)}
	if b.canvas.Fit(avail, float64(b.padding)) {
		b.log.Debug("display scale changed", zap.Float64("scale", b.canvas.Scale()))
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()

	objects := make([]fyne.CanvasObject, 0, len(r.board.strokes)+1)
	objects = append(objects, r.background)
	return append(objects, r.board.strokes...)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.fit(size)
	r.resizeBackground()
}

func (r *boardWidgetRenderer) resizeBackground() {
	display := r.board.canvas.DisplaySize()
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(fyne.NewSize(float32(display.Width), float32(display.Height)))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.resizeBackground()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}
