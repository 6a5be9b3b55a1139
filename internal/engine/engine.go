// Package engine drives a drawing from pointer events: it samples moves
// into line points, keeps undo history, re-renders the surface and
// republishes the export after every change.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"LineSketch/internal/export"
	"LineSketch/internal/render"
	"LineSketch/internal/state"
)

// ErrStrokeActive is returned when a change that must not happen mid-stroke
// is requested while a stroke is in progress.
var ErrStrokeActive = errors.New("stroke in progress")

// Settings is the pen and canvas configuration owned by the host.
type Settings struct {
	Width     float64
	Height    float64
	Thickness float64
	Color     string
	Format    export.Format
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets the logger; nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.log = l
		}
	}
}

// WithScale sets the initial display scale.
func WithScale(scale float64) Option {
	return func(c *Canvas) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// published remembers what the last export was built from.
type published struct {
	revision uint64
	format   export.Format
	done     bool
}

// viewport is the device area the host last offered for the canvas.
type viewport struct {
	avail   state.Size
	padding float64
	known   bool
}

// session is the state of the stroke in progress.
type session struct {
	interacting bool
	active      state.Handle
}

// Canvas is the drawing engine. It is not safe for concurrent use; the
// host feeds it events from a single goroutine.
type Canvas struct {
	settings Settings
	scale    float64
	doc      *state.Document
	session  session
	surface  render.Surface
	last     published
	view     viewport
	log      *zap.Logger

	// OnOutput receives the export text after every change.
	OnOutput func(text string)
	// OnControls receives the control flags whenever they may have changed.
	OnControls func(Controls)
}

// New creates an engine drawing onto surface. A nil surface is allowed for
// headless use.
func New(settings Settings, surface render.Surface, opts ...Option) (*Canvas, error) {
	if !settings.Format.Valid() {
		return nil, fmt.Errorf("%w: %v", export.ErrUnsupportedFormat, settings.Format)
	}
	if settings.Width <= 0 || settings.Height <= 0 || settings.Thickness <= 0 {
		return nil, fmt.Errorf("canvas %vx%v with thickness %v: dimensions must be positive",
			settings.Width, settings.Height, settings.Thickness)
	}
	c := &Canvas{
		settings: settings,
		scale:    1,
		doc:      state.NewDocument(),
		surface:  surface,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Handle dispatches a pointer event.
func (c *Canvas) Handle(e Event) {
	p := render.Point{X: e.X, Y: e.Y}
	switch e.Kind {
	case Down:
		c.PointerDown(p)
	case Move:
		c.PointerMove(p)
	case Up:
		c.PointerUp()
	default:
		c.log.Debug("ignoring pointer event", zap.Stringer("kind", e.Kind))
	}
}

// PointerDown starts a new line at the device position p. A down event
// during a stroke finishes that stroke first.
func (c *Canvas) PointerDown(p render.Point) {
	if c.session.interacting {
		c.PointerUp()
	}
	style := state.Style{Color: c.settings.Color, Thickness: c.settings.Thickness}
	h := c.doc.BeginLine(style, c.toLogical(p), c.bounds())
	c.session = session{interacting: true, active: h}
	c.log.Debug("line started",
		zap.String("line", c.doc.Line(h).ID),
		zap.String("color", style.Color),
		zap.Float64("thickness", style.Thickness))
	c.publishControls()
	c.refresh()
}

// PointerMove feeds a device position to the active line. Moves outside a
// stroke are ignored.
func (c *Canvas) PointerMove(p render.Point) {
	if !c.session.interacting {
		return
	}
	l := c.doc.Line(c.session.active)
	last, ok := l.Last()
	if !ok {
		return
	}
	next, ok := state.Next(last, c.toLogical(p), l.Thickness, c.bounds())
	if !ok {
		return
	}
	if _, ok := c.doc.CommitPoint(c.session.active, next.Vec(), c.bounds()); ok {
		c.refresh()
	}
}

// PointerUp completes the active line. Redundant up events are ignored.
func (c *Canvas) PointerUp() {
	if !c.session.interacting {
		return
	}
	h := c.session.active
	if l := c.doc.Line(h); l != nil {
		c.log.Debug("line completed", zap.String("line", l.ID), zap.Int("points", len(l.Points)))
	}
	c.doc.EndLine(h)
	c.session = session{}
	c.publishControls()
	c.refresh()
}

// Undo hides the most recent line. It is ignored during a stroke.
func (c *Canvas) Undo() {
	if c.locked("undo") {
		return
	}
	if !c.doc.Undo() {
		return
	}
	c.log.Debug("undo", zap.Int("lines", c.doc.Len()), zap.Int("history", c.doc.HistoryLen()))
	c.publishControls()
	c.refresh()
}

// Redo restores the most recently undone line. It is ignored during a
// stroke.
func (c *Canvas) Redo() {
	if c.locked("redo") {
		return
	}
	if !c.doc.Redo() {
		return
	}
	c.log.Debug("redo", zap.Int("lines", c.doc.Len()), zap.Int("history", c.doc.HistoryLen()))
	c.publishControls()
	c.refresh()
}

// ClearAll erases the drawing and its history. The host is expected to ask
// the user first.
func (c *Canvas) ClearAll() {
	if c.locked("clear") {
		return
	}
	c.doc.ClearAll()
	c.log.Info("drawing cleared")
	c.publishControls()
	c.refresh()
}

// SetColor changes the color of future lines.
func (c *Canvas) SetColor(color string) {
	c.settings.Color = color
}

// SetThickness changes the thickness of future lines.
func (c *Canvas) SetThickness(thickness float64) {
	if thickness <= 0 {
		return
	}
	c.settings.Thickness = thickness
}

// SetFormat switches the export format and republishes the export.
func (c *Canvas) SetFormat(f export.Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %v", export.ErrUnsupportedFormat, f)
	}
	c.settings.Format = f
	c.publishOutput()
	return nil
}

// SetSize changes the logical canvas extent and refits the display scale
// to the last known viewport. Points already drawn are kept as they are,
// even if they now fall outside the canvas.
func (c *Canvas) SetSize(width, height float64) error {
	if c.session.interacting {
		return ErrStrokeActive
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas size %vx%v must be positive", width, height)
	}
	c.settings.Width, c.settings.Height = width, height
	if n := c.pointsOutside(); n > 0 {
		c.log.Debug("points outside resized canvas", zap.Int("points", n))
	}
	if c.view.known {
		c.scale = state.FitScale(c.view.avail, c.bounds(), c.view.padding)
	}
	c.refresh()
	return nil
}

// Fit recomputes the display scale for the available device area and
// re-renders. It reports whether the scale changed.
func (c *Canvas) Fit(avail state.Size, padding float64) bool {
	c.view = viewport{avail: avail, padding: padding, known: true}
	scale := state.FitScale(avail, c.bounds(), padding)
	if scale == c.scale {
		return false
	}
	c.scale = scale
	c.refresh()
	return true
}

// SetSurface replaces the rendering surface and draws onto it.
func (c *Canvas) SetSurface(s render.Surface) {
	c.surface = s
	c.redraw()
}

// Settings returns the current configuration.
func (c *Canvas) Settings() Settings { return c.settings }

// Scale returns the display-to-logical ratio.
func (c *Canvas) Scale() float64 { return c.scale }

// DisplaySize is the device extent of the rendering surface.
func (c *Canvas) DisplaySize() state.Size {
	return state.DisplaySize(c.bounds(), c.scale)
}

// Lines returns copies of the visible lines.
func (c *Canvas) Lines() []state.Line { return c.doc.Lines() }

// History returns copies of the undone lines.
func (c *Canvas) History() []state.Line { return c.doc.History() }

// Interacting reports whether a stroke is in progress.
func (c *Canvas) Interacting() bool { return c.session.interacting }

// Export returns the export text for the current drawing.
func (c *Canvas) Export() (string, error) {
	return export.Text(c.doc.Lines(), c.settings.Format)
}

// Controls reports which affordances the host should enable.
func (c *Canvas) Controls() Controls {
	if c.session.interacting {
		return Controls{Interacting: true}
	}
	return Controls{
		UndoAvailable:  c.doc.Len() > 0,
		RedoAvailable:  c.doc.HistoryLen() > 0,
		ClearAvailable: c.doc.Len() > 0,
	}
}

func (c *Canvas) locked(op string) bool {
	if c.session.interacting {
		c.log.Debug("ignoring operation during stroke", zap.String("op", op))
		return true
	}
	return false
}

func (c *Canvas) bounds() state.Size {
	return state.Size{Width: c.settings.Width, Height: c.settings.Height}
}

func (c *Canvas) toLogical(p render.Point) state.Vec {
	return state.ToLogical(state.Vec{X: p.X, Y: p.Y}, c.scale)
}

func (c *Canvas) pointsOutside() int {
	n := 0
	b := c.bounds()
	c.doc.Each(func(l *state.Line) {
		for _, p := range l.Points {
			if !b.Contains(p) {
				n++
			}
		}
	})
	return n
}

// refresh re-renders and republishes the export.
func (c *Canvas) refresh() {
	c.redraw()
	c.publishOutput()
}

func (c *Canvas) redraw() {
	if c.surface == nil {
		return
	}
	c.surface.Clear()
	c.doc.Each(func(l *state.Line) {
		if len(l.Points) > 0 {
			c.surface.Stroke(render.StrokeFor(*l, c.scale))
		}
	})
}

func (c *Canvas) publishOutput() {
	if c.OnOutput == nil {
		return
	}
	rev := c.doc.Revision()
	if c.last.done && c.last.revision == rev && c.last.format == c.settings.Format {
		return
	}
	text, err := c.Export()
	if err != nil {
		c.log.Error("export failed", zap.Error(err), zap.Stringer("format", c.settings.Format))
		return
	}
	c.last = published{revision: rev, format: c.settings.Format, done: true}
	c.OnOutput(text)
}

func (c *Canvas) publishControls() {
	if c.OnControls != nil {
		c.OnControls(c.Controls())
	}
}
