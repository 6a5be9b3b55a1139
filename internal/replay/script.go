// Package replay drives an engine from a recorded script of pointer events
// and control operations, without a window.
package replay

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"LineSketch/internal/config"
	"LineSketch/internal/engine"
	"LineSketch/internal/export"
	"LineSketch/internal/render"
)

// Script is a replayable session.
type Script struct {
	Scale float64 `yaml:"scale" validate:"gte=0"`
	Steps []Step  `yaml:"steps" validate:"dive"`
}

// Step is one input. Pointer steps use X and Y in device space; drag moves
// from From to To in increments of Step device units.
type Step struct {
	Op     string     `yaml:"op" validate:"oneof=down move up drag undo redo clear color thickness size format"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	From   [2]float64 `yaml:"from"`
	To     [2]float64 `yaml:"to"`
	Step   float64    `yaml:"step" validate:"gte=0"`
	Value  string     `yaml:"value"`
	Width  float64    `yaml:"width" validate:"gte=0"`
	Height float64    `yaml:"height" validate:"gte=0"`
}

var validate = validator.New()

// Decode reads and validates a YAML script.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// NewCanvas builds an engine from cfg, ready to replay s.
func NewCanvas(cfg config.Config, s *Script, surface render.Surface, log *zap.Logger) (*engine.Canvas, error) {
	format, err := export.ParseFormat(cfg.DataFormat)
	if err != nil {
		return nil, err
	}
	settings := engine.Settings{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Thickness: config.ClampThickness(cfg.Thickness),
		Color:     cfg.Color,
		Format:    format,
	}
	return engine.New(settings, surface, engine.WithLogger(log), engine.WithScale(s.Scale))
}

// Run feeds every step of s to c in order. It stops at the first step that
// cannot be applied.
func Run(c *engine.Canvas, s *Script) error {
	for i, st := range s.Steps {
		if err := apply(c, st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

func apply(c *engine.Canvas, st Step) error {
	switch st.Op {
	case "down":
		c.Handle(engine.Event{Kind: engine.Down, X: st.X, Y: st.Y})
	case "move":
		c.Handle(engine.Event{Kind: engine.Move, X: st.X, Y: st.Y})
	case "up":
		c.Handle(engine.Event{Kind: engine.Up, X: st.X, Y: st.Y})
	case "drag":
		drag(c, st)
	case "undo":
		c.Undo()
	case "redo":
		c.Redo()
	case "clear":
		c.ClearAll()
	case "color":
		if st.Value == "" {
			return fmt.Errorf("color needs a value")
		}
		c.SetColor(st.Value)
	case "thickness":
		v, err := strconv.ParseFloat(st.Value, 64)
		if err != nil {
			return fmt.Errorf("thickness %q: %w", st.Value, err)
		}
		c.SetThickness(config.ClampThickness(v))
	case "size":
		return c.SetSize(st.Width, st.Height)
	case "format":
		f, err := export.ParseFormat(st.Value)
		if err != nil {
			return err
		}
		return c.SetFormat(f)
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func drag(c *engine.Canvas, st Step) {
	step := st.Step
	if step <= 0 {
		step = 1
	}
	dx, dy := st.To[0]-st.From[0], st.To[1]-st.From[1]
	n := int(max(abs(dx), abs(dy)) / step)
	c.Handle(engine.Event{Kind: engine.Down, X: st.From[0], Y: st.From[1]})
	for i := 1; i <= n; i++ {
		c.Handle(engine.Event{
			Kind: engine.Move,
			X:    st.From[0] + dx*float64(i)/float64(n),
			Y:    st.From[1] + dy*float64(i)/float64(n),
		})
	}
	c.Handle(engine.Event{Kind: engine.Up, X: st.To[0], Y: st.To[1]})
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
