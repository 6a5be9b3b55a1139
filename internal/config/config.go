// Package config holds the canvas settings the host reads at startup.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("invalid config")

// Thickness limits applied to user input.
const (
	MinThickness = 1
	MaxThickness = 1000
)

// Config describes the logical canvas and the initial pen.
type Config struct {
	Width      float64 `yaml:"width" validate:"gt=0"`
	Height     float64 `yaml:"height" validate:"gt=0"`
	Thickness  float64 `yaml:"thickness" validate:"gte=1,lte=1000"`
	Color      string  `yaml:"color" validate:"required"`
	DataFormat string  `yaml:"data_format" validate:"oneof=1 2 raw compact"`
	Padding    float64 `yaml:"padding" validate:"gte=0"`
	Debug      bool    `yaml:"debug"`
}

var validate = validator.New()

// Default returns the settings the drawing starts with.
func Default() Config {
	return Config{
		Width:      600,
		Height:     600,
		Thickness:  16,
		Color:      "#000000",
		DataFormat: "2",
		Padding:    20,
	}
}

// Load reads path over the defaults. A missing file leaves the defaults in
// place; an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field against its limits.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ClampThickness applies the input limits to a raw thickness value.
func ClampThickness(v float64) float64 {
	v = math.Min(math.Max(v, 0), MaxThickness)
	return math.Max(v, MinThickness)
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
