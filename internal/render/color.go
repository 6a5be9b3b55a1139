package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a style token to a color. It accepts #rgb and
// #rrggbb hex values and SVG color names.
func ParseColor(token string) (color.NRGBA, error) {
	token = strings.TrimSpace(token)
	if c, ok := colornames.Map[strings.ToLower(token)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", token, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ColorOrBlack is ParseColor with black as the fallback.
func ColorOrBlack(token string) color.NRGBA {
	c, err := ParseColor(token)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}

// ErrTransparent is returned for colors with no visible hex token.
var ErrTransparent = errors.New("color is fully transparent")

// HexColor formats c as a #rrggbb token.
func HexColor(c color.Color) (string, error) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", ErrTransparent
	}
	return cf.Hex(), nil
}
