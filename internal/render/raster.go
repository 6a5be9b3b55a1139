package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// Raster is a Surface backed by an RGBA image. Strokes are built from one
// quad per segment plus a disc per point, which gives round caps and joins.
type Raster struct {
	img        *image.RGBA
	background color.Color
	z          *vector.Rasterizer
}

// NewRaster allocates a width×height surface cleared to background.
func NewRaster(width, height int, background color.Color) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		z:          vector.NewRasterizer(width, height),
	}
	r.Clear()
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Clear fills the surface with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// Stroke paints s over the current contents.
func (r *Raster) Stroke(s Stroke) {
	if len(s.Points) == 0 || s.Width <= 0 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	radius := s.Width / 2

	// Every sub-shape winds the same way so that overlaps saturate instead
	// of cancelling out.
	for i, p := range s.Points {
		r.disc(p, radius)
		if i > 0 {
			r.quad(s.Points[i-1], p, radius)
		}
	}
	r.z.Draw(r.img, b, image.NewUniform(ColorOrBlack(s.Color)), image.Point{})
}

// WritePNG encodes the surface as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) quad(a, b Point, radius float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	nx, ny := -dy/n*radius, dx/n*radius
	r.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.z.ClosePath()
}

func (r *Raster) disc(c Point, radius float64) {
	steps := int(math.Ceil(radius * 2))
	steps = max(12, min(steps, 96))
	r.z.MoveTo(float32(c.X+radius), float32(c.Y))
	for i := 1; i < steps; i++ {
		a := -2 * math.Pi * float64(i) / float64(steps)
		r.z.LineTo(float32(c.X+radius*math.Cos(a)), float32(c.Y+radius*math.Sin(a)))
	}
	r.z.ClosePath()
}
