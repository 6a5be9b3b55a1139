package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"LineSketch/internal/render"
	"LineSketch/internal/state"
)

// PDF is a render.Surface that draws onto a single PDF page sized to the
// display canvas, one point per device unit.
type PDF struct {
	size state.Size
	doc  *gofpdf.Fpdf
}

// NewPDF creates an empty page of the given device size.
func NewPDF(size state.Size) *PDF {
	p := &PDF{size: size}
	p.Clear()
	return p
}

// Clear discards everything drawn so far and starts a blank page.
func (p *PDF) Clear() {
	p.doc = gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: p.size.Width, Ht: p.size.Height},
	})
	p.doc.SetMargins(0, 0, 0)
	p.doc.SetAutoPageBreak(false, 0)
	p.doc.AddPage()
}

// Stroke draws s with round caps and joins.
func (p *PDF) Stroke(s render.Stroke) {
	if len(s.Points) == 0 {
		return
	}
	c := render.ColorOrBlack(s.Color)
	if len(s.Points) == 1 {
		p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
		p.doc.Circle(s.Points[0].X, s.Points[0].Y, s.Width/2, "F")
		return
	}
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetLineWidth(s.Width)
	p.doc.SetLineCapStyle("round")
	p.doc.SetLineJoinStyle("round")
	p.doc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, pt := range s.Points[1:] {
		p.doc.LineTo(pt.X, pt.Y)
	}
	p.doc.DrawPath("D")
}

// Write encodes the page as a PDF file.
func (p *PDF) Write(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF renders lines at the given display scale and writes the page.
func WritePDF(w io.Writer, lines []state.Line, bounds state.Size, scale float64) error {
	p := NewPDF(state.DisplaySize(bounds, scale))
	render.Draw(p, lines, scale)
	return p.Write(w)
}
