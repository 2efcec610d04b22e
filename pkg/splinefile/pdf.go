// PDF export of a spline, drawn as native cubic curves.

package splinefile

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
)

// pdfScale maps canvas pixels to millimetres on an A4 page.
const pdfScale = 3.0

func buildPDF(s *spline.Spline, cfg Config, showKnots bool) *gofpdf.Fpdf {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.5)

	for i := 0; i < s.SegmentCount(); i++ {
		seg := s.Segment(i)
		p.CurveBezierCubic(
			seg.P0.X/pdfScale, seg.P0.Y/pdfScale,
			seg.P1.X/pdfScale, seg.P1.Y/pdfScale,
			seg.P2.X/pdfScale, seg.P2.Y/pdfScale,
			seg.P3.X/pdfScale, seg.P3.Y/pdfScale,
			"D",
		)
	}

	if showKnots {
		c := parseHexColor(cfg.KnotColor)
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		for _, k := range s.Knots() {
			p.Circle(float64(k.X)/pdfScale, float64(k.Y)/pdfScale,
				float64(cfg.KnotSize)/(2*pdfScale), "F")
		}
	}

	return p
}

// WritePDF renders the spline onto a single A4 page.
func WritePDF(s *spline.Spline, w io.Writer, cfg Config, showKnots bool) error {
	return buildPDF(s, cfg, showKnots).Output(w)
}

// ExportPDF writes the spline to a PDF file at path.
func ExportPDF(s *spline.Spline, path string, cfg Config) error {
	return buildPDF(s, cfg, true).OutputFileAndClose(path)
}
