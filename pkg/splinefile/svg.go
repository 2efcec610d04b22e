// Native SVG rendering of a spline: the curve path, the tangent
// handles and the knot markers.

package splinefile

import (
	"fmt"
	"strings"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
)

// SVGOptions controls SVG output.
type SVGOptions struct {
	Width       int
	Height      int
	Title       string
	ShowHandles bool // draw handle points and knot-to-handle lines
	ShowKnots   bool
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       800,
		Height:      600,
		ShowHandles: true,
		ShowKnots:   true,
	}
}

// RenderSVG renders the spline to an SVG document using the cosmetic
// parameters in cfg.
func RenderSVG(s *spline.Spline, cfg Config, opts SVGOptions) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height))
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf("  <title>%s</title>\n", opts.Title))
	}
	sb.WriteString(fmt.Sprintf(`  <rect width="%d" height="%d" fill="white"/>`+"\n", opts.Width, opts.Height))

	knots := s.Knots()

	if s.SegmentCount() > 0 {
		var d strings.Builder
		first := s.Segment(0)
		d.WriteString(fmt.Sprintf("M %g %g", first.P0.X, first.P0.Y))
		for i := 0; i < s.SegmentCount(); i++ {
			seg := s.Segment(i)
			d.WriteString(fmt.Sprintf(" C %g %g, %g %g, %g %g",
				seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.P3.X, seg.P3.Y))
		}
		sb.WriteString(fmt.Sprintf(`  <path d="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="%s"/>`+"\n",
			d.String(), cfg.CurveColor, cfg.CurveWidth, cfg.LineCap))
	}

	if opts.ShowHandles {
		for _, k := range knots {
			writeHandleSVG(&sb, k, k.Handle1, cfg)
			if k.Handle2 != nil {
				writeHandleSVG(&sb, k, k.Handle2, cfg)
			}
		}
	}

	if opts.ShowKnots {
		for _, k := range knots {
			writeMarkerSVG(&sb, k.X, k.Y, cfg.KnotSize, cfg.KnotShape, cfg.KnotColor)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeHandleSVG(sb *strings.Builder, k *spline.Knot, h *spline.Point, cfg Config) {
	sb.WriteString(fmt.Sprintf(`  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%g"/>`+"\n",
		k.X, k.Y, h.X, h.Y, cfg.HandleLineColor, cfg.HandleLineWidth))
	writeMarkerSVG(sb, h.X, h.Y, cfg.HandleSize, cfg.HandleShape, cfg.HandleColor)
}

func writeMarkerSVG(sb *strings.Builder, x, y, size int, shape, fill string) {
	r := size / 2
	if shape == "square" {
		sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			x-r, y-r, size, size, fill))
		return
	}
	sb.WriteString(fmt.Sprintf(`  <circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n", x, y, r, fill))
}
