// Native PNG rendering of a spline using Go's image packages.
// Renders at 4x and downsamples for smoother strokes.

package splinefile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Title       string
	ShowHandles bool
	ShowKnots   bool
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       800,
		Height:      600,
		ShowHandles: true,
		ShowKnots:   true,
	}
}

// curveStrokeSteps is the flattening resolution per segment.
const curveStrokeSteps = 100

// renderContext holds the target image and the title font face.
type renderContext struct {
	img  *image.RGBA
	face font.Face
}

func newRenderContext(img *image.RGBA, scale int) *renderContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font always parses
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(14 * scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}
	return &renderContext{
		img:  img,
		face: face,
	}
}

// RenderPNG renders the spline to PNG with 4x supersampling.
func RenderPNG(s *spline.Spline, w io.Writer, cfg Config, opts PNGOptions) error {
	scale := 4
	largeImg := renderPNGInternal(s, cfg, opts, scale)

	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

func renderPNGInternal(s *spline.Spline, cfg Config, opts PNGOptions, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	ctx := newRenderContext(img, scale)

	// White background
	for y := 0; y < opts.Height*scale; y++ {
		for x := 0; x < opts.Width*scale; x++ {
			img.Set(x, y, color.White)
		}
	}

	fs := float64(scale)
	curveColor := parseHexColor(cfg.CurveColor)
	knotColor := parseHexColor(cfg.KnotColor)
	handleColor := parseHexColor(cfg.HandleColor)
	handleLineColor := parseHexColor(cfg.HandleLineColor)

	if opts.ShowHandles {
		for _, k := range s.Knots() {
			drawHandlePNG(ctx, k, k.Handle1, cfg, fs, handleColor, handleLineColor)
			if k.Handle2 != nil {
				drawHandlePNG(ctx, k, k.Handle2, cfg, fs, handleColor, handleLineColor)
			}
		}
	}

	for i := 0; i < s.SegmentCount(); i++ {
		drawCubicBezier(ctx, s.Segment(i), cfg.CurveWidth*fs, curveColor)
	}

	if opts.ShowKnots {
		for _, k := range s.Knots() {
			drawMarker(ctx, float64(k.X)*fs, float64(k.Y)*fs,
				float64(cfg.KnotSize)*fs/2, cfg.KnotShape, knotColor)
		}
	}

	if opts.Title != "" {
		drawTextCentered(ctx, opts.Width*scale/2, 20*scale, opts.Title, curveColor)
	}

	return img
}

func drawHandlePNG(ctx *renderContext, k *spline.Knot, h *spline.Point, cfg Config, fs float64, fill, line color.Color) {
	drawLine(ctx, float64(k.X)*fs, float64(k.Y)*fs, float64(h.X)*fs, float64(h.Y)*fs,
		cfg.HandleLineWidth*fs, line)
	drawMarker(ctx, float64(h.X)*fs, float64(h.Y)*fs, float64(cfg.HandleSize)*fs/2, cfg.HandleShape, fill)
}

// drawCubicBezier strokes one cubic segment as a flattened polyline.
func drawCubicBezier(ctx *renderContext, seg spline.Segment, width float64, c color.Color) {
	prev := seg.Eval(0)
	for i := 1; i <= curveStrokeSteps; i++ {
		cur := seg.Eval(float64(i) / curveStrokeSteps)
		drawLine(ctx, prev.X, prev.Y, cur.X, cur.Y, width, c)
		prev = cur
	}
}

func drawLine(ctx *renderContext, x1, y1, x2, y2, thickness float64, c color.Color) {
	img := ctx.img

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	halfThick := thickness / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawMarker fills a disc or square of the given radius.
func drawMarker(ctx *renderContext, cx, cy, r float64, shape string, c color.Color) {
	if shape == "square" {
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				ctx.img.Set(int(x), int(y), c)
			}
		}
		return
	}
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			ddx := x - cx
			ddy := y - cy
			if ddx*ddx+ddy*ddy <= r*r {
				ctx.img.Set(int(x), int(y), c)
			}
		}
	}
}

func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - width/2),
			Y: fixed.I(y),
		},
	}
	d.DrawString(text)
}
