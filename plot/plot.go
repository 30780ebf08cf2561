// Package plot renders numerals onto the ring grid of package ringmap.
//
// Every numeral is mapped with [ringmap.Locate] and drawn as a dot at its
// Cartesian point, with the origin in the middle of the image and the
// Y axis pointing up.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/govalues/ringmap"
	"github.com/govalues/ringmap/internal/raster"

	"go.uber.org/zap"
	"tinygo.org/x/tinyfont"
)

var (
	// Zap logger to use in this package; default is a no-op logger.
	logger = zap.NewNop()
)

// Change the Zap logger instance used by this package.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

var (
	colorBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorGrid  = color.RGBA{R: 0x2a, G: 0x2a, B: 0x33, A: 0xff}
	colorAxis  = color.RGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff}
	colorDot   = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorLabel = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

const (
	minSize    = 64
	margin     = 12
	ringStep   = 11 // draw every 11th ring, 77 = 7 * 11
	labelLimit = 12 // numerals longer than this are shortened in labels
)

// Options controls rendering.
type Options struct {
	Size   int  // width and height of the image in pixels
	Grid   bool // draw rings and sector spokes
	Labels bool // write numerals next to their dots
}

// DefaultOptions returns options for a 640x640 image with a grid and
// without labels.
func DefaultOptions() Options {
	return Options{Size: 640, Grid: true}
}

// Plot is an image with numerals placed on the ring grid.
// A Plot is not safe for concurrent use.
type Plot struct {
	opts   Options
	canvas *raster.Canvas
	font   tinyfont.Fonter
	scale  float64 // pixels per radius unit
	n      int
}

// New returns an empty plot.
// Sizes smaller than 64 pixels are increased to 64.
func New(opts Options) *Plot {
	if opts.Size < minSize {
		opts.Size = minSize
	}
	p := &Plot{
		opts:   opts,
		canvas: raster.New(opts.Size, opts.Size),
		font:   &tinyfont.TomThumb,
		scale:  float64(opts.Size/2-margin) / ringmap.MaxRadius,
	}
	p.canvas.Fill(colorBG)
	if opts.Grid {
		p.drawGrid()
	}
	logger.Debug("plot: new",
		zap.Int("size", opts.Size),
		zap.Float64("scale", p.scale),
	)
	return p
}

// center returns the pixel coordinates of the origin.
func (p *Plot) center() (int, int) {
	return p.opts.Size / 2, p.opts.Size / 2
}

// pixel converts a point to pixel coordinates.
func (p *Plot) pixel(pt ringmap.Point) (int, int) {
	cx, cy := p.center()
	x := cx + round(pt.X*p.scale)
	y := cy - round(pt.Y*p.scale)
	return x, y
}

func (p *Plot) drawGrid() {
	cx, cy := p.center()
	for theta := 0; theta < ringmap.Sectors; theta++ {
		end := ringmap.Polar{Theta: theta, Ring: ringmap.Rings - 1}.Point()
		x, y := p.pixel(end)
		col := colorGrid
		if theta%10 == 0 {
			col = colorAxis
		}
		p.canvas.Line(cx, cy, x, y, col)
	}
	for ring := ringStep; ring <= ringmap.MaxRadius; ring += ringStep {
		p.canvas.Circle(cx, cy, round(float64(ring)*p.scale), colorAxis)
	}
	p.canvas.Text(p.font, 2, 6, fmt.Sprintf("%v sectors x %v rings", ringmap.Sectors, ringmap.Rings), colorDim)
}

// Add maps num and draws it.
// The mapping error, if any, is returned unchanged and nothing is drawn.
func (p *Plot) Add(num string) (ringmap.Polar, error) {
	l := logger.With(
		zap.Int("digits", len(num)),
	)
	pol, err := ringmap.Locate(num)
	if err != nil {
		l.Debug("plot: numeral rejected",
			zap.Error(err),
		)
		return ringmap.Polar{}, err
	}
	pt := pol.Point()
	x, y := p.pixel(pt)
	p.canvas.Disc(x, y, 2, colorDot)
	if p.opts.Labels {
		p.canvas.Text(p.font, int16(x+4), int16(y+2), shorten(num), colorLabel)
	}
	p.n++
	l.Debug("plot: numeral added",
		zap.Int("theta", pol.Theta),
		zap.Int("ring", pol.Ring),
		zap.Int("x", x),
		zap.Int("y", y),
	)
	return pol, nil
}

// Len returns the number of numerals drawn.
func (p *Plot) Len() int {
	return p.n
}

// Image returns the rendered image. It is not copied.
func (p *Plot) Image() *image.RGBA {
	return p.canvas.Image()
}

// WritePNG encodes the rendered image as PNG.
func (p *Plot) WritePNG(w io.Writer) error {
	if err := png.Encode(w, p.Image()); err != nil {
		logger.Error("Error encoding plot",
			zap.Error(err),
		)
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// shorten truncates long numerals for labels, keeping the leading digits.
func shorten(num string) string {
	if len(num) <= labelLimit {
		return num
	}
	return num[:labelLimit-2] + ".."
}

func round(x float64) int {
	return int(math.Round(x))
}
