// Package raster implements a minimal in-memory display used to render
// ring plots.
// A Canvas satisfies the drivers.Displayer interface, so text can be drawn
// with tinyfont exactly as on a hardware display.
package raster

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas is a display backed by an [image.RGBA].
// Pixels outside of the canvas are silently clipped.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
}

// New returns a canvas of the given size filled with transparent black.
// Non-positive dimensions produce an empty canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying image. It is not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// Display implements drivers.Displayer. A canvas has nothing to flush.
func (c *Canvas) Display() error {
	return nil
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// FillRectangle fills the rectangle with the top-left corner at (x, y),
// clipped to the canvas.
func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(c.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.SetRGBA(px, py, col)
		}
	}
	return nil
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.RGBA) {
	w, h := c.Size()
	_ = c.FillRectangle(0, 0, w, h, col)
}

// Line draws a line between two points using Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Circle draws the outline of a circle using the midpoint algorithm.
// A radius of 0 draws a single pixel.
func (c *Canvas) Circle(cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	x, y := r, 0
	e := 1 - r
	for x >= y {
		c.set(cx+x, cy+y, col)
		c.set(cx+y, cy+x, col)
		c.set(cx-y, cy+x, col)
		c.set(cx-x, cy+y, col)
		c.set(cx-x, cy-y, col)
		c.set(cx-y, cy-x, col)
		c.set(cx+y, cy-x, col)
		c.set(cx+x, cy-y, col)
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

// Disc draws a filled circle.
func (c *Canvas) Disc(cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

// Text writes s with the baseline at y.
func (c *Canvas) Text(font tinyfont.Fonter, x, y int16, s string, col color.RGBA) {
	tinyfont.WriteLine(c, font, x, y, s, col)
}

// TextWidth returns the width of s in pixels.
func TextWidth(font tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
