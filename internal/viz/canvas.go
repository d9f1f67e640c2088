package viz

import (
	"strings"

	"github.com/san-kum/rlocus/internal/locus"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Set lights the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels; out-of-range pixels are ignored. Cells holding a marker are
// left untouched.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	if !isBraille(c.Grid[row][col]) {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Mark replaces the cell holding sub-pixel (x, y) with r.
func (c *Canvas) Mark(x, y int, r rune) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func isBraille(r rune) bool {
	return r >= blank && r <= blank+0xff
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Plane maps a rectangle of the complex plane onto a Canvas. The real axis
// runs left to right, the imaginary axis bottom to top.
type Plane struct {
	*Canvas
	X, Y locus.Interval
}

func NewPlane(w, h int, x, y locus.Interval) *Plane {
	return &Plane{Canvas: NewCanvas(w, h), X: x, Y: y}
}

// Pixel returns the sub-pixel coordinates of s. ok is false outside the
// window.
func (p *Plane) Pixel(s complex128) (x, y int, ok bool) {
	re, im := real(s), imag(s)
	if re < p.X.Min || re > p.X.Max || im < p.Y.Min || im > p.Y.Max {
		return 0, 0, false
	}
	pw := float64(p.Width*2 - 1)
	ph := float64(p.Height*4 - 1)
	x = int((re-p.X.Min)/(p.X.Max-p.X.Min)*pw + 0.5)
	y = int((p.Y.Max-im)/(p.Y.Max-p.Y.Min)*ph + 0.5)
	return x, y, true
}

// Plot lights the sub-pixel under s.
func (p *Plane) Plot(s complex128) {
	if x, y, ok := p.Pixel(s); ok {
		p.Set(x, y)
	}
}

// Line draws the segment from a to b, clipped to the window by sampling.
func (p *Plane) Line(a, b complex128) {
	steps := p.Width*2 + p.Height*4
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.Plot(a + complex(t, 0)*(b-a))
	}
}

// MarkAt replaces the cell under s with r.
func (p *Plane) MarkAt(s complex128, r rune) {
	if x, y, ok := p.Pixel(s); ok {
		p.Mark(x, y, r)
	}
}
