package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both inclusive.
func Line(dst Image, a, b image.Point, c color.Color) {
	var (
		dx = abs(b.X - a.X)
		dy = -abs(b.Y - a.Y)
		sx = sign(b.X - a.X)
		sy = sign(b.Y - a.Y)
		e  = dx + dy
		p  = a
	)
	for {
		dst.Set(p.X, p.Y, c)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon().Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Fill the whole image with a single color.
func Fill(dst Image, c color.Color) {
	Box(dst, dst.Bounds(), c)
}

// Spiral returns the cells of a size×size grid in the order of a clock wise spiral, starting at
// the top left corner and winding inward.
func Spiral(size int) []image.Point {
	var (
		out           = make([]image.Point, 0, size*size)
		top, left     = 0, 0
		bottom, right = size - 1, size - 1
	)
	for top <= bottom && left <= right {
		for x := left; x <= right; x++ {
			out = append(out, image.Pt(x, top))
		}
		for y := top + 1; y <= bottom; y++ {
			out = append(out, image.Pt(right, y))
		}
		if top < bottom {
			for x := right - 1; x >= left; x-- {
				out = append(out, image.Pt(x, bottom))
			}
		}
		if left < right {
			for y := bottom - 1; y > top; y-- {
				out = append(out, image.Pt(left, y))
			}
		}
		top, left, bottom, right = top+1, left+1, bottom-1, right-1
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
