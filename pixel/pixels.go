package pixel

import (
	"image"
	"image/color"
)

// Grid dimensions.
const (
	Width  = 8
	Height = 8
	Count  = Width * Height
)

// Pixels is a full 8×8 grid of colors in logical row-major order, with the origin at (0, 0).
//
// A *Pixels is a [draw.Image], so it can be used as a drawing target off-screen.
type Pixels [Count]Pixel

// Fill returns a grid where every cell has color p.
func Fill(p Pixel) (out Pixels) {
	for i := range out {
		out[i] = p
	}
	return
}

func (p *Pixels) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

func (p *Pixels) ColorModel() color.Model {
	return PixelModel
}

func (p *Pixels) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Bounds()) {
		return color.Transparent
	}
	return p[x+Width*y]
}

func (p *Pixels) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Bounds()) {
		return
	}
	p[x+Width*y] = pixelModel(c).(Pixel)
}

// PixelAt returns the pixel at (x, y), or black if out of bounds.
func (p *Pixels) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}).In(p.Bounds()) {
		return Black
	}
	return p[x+Width*y]
}

// Row returns row y as a slice aliasing the grid.
func (p *Pixels) Row(y int) []Pixel {
	return p[y*Width : (y+1)*Width]
}
