// Package draw contains drawing primitives for the LED matrix.
//
// All functions draw onto a [draw.Image]. Both a sensehat.Display and a *pixel.Pixels grid
// are one; drawing onto a Display only updates its buffer until it is refreshed.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawing target, see [image/draw.Image].
type Image = draw.Image

// Op is a Porter-Duff compositing operator, see [image/draw.Op].
type Op = draw.Op

// Operators
const (
	Over = draw.Over
	Src  = draw.Src
)

// Draw composes src onto r in dst without a mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask composes src through mask onto r in dst. A nil mask is opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Flatten replaces dst with src composed over black. LEDs cannot show transparency; an LED that
// is off is the closest match, so translucent pixels are darkened rather than blended with what
// dst showed before.
func Flatten(dst Image, src image.Image, sp image.Point) {
	r := dst.Bounds()
	draw.Draw(dst, r, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, r, src, sp, draw.Over)
}
