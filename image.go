package sensehat

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/sensehat/pixel"
)

var (
	_ draw.Image     = (*Display)(nil)
	_ display.Drawer = (*Display)(nil)
)

func (d *Display) String() string {
	return fmt.Sprintf("sensehat.Display{%v, %s}", d.dev, d.orientation)
}

// Bounds is the display bounding box (dimensions).
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, pixel.Width, pixel.Height)
}

// ColorModel used by the display.
func (d *Display) ColorModel() color.Model {
	return pixel.RGB565Model
}

// At returns the color of the pixel at logical (x, y).
func (d *Display) At(x, y int) color.Color {
	if !inBounds(x, y) {
		return color.Transparent
	}
	return pixel.RGB565(d.frame.Word(x + pixel.Width*y))
}

// Set the pixel color at logical (x, y) without redrawing; call Refresh to show the result.
func (d *Display) Set(x, y int, c color.Color) {
	if !inBounds(x, y) {
		return
	}
	d.frame.SetWord(x+pixel.Width*y, uint16(pixel.RGB565Model.Convert(c).(pixel.RGB565)))
}

// Refresh redraws the display.
func (d *Display) Refresh() error {
	return d.refresh()
}

// Draw composes src onto the area r of the display and redraws it.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d, r, src, sp, draw.Src)
	return d.refresh()
}

// Halt turns all LEDs off.
func (d *Display) Halt() error {
	return d.Clear(nil)
}
