// Package text renders letters and scrolling messages for the LED matrix.
//
// Text is rendered with a [Face] into a one bit per pixel strip that is 8 pixels high, then
// composed onto [pixel.Pixels] grids. Scrolling yields one grid per column; callers decide how
// long to show each of them.
package text

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/sensehat/pixel"
)

// Baseline is the y coordinate text is written on. Glyphs end on the row above it, the bottom
// row is left for descenders.
const Baseline = pixel.Height - 1

// Face renders text.
type Face interface {
	// Width of s in pixels.
	Width(s string) int

	// Render s onto an alpha mask of Width(s)×8 pixels.
	Render(s string) *image.Alpha
}

// BitmapFace is a tinyfont bitmap font.
type BitmapFace struct {
	Font tinyfont.Fonter
}

// DefaultBitmapFace is the proggy tiny font, which fits the matrix.
var DefaultBitmapFace = &BitmapFace{Font: &proggy.TinySZ8pt7b}

func (f *BitmapFace) Width(s string) int {
	_, w := tinyfont.LineWidth(f.Font, s)
	return int(w)
}

func (f *BitmapFace) Render(s string) *image.Alpha {
	dst := &maskDisplayer{image.NewAlpha(image.Rect(0, 0, f.Width(s), pixel.Height))}
	tinyfont.WriteLine(dst, f.Font, 0, Baseline, s, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return dst.Alpha
}

// maskDisplayer lets tinyfont draw onto an alpha mask.
type maskDisplayer struct {
	*image.Alpha
}

var _ drivers.Displayer = maskDisplayer{}

func (d maskDisplayer) Size() (x, y int16) {
	size := d.Rect.Size()
	return int16(size.X), int16(size.Y)
}

func (d maskDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.SetAlpha(int(x), int(y), color.Alpha{A: c.A})
}

func (d maskDisplayer) Display() error {
	return nil
}

// TrueTypeFace is a scalable font face.
type TrueTypeFace struct {
	Face font.Face
}

// NewTrueTypeFace parses a TrueType font and scales it to size points at 72 DPI, so one point is
// one LED.
func NewTrueTypeFace(ttf []byte, size float64) (*TrueTypeFace, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return &TrueTypeFace{
		Face: truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// NewGoMonoFace returns the Go Mono font at 8 points.
func NewGoMonoFace() (*TrueTypeFace, error) {
	return NewTrueTypeFace(gomono.TTF, pixel.Height)
}

func (f *TrueTypeFace) Width(s string) int {
	return font.MeasureString(f.Face, s).Ceil()
}

func (f *TrueTypeFace) Render(s string) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, f.Width(s), pixel.Height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: f.Face,
		Dot:  fixed.P(0, Baseline),
	}
	d.DrawString(s)
	return dst
}
