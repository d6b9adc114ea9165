package pixel

import "image/color"

// Models for the standard color types.
var (
	PixelModel  color.Model = color.ModelFunc(pixelModel)
	RGB565Model color.Model = color.ModelFunc(rgb565Model)
)

// Common colors.
var (
	Black = Pixel{}
	White = Pixel{R: 0xff, G: 0xff, B: 0xff}
	Red   = Pixel{R: 0xff}
	Green = Pixel{G: 0xff}
	Blue  = Pixel{B: 0xff}
)

// Pixel represents a 24-bit 8-8-8 RGB color. It is always opaque.
type Pixel struct {
	R, G, B uint8
}

func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Pack converts the pixel to its device representation.
func (p Pixel) Pack() RGB565 {
	return RGB565(Pack(p))
}

func pixelModel(c color.Color) color.Color {
	switch c := c.(type) {
	case Pixel:
		return c
	case RGB565:
		return Unpack(uint16(c))
	}
	// Translucent colors are flattened onto black (LED off).
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGB565 represents a 16-bit 5-6-5 RGB color, as stored by the LED matrix.
type RGB565 uint16

func (c RGB565) RGBA() (r, g, b, a uint32) {
	return Unpack(uint16(c)).RGBA()
}

// Pixel unpacks the color to 8 bits per channel.
func (c RGB565) Pixel() Pixel {
	return Unpack(uint16(c))
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	return RGB565(Pack(pixelModel(c).(Pixel)))
}

// Pack converts a 24-bit color to the 16-bit device format. The low 3 bits of red and blue and
// the low 2 bits of green are discarded.
func Pack(p Pixel) uint16 {
	return uint16(p.R>>3)<<11 | uint16(p.G>>2)<<5 | uint16(p.B>>3)
}

// Unpack converts a 16-bit device word back to a 24-bit color. The quantized fields are placed in
// the high bits of each channel; the low bits are zero.
//
// Pack(Unpack(v)) == v for every v, so Unpack(Pack(p)) is a fixed point of Unpack∘Pack.
func Unpack(v uint16) Pixel {
	var (
		msb = uint8(v >> 8)
		lsb = uint8(v)
	)
	return Pixel{
		R: msb & 0xf8,
		G: ((msb&0x07)<<3 | (lsb&0xe0)>>5) << 2,
		B: (lsb & 0x1f) << 3,
	}
}
