// Package pixel implements the color codec of the Sense HAT LED matrix.
//
// The matrix stores every LED as a 16-bit 5-6-5 RGB word. Colors are given as 8-bit per channel
// [Pixel] values and packed by truncation, so reading a pixel back after writing it may return a
// different, but stable, value. The types in this package are compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
