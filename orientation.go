package sensehat

import (
	"fmt"
	"strings"

	"github.com/BeatGlow/sensehat/pixel"
)

// Orientation defines the rotation of the image relative to the native mounting of the matrix.
type Orientation uint8

// Supported orientations.
const (
	Rotate0   Orientation = iota
	Rotate90              // Rotate 90° clock wise
	Rotate180             // Rotate 180°
	Rotate270             // Rotate 270° clock wise
)

func (o Orientation) String() string {
	switch o % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Degrees returns the clock wise rotation in degrees.
func (o Orientation) Degrees() int {
	return int(o%4) * 90
}

// ParseOrientation parses a rotation in degrees, or one of the aliases "no", "right", "cw",
// "flip", "left" and "ccw".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSuffix(s, "°")) {
	case "", "no", "0":
		return Rotate0, nil
	case "90", "right", "cw":
		return Rotate90, nil
	case "180", "flip":
		return Rotate180, nil
	case "270", "left", "ccw":
		return Rotate270, nil
	default:
		return Rotate0, fmt.Errorf("sensehat: invalid orientation %q", s)
	}
}

// PhysicalOffset maps the logical coordinate (x, y) to the index of the cell that shows it on
// the device, for orientation o. The byte offset in a Frame is twice the index.
//
// x and y must be in [0, 7]; for every orientation the mapping is a bijection over the 64 cells.
func PhysicalOffset(x, y int, o Orientation) int {
	const (
		w = pixel.Width
		n = pixel.Count
	)
	switch o % 4 {
	case Rotate90:
		return (w - 1 - y) + w*x
	case Rotate180:
		return n - 1 - (x + w*y)
	case Rotate270:
		return y + w*(w-1-x)
	default:
		return x + w*y
	}
}
