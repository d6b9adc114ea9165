// Package emulator provides an in-memory Sense HAT LED matrix.
//
// A [Device] behaves like the rpisense-fb driver: it keeps the last frame written to it, and
// implements the gamma control requests with the default, low light and user curves. The
// window subpackage shows a Device on the desktop.
package emulator

import (
	"image"
	"image/color"
	"sync"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
)

// Errors returned by Control, mirroring the driver's EINVAL and ENOTTY.
var (
	ErrInvalidArgument = sensehat.ErrControlArgument
	ErrUnknownControl  = sensehat.ErrUnknownControl
)

var _ sensehat.Device = (*Device)(nil)

// Device is an emulated LED matrix. It is safe for concurrent use, so a renderer may read it
// while a Display writes to it.
type Device struct {
	mu     sync.Mutex
	frame  sensehat.Frame
	curves sensehat.Curves
	writes int
}

// New returns a blank device with the default gamma curve loaded.
func New() *Device {
	return &Device{curves: sensehat.NewCurves()}
}

func (d *Device) String() string {
	return "emulator"
}

func (d *Device) WriteFrame(f *sensehat.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = *f
	d.writes++
	return nil
}

func (d *Device) Control(code sensehat.ControlCode, arg []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.curves.Control(code, arg)
}

// Frame returns the last frame written.
func (d *Device) Frame() sensehat.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// Gamma returns the active gamma table.
func (d *Device) Gamma() sensehat.GammaTable {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.curves.Active
}

// Writes returns the number of frames written.
func (d *Device) Writes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writes
}

// RGBA renders the LEDs as they would light up: every 5-bit channel (green reduced from 6 bits)
// goes through the gamma table, and the resulting 5-bit level is scaled to 8 bits.
func (d *Device) RGBA() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, pixel.Width, pixel.Height))
	for i := 0; i < pixel.Count; i++ {
		v := d.frame.Word(i)
		img.SetRGBA(i%pixel.Width, i/pixel.Width, color.RGBA{
			R: level(d.curves.Level(v >> 11)),
			G: level(d.curves.Level(v >> 6)),
			B: level(d.curves.Level(v)),
			A: 0xff,
		})
	}
	return img
}

// level expands a 5-bit brightness level to 8 bits.
func level(v uint8) uint8 {
	v &= 0x1f
	return v<<3 | v>>2
}
