// Package sensehat drives the 8×8 RGB LED matrix of the Raspberry Pi Sense HAT.
//
// A [Display] keeps an in-memory mirror of the device memory in logical (unrotated) order and
// transfers it to a [Device] after every change, applying the current [Orientation] on the way
// out. The Linux device handle lives in the framebuffer package; an emulated device lives in the
// emulator package.
//
// A Display is not safe for concurrent use.
package sensehat

import (
	"errors"
	"log"
	"os"

	"github.com/BeatGlow/sensehat/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("SENSEHAT_DEBUG") != ""
}

// Errors
var (
	ErrOutOfBounds   = errors.New("sensehat: pixel coordinate out of bounds")
	ErrInvalidGamma  = errors.New("sensehat: gamma value out of range")
	ErrMissingDevice = errors.New("sensehat: no RPi-Sense framebuffer found")

	// Returned by devices that serve control requests themselves.
	ErrControlArgument = errors.New("sensehat: invalid control argument")
	ErrUnknownControl  = errors.New("sensehat: inappropriate control request")
)

// Config is the display configuration.
type Config struct {
	// Orientation of the image.
	Orientation Orientation

	// IgnoreControlErrors discards failures of gamma control calls, as the original
	// Sense HAT libraries do. Frame writes are never ignored.
	IgnoreControlErrors bool

	// Clear turns all LEDs off when the display is created.
	Clear bool
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Orientation: Rotate0,
}

// Display is the LED matrix.
type Display struct {
	dev                 Device
	frame               Frame
	orientation         Orientation
	ignoreControlErrors bool
}

// New creates a Display on the provided device. The frame starts out blank; the device is only
// written to if config.Clear is set.
func New(dev Device, config *Config) (*Display, error) {
	if dev == nil {
		return nil, ErrMissingDevice
	}
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	d := &Display{
		dev:                 dev,
		orientation:         config.Orientation % 4,
		ignoreControlErrors: config.IgnoreControlErrors,
	}
	if config.Clear {
		if err := d.Clear(nil); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Frame returns a copy of the raw frame, in logical order.
func (d *Display) Frame() Frame {
	return d.frame
}

// SetPixel sets the pixel at (x, y) to p and redraws the matrix.
//
// The logical coordinate is used; rotation is only applied when the frame is transferred.
func (d *Display) SetPixel(x, y int, p pixel.Pixel) error {
	if !inBounds(x, y) {
		return ErrOutOfBounds
	}
	d.frame.SetWord(x+pixel.Width*y, pixel.Pack(p))
	return d.refresh()
}

// GetPixel returns the pixel at (x, y).
//
// Unlike GetPixels, the cell is looked up with the physical offset of the current orientation.
// After changing the orientation without writing new pixels, GetPixel(x, y) may thus return a
// different pixel than GetPixels()[x+8*y].
//
// The value returned is the packed color, which may differ from the color that was set.
func (d *Display) GetPixel(x, y int) (pixel.Pixel, error) {
	if !inBounds(x, y) {
		return pixel.Black, ErrOutOfBounds
	}
	return pixel.Unpack(d.frame.Word(PhysicalOffset(x, y, d.orientation))), nil
}

// SetPixels updates the entire matrix and redraws it.
func (d *Display) SetPixels(p *pixel.Pixels) error {
	for i, c := range p {
		d.frame.SetWord(i, pixel.Pack(c))
	}
	return d.refresh()
}

// GetPixels returns the entire matrix in logical row-major order, ignoring orientation.
//
// You will notice that the pixel values passed to SetPixels sometimes change when read back:
// the matrix stores colors as RGB565, which drops 3 bits of red and blue precision and 2 bits of
// green precision.
func (d *Display) GetPixels() (p pixel.Pixels) {
	for i := range p {
		p[i] = pixel.Unpack(d.frame.Word(i))
	}
	return
}

// Clear sets the entire matrix to a single color, or turns all LEDs off if c is nil. The matrix
// is always redrawn.
func (d *Display) Clear(c *pixel.Pixel) error {
	if c == nil {
		d.frame = Frame{}
		return d.refresh()
	}
	v := pixel.Pack(*c)
	for i := 0; i < pixel.Count; i++ {
		d.frame.SetWord(i, v)
	}
	return d.refresh()
}

// Fill sets the entire matrix to color p.
func (d *Display) Fill(p pixel.Pixel) error {
	return d.Clear(&p)
}

// FlipHorizontal mirrors the image left to right. The flipped grid is returned; it is only shown
// if redraw is set.
func (d *Display) FlipHorizontal(redraw bool) (pixel.Pixels, error) {
	p := d.GetPixels()
	for y := 0; y < pixel.Height; y++ {
		row := p.Row(y)
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	if redraw {
		if err := d.SetPixels(&p); err != nil {
			return p, err
		}
	}
	return p, nil
}

// FlipVertical mirrors the image top to bottom. The flipped grid is returned; it is only shown if
// redraw is set.
func (d *Display) FlipVertical(redraw bool) (pixel.Pixels, error) {
	p := d.GetPixels()
	for i, j := 0, pixel.Height-1; i < j; i, j = i+1, j-1 {
		top, bottom := p.Row(i), p.Row(j)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
	if redraw {
		if err := d.SetPixels(&p); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Orientation returns the current orientation.
func (d *Display) Orientation() Orientation {
	return d.orientation
}

// SetOrientation changes the orientation. If redraw is not set, the new orientation takes effect
// with the next write to the matrix.
func (d *Display) SetOrientation(o Orientation, redraw bool) error {
	d.orientation = o % 4
	if debug {
		log.Printf("sensehat: orientation %s", d.orientation)
	}
	if redraw {
		return d.refresh()
	}
	return nil
}

// refresh transfers the frame to the device. The frame itself stays in logical order; rotated
// output is built in a scratch frame.
func (d *Display) refresh() error {
	if d.orientation == Rotate0 {
		return d.write(&d.frame)
	}

	var out Frame
	for y := 0; y < pixel.Height; y++ {
		for x := 0; x < pixel.Width; x++ {
			out.SetWord(PhysicalOffset(x, y, d.orientation), d.frame.Word(x+pixel.Width*y))
		}
	}
	return d.write(&out)
}

func (d *Display) write(f *Frame) error {
	if err := d.dev.WriteFrame(f); err != nil {
		return &DeviceError{Op: "write frame", Err: err}
	}
	return nil
}

func inBounds(x, y int) bool {
	return x >= 0 && x < pixel.Width && y >= 0 && y < pixel.Height
}
