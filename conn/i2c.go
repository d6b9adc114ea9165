// Package conn talks to the Sense HAT LED matrix over I²C, bypassing the rpisense-fb driver.
//
// The HAT microcontroller exposes the LEDs as 192 registers starting at register 0: for every
// row, eight red, eight green and eight blue 5-bit levels. Without the kernel driver there is no
// one to apply the gamma table, so [I2C] does that itself when a frame is sent.
package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
)

// DefaultAddr is the I²C address of the LED matrix controller.
const DefaultAddr = 0x46

// RegisterSize is the size of the LED register block.
const RegisterSize = pixel.Count * 3

var _ sensehat.Device = (*I2C)(nil)

// I2C is an LED matrix on an I²C bus.
type I2C struct {
	bus    i2c.Bus
	conn   conn.Conn
	frame  sensehat.Frame
	curves sensehat.Curves
	buf    [1 + RegisterSize]byte
}

// OpenI2C opens the numbered I²C bus, use -1 to use the first available bus.
func OpenI2C(device int, addr uint16) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}
	return NewI2C(bus, addr), nil
}

// NewI2C uses an already opened bus.
func NewI2C(bus i2c.Bus, addr uint16) *I2C {
	return &I2C{
		bus:    bus,
		conn:   &i2c.Dev{Bus: bus, Addr: addr},
		curves: sensehat.NewCurves(),
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

// Close the bus, if it was opened by OpenI2C.
func (c *I2C) Close() error {
	if closer, ok := c.bus.(i2c.BusCloser); ok {
		return closer.Close()
	}
	return nil
}

// WriteFrame sends the frame through the active gamma table.
func (c *I2C) WriteFrame(f *sensehat.Frame) error {
	c.frame = *f
	return c.flush()
}

// Control serves the gamma requests like the kernel driver does. A changed curve is applied to
// the last frame straight away.
func (c *I2C) Control(code sensehat.ControlCode, arg []byte) error {
	if err := c.curves.Control(code, arg); err != nil {
		return err
	}
	if code == sensehat.ControlGetGamma {
		return nil
	}
	return c.flush()
}

func (c *I2C) flush() error {
	Encode(c.buf[1:], &c.frame, &c.curves)
	return c.conn.Tx(c.buf[:], nil)
}

// Encode converts a frame to LED register values. dst must hold RegisterSize bytes.
func Encode(dst []byte, f *sensehat.Frame, curves *sensehat.Curves) {
	_ = dst[RegisterSize-1]
	for y := 0; y < pixel.Height; y++ {
		row := dst[y*pixel.Width*3:]
		for x := 0; x < pixel.Width; x++ {
			v := f.Word(x + pixel.Width*y)
			row[x] = curves.Level(v >> 11)
			row[x+pixel.Width] = curves.Level(v >> 6)
			row[x+pixel.Width*2] = curves.Level(v)
		}
	}
}
