package sensehat

import (
	"encoding/binary"
	"fmt"

	"github.com/BeatGlow/sensehat/pixel"
)

// FrameSize is the size of a raw frame in bytes.
const FrameSize = pixel.Count * 2

// Frame is the raw device memory of the LED matrix: 64 little-endian RGB565 words.
type Frame [FrameSize]byte

// Word returns the RGB565 word of cell i.
func (f Frame) Word(i int) uint16 {
	return binary.LittleEndian.Uint16(f[i*2:])
}

// SetWord updates the RGB565 word of cell i.
func (f *Frame) SetWord(i int, v uint16) {
	binary.LittleEndian.PutUint16(f[i*2:], v)
}

// ControlCode is a device control (ioctl) request code.
type ControlCode uint

// Control requests understood by the rpisense-fb driver.
const (
	ControlGetGamma   ControlCode = 0xf100
	ControlSetGamma   ControlCode = 0xf101
	ControlResetGamma ControlCode = 0xf102
)

func (c ControlCode) String() string {
	switch c {
	case ControlGetGamma:
		return "get gamma"
	case ControlSetGamma:
		return "set gamma"
	case ControlResetGamma:
		return "reset gamma"
	default:
		return fmt.Sprintf("control %#04x", uint(c))
	}
}

// Device is the raw raster device handle.
type Device interface {
	// WriteFrame transfers a full frame to the device. It blocks until the transfer completes.
	WriteFrame(*Frame) error

	// Control issues a control request. For ControlGetGamma and ControlSetGamma, arg is the
	// GammaSize byte in/out buffer; for ControlResetGamma it holds a single curve selector byte,
	// which is passed to the driver by value.
	Control(code ControlCode, arg []byte) error
}

// DeviceError is a failure reported by the Device.
type DeviceError struct {
	Op  string
	Err error
}

func (err *DeviceError) Error() string {
	return "sensehat: " + err.Op + ": " + err.Err.Error()
}

func (err *DeviceError) Unwrap() error {
	return err.Err
}
