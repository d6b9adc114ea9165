// Package framebuffer provides access to the Sense HAT LED matrix through the Linux framebuffer
// device registered by the rpisense-fb driver.
//
// The device is located among the /dev/fb* nodes by its fixed identification string, see [Find].
// The returned [Device] implements [sensehat.Device]: frames are copied into the memory mapped
// pixel buffer, and gamma requests are issued as ioctl calls.
package framebuffer

import (
	"bytes"
	"errors"
	"os"
)

// ID is the identification string reported by the rpisense-fb driver.
const ID = "RPi-Sense FB"

// Pattern matches the candidate framebuffer device nodes.
var Pattern = "/dev/fb*"

// Errors
var (
	ErrClosed = errors.New("framebuffer: device is closed")
)

var debug bool

func init() {
	debug = os.Getenv("SENSEHAT_DEBUG") != ""
}

// Device is an opened RPi-Sense framebuffer.
type Device struct {
	f    *os.File
	fd   uintptr
	name string
	mem  []byte
}

func (d *Device) String() string {
	return "framebuffer " + d.name
}

// Name of the device node.
func (d *Device) Name() string {
	return d.name
}

// matchID reports if the NUL padded screen id starts with ID.
func matchID(id []byte) bool {
	return bytes.HasPrefix(id, []byte(ID))
}

// trimID returns the screen id without NUL padding.
func trimID(id []byte) string {
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	return string(id)
}
