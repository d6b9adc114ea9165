//go:build !linux

package framebuffer

import (
	"errors"

	"github.com/BeatGlow/sensehat"
)

var ErrNotSupported = errors.New("framebuffer: not supported")

// Find is not supported on this platform.
func Find() (*Device, error) {
	return nil, ErrNotSupported
}

// Open is not supported on this platform.
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func (d *Device) WriteFrame(_ *sensehat.Frame) error {
	return ErrNotSupported
}

func (d *Device) Control(_ sensehat.ControlCode, _ []byte) error {
	return ErrNotSupported
}

func (d *Device) Close() error {
	return ErrNotSupported
}
