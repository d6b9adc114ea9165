package sensehat

import (
	"fmt"
	"log"
)

// Gamma table limits.
const (
	GammaSize = 32
	MaxGamma  = 31
)

// GammaTable is the brightness lookup table of the LED driver. Every entry is a 5-bit level.
type GammaTable [GammaSize]uint8

// LowLightTable is the dimmed curve selected by SetLowLight.
var LowLightTable = GammaTable{
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2,
	3, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 10, 10,
}

// DefaultGammaTable is the curve the rpisense-fb driver loads at boot and on ResetGamma.
var DefaultGammaTable = GammaTable{
	0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 14, 15, 17, 18, 20, 21, 23, 25, 27, 29, 31,
}

// Curve selectors for ControlResetGamma.
const (
	GammaDefault byte = iota
	GammaLow
	GammaUser
)

// Validate checks that all entries fit in 5 bits.
func (t *GammaTable) Validate() error {
	for _, v := range t {
		if v > MaxGamma {
			return ErrInvalidGamma
		}
	}
	return nil
}

// Gamma returns the current gamma table of the device. Values are returned as reported.
func (d *Display) Gamma() (GammaTable, error) {
	var t GammaTable
	err := d.control(ControlGetGamma, t[:])
	return t, err
}

// SetGamma loads a gamma table. It fails with ErrInvalidGamma, without touching the device, if
// any entry exceeds MaxGamma.
func (d *Display) SetGamma(t GammaTable) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return d.control(ControlSetGamma, t[:])
}

// ResetGamma restores the default gamma curve of the driver.
func (d *Display) ResetGamma() error {
	return d.control(ControlResetGamma, []byte{GammaDefault})
}

// IsLowLight reports if the current gamma table is exactly LowLightTable.
func (d *Display) IsLowLight() (bool, error) {
	t, err := d.Gamma()
	if err != nil {
		return false, err
	}
	return t == LowLightTable, nil
}

// SetLowLight selects the low light curve of the driver, or the default curve.
func (d *Display) SetLowLight(enabled bool) error {
	curve := GammaDefault
	if enabled {
		curve = GammaLow
	}
	return d.control(ControlResetGamma, []byte{curve})
}

func (d *Display) control(code ControlCode, arg []byte) error {
	if err := d.dev.Control(code, arg); err != nil {
		if d.ignoreControlErrors {
			if debug {
				log.Printf("sensehat: ignoring %s failure: %v", code, err)
			}
			return nil
		}
		return &DeviceError{Op: code.String(), Err: err}
	}
	return nil
}

// Curves is the gamma state held by the LED driver: the active table and the last table loaded
// with ControlSetGamma. Devices that apply gamma themselves use it to serve control requests.
type Curves struct {
	Active GammaTable
	User   GammaTable
}

// NewCurves returns the state of a freshly loaded driver.
func NewCurves() Curves {
	return Curves{
		Active: DefaultGammaTable,
		User:   DefaultGammaTable,
	}
}

// Control serves a gamma control request. A failed request leaves the curves unchanged.
func (c *Curves) Control(code ControlCode, arg []byte) error {
	switch code {
	case ControlGetGamma:
		if len(arg) < GammaSize {
			return fmt.Errorf("%w: %d byte gamma buffer", ErrControlArgument, len(arg))
		}
		copy(arg, c.Active[:])

	case ControlSetGamma:
		if len(arg) < GammaSize {
			return fmt.Errorf("%w: %d byte gamma buffer", ErrControlArgument, len(arg))
		}
		var t GammaTable
		copy(t[:], arg)
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrControlArgument, err)
		}
		c.Active, c.User = t, t

	case ControlResetGamma:
		if len(arg) == 0 {
			return fmt.Errorf("%w: missing curve selector", ErrControlArgument)
		}
		switch arg[0] {
		case GammaDefault:
			c.Active = DefaultGammaTable
		case GammaLow:
			c.Active = LowLightTable
		case GammaUser:
			c.Active = c.User
		default:
			return fmt.Errorf("%w: curve %d", ErrControlArgument, arg[0])
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnknownControl, code)
	}
	return nil
}

// Level returns the 5-bit brightness of a 5-bit channel value under the active table.
func (c *Curves) Level(v uint16) uint8 {
	return c.Active[v&0x1f]
}
