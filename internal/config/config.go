// Package config loads the settings of the demo command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Device backends.
const (
	Framebuffer = "framebuffer"
	I2C         = "i2c"
	Emulator    = "emulator"
)

// Config represents the demo configuration.
type Config struct {
	// Device is the backend: framebuffer, i2c or emulator.
	Device string `json:"device"`

	// Framebuffer is the device node to use; empty to search for the Sense HAT.
	Framebuffer string `json:"framebuffer"`

	// I2CBus is the I²C bus number, -1 for the first available bus.
	I2CBus int `json:"i2c_bus"`

	// I2CAddr is the address of the LED matrix controller.
	I2CAddr uint16 `json:"i2c_addr"`

	// Rotate is the orientation, in degrees or one of the aliases.
	Rotate string `json:"rotate"`

	// LowLight dims the matrix.
	LowLight bool `json:"low_light"`

	// DelayMS is the time each frame is shown, in milliseconds.
	DelayMS int `json:"delay_ms"`

	// Color is the foreground color as "#rrggbb".
	Color string `json:"color"`
}

// Delay between frames.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Device {
	case Framebuffer, I2C, Emulator:
	default:
		return fmt.Errorf("config: unsupported device %q", c.Device)
	}
	if c.DelayMS < 0 {
		return errors.New("config: delay must not be negative")
	}
	return nil
}

// Load loads the configuration from a file, on top of the defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := Default()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Device:  Framebuffer,
		I2CBus:  -1,
		I2CAddr: 0x46,
		DelayMS: 100,
		Color:   "#ff0000",
	}
}
