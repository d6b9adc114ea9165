package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "sensehat.json")
	if err := os.WriteFile(name, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	c, err := Load(writeConfig(t, `{"device": "emulator", "rotate": "cw", "delay_ms": 250}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Device != Emulator {
		t.Errorf("expected device %q, got %q", Emulator, c.Device)
	}
	if c.Rotate != "cw" {
		t.Errorf("expected rotate %q, got %q", "cw", c.Rotate)
	}
	if v := c.Delay(); v != 250*time.Millisecond {
		t.Errorf("expected delay %s, got %s", 250*time.Millisecond, v)
	}
	// Defaults survive.
	if c.I2CBus != -1 || c.I2CAddr != 0x46 || c.Color != "#ff0000" {
		t.Errorf("expected defaults to be kept, got %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"device": `},
		{"device", `{"device": "hdmi"}`},
		{"delay", `{"delay_ms": -1}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if _, err := Load(writeConfig(it, test.data)); err == nil {
				it.Error("expected an error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(err) {
		t.Errorf("expected a missing file error, got %v", err)
	}
}

func TestLoadI2CAddr(t *testing.T) {
	c, err := Load(writeConfig(t, `{"device": "i2c", "i2c_addr": 326}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.I2CAddr != 0x146 {
		t.Errorf("expected address %#03x, got %#03x", 0x146, c.I2CAddr)
	}
}
