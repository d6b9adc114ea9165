package framebuffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BeatGlow/sensehat"
)

func TestFindMissing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fb0"), make([]byte, 128), 0o600); err != nil {
		t.Fatal(err)
	}

	saved := Pattern
	defer func() { Pattern = saved }()
	Pattern = filepath.Join(dir, "fb*")

	if _, err := Find(); !errors.Is(err, sensehat.ErrMissingDevice) {
		t.Errorf("expected %v, got %v", sensehat.ErrMissingDevice, err)
	}
}

func TestOpenNotFramebuffer(t *testing.T) {
	name := filepath.Join(t.TempDir(), "fb0")
	if err := os.WriteFile(name, make([]byte, 128), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(name); err == nil {
		t.Error("expected a regular file not to open as a framebuffer")
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %v, got %v", os.ErrNotExist, err)
	}
}

func TestClosedDevice(t *testing.T) {
	d := &Device{name: "/dev/fb1"}
	if err := d.WriteFrame(new(sensehat.Frame)); !errors.Is(err, ErrClosed) {
		t.Errorf("expected %v, got %v", ErrClosed, err)
	}
	if err := d.Control(sensehat.ControlGetGamma, make([]byte, sensehat.GammaSize)); !errors.Is(err, ErrClosed) {
		t.Errorf("expected %v, got %v", ErrClosed, err)
	}
	if err := d.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected %v, got %v", ErrClosed, err)
	}
	if v := d.String(); v != "framebuffer /dev/fb1" {
		t.Errorf("expected %q, got %q", "framebuffer /dev/fb1", v)
	}
}
