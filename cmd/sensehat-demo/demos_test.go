package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/emulator"
	"github.com/BeatGlow/sensehat/pixel"
)

func newTestRunner(t *testing.T, args ...string) (*runner, *emulator.Device, *bytes.Buffer) {
	t.Helper()
	dev := emulator.New()
	d, err := sensehat.New(dev, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	return &runner{Display: d, fg: pixel.Red, args: args, out: out}, dev, out
}

func TestDemos(t *testing.T) {
	for _, name := range demoNames() {
		if name == "image" {
			continue
		}
		t.Run(name, func(it *testing.T) {
			r, dev, _ := newTestRunner(it, "hi")
			if err := demos[name](r); err != nil {
				it.Fatal(err)
			}
			if dev.Writes() == 0 {
				it.Error("expected the demo to draw")
			}
			if v := dev.Frame(); v != (sensehat.Frame{}) {
				it.Error("expected the demo to clear the matrix when done")
			}
			if _, ok := demoHelp[name]; !ok {
				it.Error("expected the demo to have a help text")
			}
		})
	}
}

func TestGammaDemo(t *testing.T) {
	r, dev, out := newTestRunner(t)
	if err := gamma(r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "low light: true") {
		t.Errorf("expected low light to be reported, got %q", out.String())
	}
	if v := dev.Gamma(); v != sensehat.DefaultGammaTable {
		t.Errorf("expected the default curve to be restored, got %v", v)
	}
}

func TestDemoArguments(t *testing.T) {
	r, _, _ := newTestRunner(t)
	if err := scroll(r); err == nil {
		t.Error("expected text without a message to fail")
	}
	if err := showImage(r); err == nil {
		t.Error("expected image without a file to fail")
	}
	r.args = []string{"hello"}
	r.font = "comic"
	if err := scroll(r); err == nil {
		t.Error("expected an unknown font to fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		s     string
		want  pixel.Pixel
		valid bool
	}{
		{"#ff0000", pixel.Red, true},
		{"0080ff", pixel.Pixel{G: 0x80, B: 0xff}, true},
		{"#fff", pixel.Black, false},
		{"#gg0000", pixel.Black, false},
	}
	for _, test := range tests {
		p, err := parseColor(test.s)
		if test.valid && err != nil {
			t.Errorf("expected %q to parse, got %v", test.s, err)
		} else if !test.valid && err == nil {
			t.Errorf("expected %q to fail", test.s)
		}
		if p != test.want {
			t.Errorf("expected %q to be %v, got %v", test.s, test.want, p)
		}
	}
}
