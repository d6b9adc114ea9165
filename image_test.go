package sensehat

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/BeatGlow/sensehat/pixel"
)

func TestImage(t *testing.T) {
	d, dev := newTestDisplay(t)

	if v := d.Bounds(); v != image.Rect(0, 0, 8, 8) {
		t.Errorf("expected bounds %s, got %s", image.Rect(0, 0, 8, 8), v)
	}
	if d.ColorModel() != pixel.RGB565Model {
		t.Error("expected the RGB565 color model")
	}

	d.Set(2, 3, color.RGBA{R: 0xff, A: 0xff})
	d.Set(9, 3, color.White)
	if len(dev.frames) != 0 {
		t.Errorf("expected Set not to draw, got %d frames", len(dev.frames))
	}
	if v := d.At(2, 3); v != pixel.RGB565(0xf800) {
		t.Errorf("expected %#04x, got %v", 0xf800, v)
	}
	if v := d.At(-1, 0); v != color.Transparent {
		t.Errorf("expected transparent out of bounds, got %v", v)
	}
	if err := d.Refresh(); err != nil {
		t.Fatal(err)
	}
	if len(dev.frames) != 1 {
		t.Errorf("expected Refresh to draw, got %d frames", len(dev.frames))
	}
}

func TestDraw(t *testing.T) {
	d, dev := newTestDisplay(t)

	src := image.NewUniform(color.RGBA{G: 0xff, A: 0xff})
	if err := d.Draw(image.Rect(4, 4, 12, 12), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := pixel.Black
			if x >= 4 && y >= 4 {
				want = pixel.Pixel{G: 252}
			}
			if p := d.GetPixels()[x+8*y]; p != want {
				t.Fatalf("expected (%d,%d) to be %v, got %v", x, y, want, p)
			}
		}
	}
	if len(dev.frames) != 1 {
		t.Errorf("expected 1 frame, got %d", len(dev.frames))
	}

	// draw.Draw onto the display matches SetPixels.
	pattern := testPattern()
	draw.Draw(d, d.Bounds(), &pattern, image.Point{}, draw.Src)
	if v := d.GetPixels(); v != pattern {
		t.Error("expected draw.Draw to copy the pattern")
	}

	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if dev.last() != (Frame{}) {
		t.Error("expected Halt to blank the matrix")
	}
	if s := d.String(); !strings.HasPrefix(s, "sensehat.Display{") {
		t.Errorf("unexpected String() %q", s)
	}
}
