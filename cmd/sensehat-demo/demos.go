package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/draw"
	"github.com/BeatGlow/sensehat/picture"
	"github.com/BeatGlow/sensehat/pixel"
	"github.com/BeatGlow/sensehat/text"
)

type runner struct {
	*sensehat.Display
	fg    pixel.Pixel
	delay time.Duration
	font  string
	args  []string
	out   io.Writer
}

func (r *runner) wait(frames int) {
	time.Sleep(time.Duration(frames) * r.delay)
}

var demos = map[string]func(*runner) error{
	"colors": colors,
	"flip":   flip,
	"rotate": rotate,
	"spiral": spiral,
	"gamma":  gamma,
	"text":   scroll,
	"image":  showImage,
	"shapes": shapes,
}

var demoHelp = map[string]string{
	"colors": "fill the matrix red, green and blue",
	"flip":   "flip a picture horizontally and vertically",
	"rotate": "draw a line and rotate the display",
	"spiral": "draw spirals in low light",
	"gamma":  "reverse the gamma curve and toggle low light",
	"text":   "scroll <message> across the matrix",
	"image":  "show the image <file> (PNG, GIF, JPEG or SVG)",
	"shapes": "draw a frame and its diagonals",
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func colors(r *runner) error {
	for _, c := range []pixel.Pixel{pixel.Red, pixel.Green, pixel.Blue} {
		p := pixel.Fill(c)
		if err := r.SetPixels(&p); err != nil {
			return err
		}
		r.wait(10)
	}
	return r.Clear(nil)
}

func flip(r *runner) error {
	var (
		w     = pixel.White
		b     = pixel.Pixel{G: 128, B: 255}
		smile = pixel.Pixels{
			w, w, w, w, w, b, b, b,
			b, w, b, b, w, b, b, b,
			b, b, w, b, w, b, b, b,
			b, b, b, w, w, w, w, w,
			b, w, w, w, w, b, b, w,
			b, b, b, w, b, w, b, w,
			b, b, b, w, b, b, w, w,
			b, b, b, b, b, b, b, w,
		}
	)
	if err := r.SetPixels(&smile); err != nil {
		return err
	}
	r.wait(20)
	if _, err := r.FlipHorizontal(true); err != nil {
		return err
	}
	r.wait(20)
	if _, err := r.FlipVertical(true); err != nil {
		return err
	}
	r.wait(20)
	return r.Clear(nil)
}

func rotate(r *runner) error {
	if err := r.Clear(nil); err != nil {
		return err
	}
	if err := r.SetOrientation(sensehat.Rotate270, false); err != nil {
		return err
	}
	for x := 0; x < pixel.Width; x++ {
		if err := r.SetPixel(x, 0, r.fg); err != nil {
			return err
		}
	}
	for _, o := range []sensehat.Orientation{sensehat.Rotate0, sensehat.Rotate180, sensehat.Rotate90} {
		r.wait(10)
		fmt.Fprintf(r.out, "orientation: %s\n", o)
		if err := r.SetOrientation(o, true); err != nil {
			return err
		}
	}
	r.wait(10)
	return r.Clear(nil)
}

func spiral(r *runner) error {
	if err := r.Clear(nil); err != nil {
		return err
	}
	if err := r.SetLowLight(true); err != nil {
		return err
	}
	for _, c := range []pixel.Pixel{pixel.Red, pixel.Green, pixel.Blue, pixel.White} {
		for _, pt := range draw.Spiral(pixel.Width) {
			if err := r.SetPixel(pt.X, pt.Y, c); err != nil {
				return err
			}
			time.Sleep(r.delay / 2)
		}
	}
	return r.Clear(nil)
}

func gamma(r *runner) error {
	orange := pixel.Pixel{R: 255, G: 127}
	if err := r.Clear(&orange); err != nil {
		return err
	}
	g, err := r.Gamma()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "gamma: %v\n", g)
	r.wait(20)

	for i, j := 0, len(g)-1; i < j; i, j = i+1, j-1 {
		g[i], g[j] = g[j], g[i]
	}
	if err = r.SetGamma(g); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "reversed: %v\n", g)
	r.wait(20)

	if err = r.SetLowLight(true); err != nil {
		return err
	}
	low, err := r.IsLowLight()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "low light: %t\n", low)
	r.wait(20)

	if err = r.SetLowLight(false); err != nil {
		return err
	}
	if err = r.ResetGamma(); err != nil {
		return err
	}
	return r.Clear(nil)
}

func scroll(r *runner) error {
	if len(r.args) == 0 {
		return errors.New("text: missing message")
	}
	face, err := r.face()
	if err != nil {
		return err
	}
	s := text.NewScroller(face, strings.Join(r.args, " "), r.fg, pixel.Black)
	for {
		p, ok := s.Next()
		if !ok {
			break
		}
		if err = r.SetPixels(&p); err != nil {
			return err
		}
		time.Sleep(r.delay)
	}
	return r.Clear(nil)
}

func (r *runner) face() (text.Face, error) {
	switch r.font {
	case "", "bitmap":
		return text.DefaultBitmapFace, nil
	case "gomono":
		return text.NewGoMonoFace()
	default:
		return nil, fmt.Errorf("unsupported font %q", r.font)
	}
}

func showImage(r *runner) error {
	if len(r.args) != 1 {
		return errors.New("image: expected one file name")
	}
	p, err := picture.LoadFile(r.args[0])
	if err != nil {
		return err
	}
	if err = r.SetPixels(&p); err != nil {
		return err
	}
	r.wait(50)
	return r.Clear(nil)
}

func shapes(r *runner) error {
	if err := r.Clear(nil); err != nil {
		return err
	}
	bounds := r.Bounds()
	draw.Rectangle(r, bounds, r.fg)
	draw.Line(r, image.Pt(1, 1), image.Pt(6, 6), pixel.White)
	draw.Line(r, image.Pt(6, 1), image.Pt(1, 6), pixel.White)
	if err := r.Refresh(); err != nil {
		return err
	}
	r.wait(30)
	return r.Clear(nil)
}

// parseColor parses "#rrggbb" or "rrggbb".
func parseColor(s string) (pixel.Pixel, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return pixel.Black, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return pixel.Black, fmt.Errorf("invalid color %q", s)
	}
	return pixel.Pixel{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
