// Package window shows an emulated LED matrix in a desktop window.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BeatGlow/sensehat/emulator"
	"github.com/BeatGlow/sensehat/pixel"
)

// Options for the window.
type Options struct {
	// Title of the window.
	Title string

	// Cell is the size of one LED in pixels.
	Cell int

	// Gap is the space between LEDs in pixels.
	Gap int

	// Done closes the window when it is closed.
	Done <-chan struct{}
}

// DefaultOptions are the default window options.
var DefaultOptions = Options{
	Title: "Sense HAT",
	Cell:  40,
	Gap:   6,
}

// Run opens a window showing dev. It must be called from the main goroutine and blocks until the
// window is closed or opts.Done is closed.
func Run(dev *emulator.Device, opts *Options) error {
	if opts == nil {
		opts = new(Options)
		*opts = DefaultOptions
	}
	if opts.Cell <= 0 {
		opts.Cell = DefaultOptions.Cell
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}

	g := &game{
		dev:  dev,
		opts: *opts,
		size: pixel.Width*(opts.Cell+opts.Gap) + opts.Gap,
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(g.size, g.size)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	dev  *emulator.Device
	opts Options
	size int
}

func (g *game) Update() error {
	if g.opts.Done == nil {
		return nil
	}
	select {
	case <-g.opts.Done:
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Gray{Y: 0x20})

	var (
		src  = g.dev.RGBA()
		step = g.opts.Cell + g.opts.Gap
	)
	for y := 0; y < pixel.Height; y++ {
		for x := 0; x < pixel.Width; x++ {
			cell := image.Rect(0, 0, g.opts.Cell, g.opts.Cell).Add(image.Pt(g.opts.Gap+x*step, g.opts.Gap+y*step))
			screen.SubImage(cell).(*ebiten.Image).Fill(src.RGBAAt(x, y))
		}
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.size, g.size
}
