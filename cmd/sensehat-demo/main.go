package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"periph.io/x/host/v3"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/conn"
	"github.com/BeatGlow/sensehat/emulator"
	"github.com/BeatGlow/sensehat/emulator/window"
	"github.com/BeatGlow/sensehat/framebuffer"
	"github.com/BeatGlow/sensehat/internal/config"
)

func main() {
	defaults := config.Default()
	configFlag := flag.String("config", "", "JSON configuration file")
	deviceFlag := flag.String("device", defaults.Device, "Device backend (framebuffer, i2c or emulator)")
	fbFlag := flag.String("fb", defaults.Framebuffer, "Framebuffer device (default: search for the Sense HAT)")
	i2cBusFlag := flag.Int("i2c-bus", defaults.I2CBus, "I²C bus number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(defaults.I2CAddr), "I²C address of the LED matrix")
	rotateFlag := flag.String("rotate", defaults.Rotate, "Display rotation")
	lowLightFlag := flag.Bool("low-light", defaults.LowLight, "Dim the LEDs")
	delayFlag := flag.Int("delay", defaults.DelayMS, "Frame delay in milliseconds")
	colorFlag := flag.String("color", defaults.Color, "Foreground color")
	fontFlag := flag.String("font", "bitmap", "Text font (bitmap or gomono)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg := defaults
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			cfg.Device = *deviceFlag
		case "fb":
			cfg.Framebuffer = *fbFlag
		case "i2c-bus":
			cfg.I2CBus = *i2cBusFlag
		case "i2c-addr":
			cfg.I2CAddr = uint16(*i2cAddrFlag)
		case "rotate":
			cfg.Rotate = *rotateFlag
		case "low-light":
			cfg.LowLight = *lowLightFlag
		case "delay":
			cfg.DelayMS = *delayFlag
		case "color":
			cfg.Color = *colorFlag
		}
	})
	if err := run(cfg, *fontFlag, flag.Arg(0), flag.Args()[1:]); err != nil {
		fatal(err)
	}
}

// run shows demo name on the configured device. Devices are closed on return.
func run(cfg *config.Config, font, name string, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	orientation, err := sensehat.ParseOrientation(cfg.Rotate)
	if err != nil {
		return err
	}
	fmt.Printf("using orientation: %s\n", orientation)

	fg, err := parseColor(cfg.Color)
	if err != nil {
		return err
	}

	demo, ok := demos[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unsupported demo %q", name)
	}

	dev, closeDevice, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeDevice() }()
	fmt.Printf("using device: %s\n", dev)

	d, err := sensehat.New(dev, &sensehat.Config{
		Orientation: orientation,
		Clear:       true,
	})
	if err != nil {
		return err
	}
	if err = d.SetLowLight(cfg.LowLight); err != nil {
		return err
	}

	r := &runner{
		Display: d,
		fg:      fg,
		delay:   cfg.Delay(),
		font:    font,
		args:    args,
		out:     os.Stdout,
	}
	emu, ok := dev.(*emulator.Device)
	if !ok {
		return demo(r)
	}

	// The window needs the main goroutine.
	var (
		done = make(chan struct{})
		errs = make(chan error, 1)
		opts = window.DefaultOptions
	)
	opts.Done = done
	go func() {
		defer close(done)
		errs <- demo(r)
	}()
	if err = window.Run(emu, &opts); err != nil {
		return err
	}
	select {
	case err = <-errs:
		return err
	default:
		return nil
	}
}

// openDevice opens the configured backend, along with the function that releases it.
func openDevice(cfg *config.Config) (sensehat.Device, func() error, error) {
	switch cfg.Device {
	case config.Framebuffer:
		var (
			fb  *framebuffer.Device
			err error
		)
		if cfg.Framebuffer == "" {
			fb, err = framebuffer.Find()
		} else {
			fb, err = framebuffer.Open(cfg.Framebuffer)
		}
		if err != nil {
			return nil, nil, err
		}
		return fb, fb.Close, nil

	case config.I2C:
		if _, err := host.Init(); err != nil {
			return nil, nil, err
		}
		c, err := conn.OpenI2C(cfg.I2CBus, cfg.I2CAddr)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	case config.Emulator:
		return emulator.New(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported device %q", cfg.Device)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <demo> [args]\n\nDemos:\n", os.Args[0])
	printDemos(w)
	fmt.Fprintln(w, "\nFlags:")
	flag.PrintDefaults()
}

func printDemos(w io.Writer) {
	for _, name := range demoNames() {
		fmt.Fprintf(w, "  %-8s %s\n", name, demoHelp[name])
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
