// Package picture loads images onto the 8×8 LED grid.
//
// Raster images are scaled down to the matrix and flattened onto black, since an LED that is off
// is the closest thing to transparent. SVG icons are rasterized at the matrix size directly.
package picture

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/sensehat/draw"
	"github.com/BeatGlow/sensehat/pixel"
)

var bounds = image.Rect(0, 0, pixel.Width, pixel.Height)

// Scaler is an alias for [golang.org/x/image/draw.Scaler].
type Scaler = xdraw.Scaler

// FromImage scales img to the matrix. Images larger than the matrix are filtered bilinearly;
// smaller ones are scaled up with nearest neighbour so their pixels stay crisp.
func FromImage(img image.Image) (p pixel.Pixels) {
	var (
		src           = img.Bounds()
		dst           = image.NewRGBA(bounds)
		scaler Scaler = xdraw.ApproxBiLinear
	)
	if src.Dx() <= pixel.Width && src.Dy() <= pixel.Height {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, bounds, img, src, draw.Src, nil)
	draw.Flatten(&p, dst, image.Point{})
	return
}

// Load decodes a PNG, GIF or JPEG image and scales it to the matrix.
func Load(r io.Reader) (pixel.Pixels, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return pixel.Pixels{}, err
	}
	return FromImage(img), nil
}

// LoadSVG rasterizes an SVG icon at the size of the matrix.
func LoadSVG(r io.Reader) (pixel.Pixels, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return pixel.Pixels{}, err
	}
	icon.SetTarget(0, 0, pixel.Width, pixel.Height)

	img := image.NewRGBA(bounds)
	scanner := rasterx.NewScannerGV(pixel.Width, pixel.Height, img, bounds)
	icon.Draw(rasterx.NewDasher(pixel.Width, pixel.Height, scanner), 1)
	return FromImage(img), nil
}

// LoadFile loads an image file, picking the decoder by extension.
func LoadFile(name string) (pixel.Pixels, error) {
	f, err := os.Open(name)
	if err != nil {
		return pixel.Pixels{}, err
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return LoadSVG(f)
	}
	return Load(f)
}
