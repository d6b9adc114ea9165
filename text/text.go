package text

import (
	"image"

	"github.com/BeatGlow/sensehat/draw"
	"github.com/BeatGlow/sensehat/pixel"
)

// Letter renders a single character, centered horizontally, in fg on a bg background.
func Letter(face Face, r rune, fg, bg pixel.Pixel) pixel.Pixels {
	mask := face.Render(string(r))
	offset := (pixel.Width - mask.Rect.Dx()) / 2
	if offset < 0 {
		offset = 0
	}
	return compose(mask, -offset, fg, bg)
}

// compose draws the columns of mask starting at x in fg over bg.
func compose(mask *image.Alpha, x int, fg, bg pixel.Pixel) pixel.Pixels {
	out := pixel.Fill(bg)
	draw.DrawMask(&out, out.Bounds(), image.NewUniform(fg), image.Point{}, mask, image.Pt(x, 0), draw.Over)
	return out
}

// Scroller moves a message across the matrix from right to left, one column per frame. The first
// and last frames are blank.
type Scroller struct {
	mask   *image.Alpha
	fg, bg pixel.Pixel
	offset int
}

// NewScroller renders msg with face.
func NewScroller(face Face, msg string, fg, bg pixel.Pixel) *Scroller {
	return &Scroller{
		mask: face.Render(msg),
		fg:   fg,
		bg:   bg,
	}
}

// Len is the number of frames.
func (s *Scroller) Len() int {
	return s.mask.Rect.Dx() + pixel.Width + 1
}

// Next returns the next frame, or false if the message has scrolled off.
func (s *Scroller) Next() (pixel.Pixels, bool) {
	if s.offset >= s.Len() {
		return pixel.Fill(s.bg), false
	}
	p := compose(s.mask, s.offset-pixel.Width, s.fg, s.bg)
	s.offset++
	return p, true
}

// Reset rewinds to the first frame.
func (s *Scroller) Reset() {
	s.offset = 0
}
