// Package framebuffer provides the software pixel buffer the raycaster draws into.
package framebuffer

import "image/color"

// Surface is anything the buffer can be blitted to. *ebiten.Image satisfies it.
type Surface interface {
	WritePixels(pixels []byte)
}

// Framebuffer is a width×height RGBA buffer stored row-major, four bytes per
// pixel, so it can be handed to WritePixels without conversion.
type Framebuffer struct {
	width, height int
	pix           []byte
	background    color.RGBA
	clearRow      []byte
}

// New allocates a buffer filled with background.
func New(width, height int, background color.RGBA) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	fb := &Framebuffer{
		width:      width,
		height:     height,
		pix:        make([]byte, width*height*4),
		background: background,
		clearRow:   make([]byte, width*4),
	}
	for i := 0; i < len(fb.clearRow); i += 4 {
		fb.clearRow[i] = background.R
		fb.clearRow[i+1] = background.G
		fb.clearRow[i+2] = background.B
		fb.clearRow[i+3] = background.A
	}
	fb.Clear()
	return fb
}

// Clear resets every pixel to the background colour.
func (fb *Framebuffer) Clear() {
	stride := fb.width * 4
	if stride == 0 {
		return
	}
	for off := 0; off < len(fb.pix); off += stride {
		copy(fb.pix[off:off+stride], fb.clearRow)
	}
}

// Set writes one pixel. Writes outside the buffer are ignored.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	i := (y*fb.width + x) * 4
	fb.pix[i] = c.R
	fb.pix[i+1] = c.G
	fb.pix[i+2] = c.B
	fb.pix[i+3] = c.A
}

// At returns the pixel at (x, y), or the background outside the buffer.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return fb.background
	}
	i := (y*fb.width + x) * 4
	return color.RGBA{fb.pix[i], fb.pix[i+1], fb.pix[i+2], fb.pix[i+3]}
}

// Present copies the buffer onto the display surface.
func (fb *Framebuffer) Present(s Surface) {
	s.WritePixels(fb.pix)
}

// Pixels exposes the raw RGBA bytes. Callers must not retain the slice across frames.
func (fb *Framebuffer) Pixels() []byte { return fb.pix }

// Width returns the buffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Background returns the clear colour.
func (fb *Framebuffer) Background() color.RGBA { return fb.background }
