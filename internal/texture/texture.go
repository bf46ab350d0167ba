// Package texture loads wall images and samples them per pixel for the raycaster.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Texture is an owned width×height RGBA pixel grid.
type Texture struct {
	width, height int
	pix           []byte
}

// New wraps raw RGBA bytes. len(pix) must be width*height*4.
func New(width, height int, pix []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d is not positive", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d", width, height, width*height*4, len(pix))
	}
	return &Texture{width: width, height: height, pix: pix}, nil
}

// FromImage copies any decoded image into an RGBA texture.
func FromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return New(b.Dx(), b.Dy(), rgba.Pix)
}

// LoadFile decodes the image at path.
func LoadFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return FromImage(img)
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// At returns the pixel at (x, y), clamping each coordinate into the texture.
func (t *Texture) At(x, y int) color.RGBA {
	if x < 0 {
		x = 0
	} else if x >= t.width {
		x = t.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.height {
		y = t.height - 1
	}
	i := (y*t.width + x) * 4
	return color.RGBA{t.pix[i], t.pix[i+1], t.pix[i+2], t.pix[i+3]}
}

// Image returns a copy of the texture as an *image.RGBA.
func (t *Texture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	copy(img.Pix, t.pix)
	return img
}
