package framebuffer

import (
	"bytes"
	"image/color"
	"testing"
)

var (
	bg  = color.RGBA{0, 0, 139, 255}
	red = color.RGBA{255, 0, 0, 255}
)

func TestNewFillsBackground(t *testing.T) {
	fb := New(4, 3, bg)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, bg)
			}
		}
	}
	if len(fb.Pixels()) != 4*3*4 {
		t.Fatalf("pixel slice len %d", len(fb.Pixels()))
	}
}

func TestSetAndClear(t *testing.T) {
	fb := New(5, 5, bg)
	fb.Set(2, 3, red)
	if got := fb.At(2, 3); got != red {
		t.Fatalf("At(2,3) = %v, want red", got)
	}
	fb.Clear()
	if got := fb.At(2, 3); got != bg {
		t.Fatalf("after Clear At(2,3) = %v, want background", got)
	}
}

func TestSetOutOfBoundsIsHarmless(t *testing.T) {
	fb := New(3, 2, bg)
	before := append([]byte(nil), fb.Pixels()...)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}, {-5, 7}} {
		fb.Set(p[0], p[1], red)
	}
	if !bytes.Equal(before, fb.Pixels()) {
		t.Fatal("out-of-bounds Set modified the buffer")
	}
}

type captureSurface struct{ got []byte }

func (c *captureSurface) WritePixels(p []byte) { c.got = append([]byte(nil), p...) }

func TestPresent(t *testing.T) {
	fb := New(2, 2, bg)
	fb.Set(1, 1, red)
	var s captureSurface
	fb.Present(&s)
	if !bytes.Equal(s.got, fb.Pixels()) {
		t.Fatal("Present did not copy the buffer")
	}
	if s.got[12] != 255 || s.got[13] != 0 {
		t.Fatalf("last pixel bytes = %v", s.got[12:16])
	}
}

func TestZeroSize(t *testing.T) {
	fb := New(0, 0, bg)
	fb.Clear()
	fb.Set(0, 0, red)
	if fb.At(0, 0) != bg {
		t.Fatal("zero-size buffer should report background")
	}
}
