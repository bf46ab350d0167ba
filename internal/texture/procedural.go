package texture

import (
	"image/color"
	"math/rand"
)

// Pattern selects one of the built-in generated wall textures.
type Pattern int

const (
	Brick Pattern = iota
	Stone
	Planks
	Panels
)

// MinGeneratedSize is the smallest edge Generate renders. Smaller requests are
// raised to it.
const MinGeneratedSize = 8

// Generate renders a deterministic size×size texture for pattern. The same
// seed always produces the same pixels.
func Generate(p Pattern, size int, seed int64) *Texture {
	if size < MinGeneratedSize {
		size = MinGeneratedSize
	}
	rng := rand.New(rand.NewSource(seed))
	pix := make([]byte, size*size*4)
	set := func(x, y int, c color.RGBA) {
		i := (y*size + x) * 4
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, 255
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := rng.Intn(24) - 12
			set(x, y, patternColor(p, x, y, size, n))
		}
	}
	tex, _ := New(size, size, pix)
	return tex
}

func patternColor(p Pattern, x, y, size, noise int) color.RGBA {
	switch p {
	case Brick:
		rowH := size / 8
		row := y / rowH
		off := 0
		if row%2 == 1 {
			off = size / 8
		}
		if y%rowH == 0 || (x+off)%(size/4) == 0 {
			return shade(color.RGBA{180, 180, 170, 255}, noise)
		}
		return shade(color.RGBA{150, 60, 45, 255}, noise)
	case Stone:
		cell := size / 4
		if x%cell == 0 || y%cell == 0 {
			return shade(color.RGBA{60, 60, 65, 255}, noise)
		}
		return shade(color.RGBA{120, 120, 128, 255}, noise*2)
	case Planks:
		plank := size / 4
		if x%plank == 0 {
			return shade(color.RGBA{70, 40, 20, 255}, noise)
		}
		grain := (y*3 + x*x/7) % 11
		return shade(color.RGBA{140, 95, 50, 255}, noise+grain-5)
	default:
		panel := size / 2
		px, py := x%panel, y%panel
		if px == 0 || py == 0 {
			return shade(color.RGBA{30, 40, 70, 255}, noise)
		}
		if (px == 3 || px == panel-3) && (py == 3 || py == panel-3) {
			return color.RGBA{220, 220, 230, 255}
		}
		return shade(color.RGBA{70, 90, 150, 255}, noise)
	}
}

func shade(c color.RGBA, d int) color.RGBA {
	return color.RGBA{clampByte(int(c.R) + d), clampByte(int(c.G) + d), clampByte(int(c.B) + d), c.A}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
