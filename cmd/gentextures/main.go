// Command gentextures writes the default wall textures and menu backdrops.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"raycaster/internal/texture"
)

var (
	outDir = flag.String("out", "assets", "directory to write the images to")
	size   = flag.Int("size", 64, "edge length of the wall textures in pixels (at least 8)")
	seed   = flag.Int64("seed", 1, "seed for the texture noise")
)

// walls maps each output file to the pattern it is rendered with.
var walls = []struct {
	name    string
	pattern texture.Pattern
}{
	{"wall1.png", texture.Planks},
	{"wall2.png", texture.Panels},
	{"wall3.png", texture.Stone},
	{"wall4.png", texture.Brick},
}

func main() {
	flag.Parse()
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for i, w := range walls {
		tex := texture.Generate(w.pattern, *size, *seed+int64(i))
		if err := writePNG(filepath.Join(*outDir, w.name), tex.Image()); err != nil {
			log.Fatal(err)
		}
	}
	backdrops := []struct {
		name     string
		from, to color.RGBA
	}{
		{"welcome.png", color.RGBA{10, 10, 60, 255}, color.RGBA{60, 20, 90, 255}},
		{"success.png", color.RGBA{0, 60, 20, 255}, color.RGBA{10, 10, 10, 255}},
	}
	for _, b := range backdrops {
		if err := writePNG(filepath.Join(*outDir, b.name), gradient(320, 240, b.from, b.to)); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("Wrote %d images to %s", len(walls)+len(backdrops), *outDir)
}

// gradient fills a w×h image blending vertically from top to bottom.
func gradient(w, h int, from, to color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		c := color.RGBA{lerp(from.R, to.R, t), lerp(from.G, to.G, t), lerp(from.B, to.B, t), 255}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	return f.Close()
}
