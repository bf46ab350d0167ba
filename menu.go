package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	menuTitleColor    = color.RGBA{255, 255, 255, 255}
	menuItemColor     = color.RGBA{200, 200, 200, 255}
	menuSelectedColor = color.RGBA{255, 255, 0, 255}
	successTitleColor = color.RGBA{0, 228, 48, 255}
)

// menuFonts holds the faces used by the welcome and success screens.
type menuFonts struct {
	title   *text.GoTextFace
	item    *text.GoTextFace
	success *text.GoTextFace
}

// loadMenuFonts builds the menu faces from the embedded Go fonts.
func loadMenuFonts() (*menuFonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading bold font: %w", err)
	}
	return &menuFonts{
		title:   &text.GoTextFace{Source: bold, Size: menuTitleSize},
		item:    &text.GoTextFace{Source: regular, Size: menuTextSize},
		success: &text.GoTextFace{Source: bold, Size: successTitleSize},
	}, nil
}

// loadBackground reads an optional menu backdrop. A missing file is not an
// error and yields nil.
func loadBackground(dir, name string) *ebiten.Image {
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Loading %s failed: %v", path, err)
		}
		return nil
	}
	return img
}

// drawBackground fills the screen with the backdrop image scaled to fit, or
// with the plain menu colour when there is none.
func drawBackground(screen, img *ebiten.Image) {
	screen.Fill(menuBackground)
	if img == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	screen.DrawImage(img, op)
}

// drawCentered draws s horizontally centred at height y.
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawWelcome renders the title and the level list with the selection marked.
func (g *Game) drawWelcome(screen *ebiten.Image) {
	drawBackground(screen, g.welcomeImg)
	if g.fonts == nil {
		ebitenutil.DebugPrintAt(screen, g.welcomeText(), 10, 10)
		return
	}
	h := float64(screen.Bounds().Dy())
	drawCentered(screen, "Welcome to the Maze!", g.fonts.title, h/4, menuTitleColor)
	drawCentered(screen, "Select a level (Up/Down, Enter, Esc quits):", g.fonts.item, h/4+60, menuItemColor)
	for i, l := range g.levels {
		clr := menuItemColor
		label := l.Name
		if i == g.selected {
			clr = menuSelectedColor
			label = "> " + label + " <"
		}
		drawCentered(screen, label, g.fonts.item, h/4+100+float64(i*menuLineSpacing), clr)
	}
}

// drawSuccess renders the completion screen.
func (g *Game) drawSuccess(screen *ebiten.Image) {
	drawBackground(screen, g.successImg)
	if g.fonts == nil {
		ebitenutil.DebugPrintAt(screen, "Congratulations! You found the exit!\nEnter: menu  Esc: quit", 10, 10)
		return
	}
	h := float64(screen.Bounds().Dy())
	drawCentered(screen, "Congratulations! You found the exit!", g.fonts.success, h/3, successTitleColor)
	drawCentered(screen, "Press Enter to return to the menu or Esc to quit", g.fonts.item, h/3+60, menuItemColor)
}

// welcomeText is the plain-text level menu used when no fonts are loaded.
func (g *Game) welcomeText() string {
	s := "Welcome to the Maze!\nSelect a level (Up/Down, Enter, Esc quits):\n"
	for i, l := range g.levels {
		marker := "  "
		if i == g.selected {
			marker = "> "
		}
		s += marker + l.Name + "\n"
	}
	return s
}
