package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	minimapBackdrop = color.RGBA{0, 0, 0, 160}
	minimapPlayer   = color.RGBA{255, 255, 0, 255}
	minimapHeading  = color.RGBA{255, 255, 255, 255}
	markerColors    = [markerFrames]color.RGBA{
		{255, 215, 0, 255},
		{255, 160, 0, 255},
		{255, 100, 0, 255},
	}
)

// Draw renders the screen for the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.frame(time.Now())
	switch g.state {
	case stateWelcome:
		g.drawWelcome(screen)
	case stateSuccess:
		g.drawSuccess(screen)
	case statePlaying:
		g.renderWorld()
		g.fb.Present(screen)
		g.drawMinimap(screen)
		g.drawOverlay(screen)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.fb.Width(), g.fb.Height() }

// drawOverlay prints the FPS counter and, with -debug, renderer details.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %d", g.fps.fps)
	if *debugFlag {
		backend := "cpu"
		if name := g.batchDeviceName(); name != "" {
			backend = name
		}
		msg += fmt.Sprintf("\nTPS: %.1f  draw FPS: %.1f\nMarcher: %s (%d workers)\nPos: %.2f, %.2f  Angle: %.2f",
			ebiten.ActualTPS(), ebiten.ActualFPS(), backend, g.caster.Workers(),
			g.player.X, g.player.Y, math.Mod(g.player.Angle, 2*math.Pi))
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

// drawMinimap shows the neighbourhood of the player in the top right corner:
// walls tinted by symbol, the goal marker and the player with its heading.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	ox := float32(g.fb.Width() - minimapSize - minimapMargin)
	oy := float32(minimapMargin)
	vector.DrawFilledRect(screen, ox, oy, minimapSize, minimapSize, minimapBackdrop, false)

	startCol, startRow := minimapWindow(g.player.X, g.player.Y, g.maze.Width(), g.maze.Height())
	for row := startRow; row < startRow+minimapCells && row < g.maze.Height(); row++ {
		for col := startCol; col < startCol+minimapCells && col < g.maze.RowLen(row); col++ {
			sym, wall := g.maze.Cell(col, row)
			if !wall {
				continue
			}
			clr, ok := minimapColors[sym]
			if !ok {
				clr = color.RGBA{255, 255, 255, 255}
			}
			r := minimapCell(ox, oy, col, row, startCol, startRow)
			vector.DrawFilledRect(screen, r.x, r.y, r.size, r.size, clr, false)
		}
	}

	mx, my := g.goal.Marker()
	if inWindow(int(mx), startCol) && inWindow(int(my), startRow) {
		r := minimapCell(ox, oy, int(mx), int(my), startCol, startRow)
		radius := float32(minimapScale)/2 - float32(g.marker.frame())
		vector.DrawFilledCircle(screen, r.x+r.size/2, r.y+r.size/2, radius, markerColors[g.marker.frame()], true)
	}

	px := ox + float32((g.player.X-float64(startCol))*minimapScale)
	py := oy + float32((g.player.Y-float64(startRow))*minimapScale)
	vector.DrawFilledCircle(screen, px, py, 3, minimapPlayer, true)
	hx := px + float32(math.Cos(g.player.Angle)*2*minimapScale)
	hy := py + float32(math.Sin(g.player.Angle)*2*minimapScale)
	vector.StrokeLine(screen, px, py, hx, hy, 1, minimapHeading, true)
}

// inWindow reports whether v falls inside the minimap window starting at start.
func inWindow(v, start int) bool {
	return v >= start && v < start+minimapCells
}

func (g *Game) batchDeviceName() string {
	if g.batch == nil {
		return ""
	}
	return g.batch.DeviceName()
}
