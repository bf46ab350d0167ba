package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/player"
)

// heldKey identifies one of the movement keys tracked in terminal mode.
type heldKey int

const (
	keyForward heldKey = iota
	keyBackward
	keyStrafeLeft
	keyStrafeRight
	keyTurnLeft
	keyTurnRight
	heldKeyCount
)

// terminalInput turns tcell key events into frame input. Terminals only report
// presses (and auto-repeats), so a key counts as held for terminalKeyHold after
// its last event.
type terminalInput struct {
	lastSeen [heldKeyCount]time.Time
	edges    frameInput
	quit     bool
}

func (t *terminalInput) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyEscape:
		t.edges.Escape = true
	case tcell.KeyEnter:
		t.edges.Enter = true
	case tcell.KeyUp:
		t.edges.Up = true
		t.lastSeen[keyForward] = now
	case tcell.KeyDown:
		t.edges.Down = true
		t.lastSeen[keyBackward] = now
	case tcell.KeyLeft:
		t.lastSeen[keyTurnLeft] = now
	case tcell.KeyRight:
		t.lastSeen[keyTurnRight] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			t.lastSeen[keyForward] = now
		case 's', 'S':
			t.lastSeen[keyBackward] = now
		case 'q', 'Q':
			t.lastSeen[keyStrafeLeft] = now
		case 'e', 'E':
			t.lastSeen[keyStrafeRight] = now
		case 'a', 'A':
			t.lastSeen[keyTurnLeft] = now
		case 'd', 'D':
			t.lastSeen[keyTurnRight] = now
		}
	}
}

// frame returns the input for one tick and resets the edge-triggered keys.
func (t *terminalInput) frame(now time.Time) frameInput {
	held := func(k heldKey) bool {
		return !t.lastSeen[k].IsZero() && now.Sub(t.lastSeen[k]) < terminalKeyHold
	}
	in := t.edges
	in.Move = player.Input{
		Forward:     held(keyForward),
		Backward:    held(keyBackward),
		StrafeLeft:  held(keyStrafeLeft),
		StrafeRight: held(keyStrafeRight),
		TurnLeft:    held(keyTurnLeft),
		TurnRight:   held(keyTurnRight),
	}
	t.edges = frameInput{}
	return in
}

// newTerminalScreen opens the terminal and returns it with the framebuffer
// size it supports: one column per cell and two pixel rows per cell.
func newTerminalScreen() (tcell.Screen, int, int, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, 0, 0, fmt.Errorf("initialising terminal screen: %w", err)
	}
	cols, rows := screen.Size()
	return screen, cols, rows * 2, nil
}

// runTerminal drives g at targetTPS, drawing into screen until the player
// quits. It always finalises the screen.
func runTerminal(g *Game, screen tcell.Screen) error {
	defer screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / targetTPS)
	defer ticker.Stop()

	var input terminalInput
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input.handle(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}
			if input.quit {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.step(input.frame(now), dt); err != nil {
				if errors.Is(err, ebiten.Termination) {
					return nil
				}
				return err
			}
			g.drawTerminal(screen)
		}
	}
}

// drawTerminal renders the current state into the terminal.
func (g *Game) drawTerminal(screen tcell.Screen) {
	g.fps.frame(time.Now())
	screen.Clear()
	plain := tcell.StyleDefault
	switch g.state {
	case stateWelcome:
		drawTerminalText(screen, 2, 1, "Welcome to the Maze!", plain.Bold(true))
		drawTerminalText(screen, 2, 3, "Select a level (Up/Down, Enter, Esc quits):", plain)
		for i, l := range g.levels {
			style, label := plain, "  "+l.Name
			if i == g.selected {
				style, label = plain.Foreground(tcell.ColorYellow), "> "+l.Name
			}
			drawTerminalText(screen, 2, 5+i, label, style)
		}
	case stateSuccess:
		drawTerminalText(screen, 2, 1, "Congratulations! You found the exit!", plain.Foreground(tcell.ColorGreen).Bold(true))
		drawTerminalText(screen, 2, 3, "Enter: menu  Esc: quit", plain)
	case statePlaying:
		g.renderWorld()
		g.presentTerminal(screen)
		drawTerminalText(screen, 0, 0, fmt.Sprintf("FPS: %d", g.fps.fps), plain)
	}
	screen.Show()
}

// presentTerminal packs two framebuffer rows into each cell using the upper
// half block: foreground is the top pixel, background the bottom one.
func (g *Game) presentTerminal(screen tcell.Screen) {
	cols, rows := screen.Size()
	for cy := 0; cy < rows; cy++ {
		for x := 0; x < cols; x++ {
			top := g.fb.At(x, cy*2)
			bottom := g.fb.At(x, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x, cy, '▀', nil, style)
		}
	}
}

func drawTerminalText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
