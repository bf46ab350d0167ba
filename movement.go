package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycaster/internal/player"
)

// pollInput samples the keyboard and mouse for one tick.
func (g *Game) pollInput() frameInput {
	in := frameInput{
		Up:     inpututil.IsKeyJustPressed(ebiten.KeyUp),
		Down:   inpututil.IsKeyJustPressed(ebiten.KeyDown),
		Enter:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if g.state == statePlaying {
		in.Move = g.manualMovement()
	}
	return in
}

// manualMovement maps W/S and the arrow keys to walking, Q/E to strafing and
// A/D to turning. Horizontal mouse motion adds to the turn.
func (g *Game) manualMovement() player.Input {
	in := player.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyE),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	in.MouseDX = g.mouseDelta()
	return in
}

// mouseDelta returns the horizontal cursor movement since the previous call.
// The first sample only primes the last known position.
func (g *Game) mouseDelta() float64 {
	x, y := ebiten.CursorPosition()
	if !g.cursorKnown {
		g.lastCursorX, g.lastCursorY = x, y
		g.cursorKnown = true
		return 0
	}
	dx := x - g.lastCursorX
	g.lastCursorX, g.lastCursorY = x, y
	return float64(dx)
}

// autoWalker drives the player with random intents while a PGO profile is
// being recorded.
type autoWalker struct {
	deadline time.Time
	onDone   func()
	rng      *rand.Rand
	intent   player.Input
	frames   int
}

// enableAutoWalk schedules scripted movement for a limited duration. onDone,
// if set, runs once when the walk ends.
func (g *Game) enableAutoWalk(duration time.Duration, onDone func()) {
	g.autoWalk.deadline = time.Now().Add(duration)
	g.autoWalk.onDone = onDone
	if g.autoWalk.rng == nil {
		g.autoWalk.rng = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autoWalk.frames = 0
}

func (a *autoWalker) active() bool {
	if a.deadline.IsZero() {
		return false
	}
	if time.Now().After(a.deadline) {
		a.deadline = time.Time{}
		if done := a.onDone; done != nil {
			a.onDone = nil
			done()
		}
		return false
	}
	return true
}

// next returns the scripted intent for this tick, picking a new one when the
// current one runs out or when it would walk straight into a wall.
func (a *autoWalker) next(g *Game) player.Input {
	if g.state != statePlaying || g.player == nil {
		return player.Input{}
	}
	if a.frames <= 0 || a.blocked(g) {
		a.randomize()
	}
	a.frames--
	return a.intent
}

func (a *autoWalker) blocked(g *Game) bool {
	if !a.intent.Moving() {
		return false
	}
	dx, dy := g.player.Direction(a.intent)
	step := g.player.Speed * player.Timestep
	return player.Collides(g.maze, g.player.X+dx*step, g.player.Y+dy*step, g.player.Radius)
}

// randomize chooses a new heading for automatic walking.
func (a *autoWalker) randomize() {
	a.intent = player.Input{
		Forward:   a.rng.Intn(3) > 0,
		TurnLeft:  a.rng.Intn(4) == 0,
		TurnRight: a.rng.Intn(4) == 0,
	}
	a.frames = 20 + a.rng.Intn(50)
}
