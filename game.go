package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/framebuffer"
	"raycaster/internal/level"
	"raycaster/internal/maze"
	"raycaster/internal/player"
	"raycaster/internal/raycast"
	"raycaster/internal/texture"
)

// gameState is the screen the frame loop is currently driving.
type gameState int

const (
	stateWelcome gameState = iota
	statePlaying
	stateSuccess
)

func (s gameState) String() string {
	switch s {
	case stateWelcome:
		return "welcome"
	case statePlaying:
		return "playing"
	case stateSuccess:
		return "success"
	}
	return fmt.Sprintf("gameState(%d)", int(s))
}

// frameInput is everything the state machine reads in one tick. Menu keys are
// edge-triggered; Move is level-triggered.
type frameInput struct {
	Up     bool
	Down   bool
	Enter  bool
	Escape bool
	Move   player.Input
}

// footstep reports whether any of the walking keys is held.
func (in frameInput) footstep() bool {
	return in.Move.Moving() || in.Move.TurnLeft || in.Move.TurnRight
}

// sounds is the audio back-end: ebiten audio in a window, beep in a terminal.
type sounds interface {
	playStep()
	close()
}

// Game holds the level list, the active run and the presentation resources.
type Game struct {
	state    gameState
	levels   []level.Level
	selected int
	current  int

	maze     *maze.Maze
	player   *player.Player
	goal     level.Goal
	textures *texture.Store
	caster   *raycast.Caster
	batch    raycast.BatchMarcher
	fb       *framebuffer.Framebuffer

	marker    animation
	fps       fpsCounter
	stepTimer float64

	mouseSensitivity float64
	lastCursorX      int
	lastCursorY      int
	cursorKnown      bool
	lastUpdate       time.Time

	sound      sounds
	fonts      *menuFonts
	welcomeImg *ebiten.Image
	successImg *ebiten.Image

	autoWalk autoWalker
}

// gameOptions collects what newGame needs from flags.
type gameOptions struct {
	assetsDir        string
	levels           string
	width, height    int
	workers          int
	mouseSensitivity float64
}

// newGame loads every wall texture and the level list. A missing texture is an
// error: rendering cannot start without the full set.
func newGame(opts gameOptions) (*Game, error) {
	paths := make(map[byte]string, len(wallTextureFiles))
	for sym, name := range wallTextureFiles {
		paths[sym] = filepath.Join(opts.assetsDir, name)
	}
	store, err := texture.Load(paths)
	if err != nil {
		return nil, fmt.Errorf("%w (run `go generate` to create the default textures)", err)
	}
	levels, err := level.FromList(filepath.Join(opts.assetsDir, levelsSubdir), opts.levels)
	if err != nil {
		return nil, err
	}
	g := newGameWith(levels, store, opts.width, opts.height, opts.workers)
	g.mouseSensitivity = opts.mouseSensitivity
	return g, nil
}

// newGameWith assembles a game from already loaded parts.
func newGameWith(levels []level.Level, store *texture.Store, width, height, workers int) *Game {
	return &Game{
		state:            stateWelcome,
		levels:           levels,
		textures:         store,
		caster:           raycast.NewCaster(raycast.DefaultConfig(), workers),
		fb:               framebuffer.New(width, height, backgroundColor),
		marker:           newAnimation(markerFrames, markerFrameTime),
		mouseSensitivity: defaultMouseSens,
	}
}

// startLevel loads level i and spawns a fresh player in it. On failure the
// current state is left untouched.
func (g *Game) startLevel(i int) error {
	if i < 0 || i >= len(g.levels) {
		return fmt.Errorf("level %d out of range", i)
	}
	l := g.levels[i]
	m, err := l.Load()
	if err != nil {
		return err
	}
	if missing := g.textures.Missing(m.Symbols()); len(missing) > 0 {
		log.Printf("Level %s uses symbols without textures: %q", l.Name, missing)
	}
	g.current = i
	g.maze = m
	g.goal = l.Goal
	if g.goal == nil {
		g.goal = level.DefaultGoal
	}
	g.player = player.New()
	g.stepTimer = 0
	g.cursorKnown = false
	g.state = statePlaying
	log.Printf("Started level %s (%dx%d)", l.Name, m.Width(), m.Height())
	return nil
}

// Update advances the state machine by one tick using live input.
func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	in := g.pollInput()
	if g.autoWalk.active() {
		in.Move = g.autoWalk.next(g)
	}
	return g.step(in, dt)
}

// step is the frame-synchronous body of Update: input, physics and state
// transitions. Rendering happens separately in Draw.
func (g *Game) step(in frameInput, dt float64) error {
	g.marker.update(dt)
	if in.Escape {
		return ebiten.Termination
	}

	switch g.state {
	case stateWelcome:
		n := len(g.levels)
		if in.Up {
			g.selected = (g.selected - 1 + n) % n
		}
		if in.Down {
			g.selected = (g.selected + 1) % n
		}
		if in.Enter {
			if err := g.startLevel(g.selected); err != nil {
				log.Printf("Loading level failed: %v", err)
			}
		}

	case statePlaying:
		g.stepTimer = math.Max(g.stepTimer-dt, 0)
		if in.footstep() && g.stepTimer <= 0 {
			if g.sound != nil {
				g.sound.playStep()
			}
			g.stepTimer = stepSoundCooldown
		}
		in.Move.MouseSensitivity = g.mouseSensitivity
		g.player.Update(in.Move, g.maze)
		if g.goal.Reached(g.player.X, g.player.Y) {
			log.Printf("Level %s completed", g.levels[g.current].Name)
			g.state = stateSuccess
		}

	case stateSuccess:
		if in.Enter {
			g.state = stateWelcome
		}
	}
	return nil
}

// pose returns the current viewpoint for the raycaster.
func (g *Game) pose() raycast.Pose {
	return raycast.Pose{X: g.player.X, Y: g.player.Y, Angle: g.player.Angle, FOV: g.player.FOV}
}

// renderWorld clears the framebuffer and casts the current view into it. A
// failing batch marcher is dropped and the frame is redone on the CPU.
func (g *Game) renderWorld() {
	g.fb.Clear()
	if err := g.caster.Render(g.fb, g.maze, g.textures, g.pose()); err != nil {
		log.Printf("Batch ray march failed, falling back to CPU: %v", err)
		g.useBatchMarcher(nil)
		g.fb.Clear()
		_ = g.caster.Render(g.fb, g.maze, g.textures, g.pose())
	}
}

// useBatchMarcher swaps the column marcher, closing the previous one.
func (g *Game) useBatchMarcher(m raycast.BatchMarcher) {
	if g.batch != nil {
		g.batch.Close()
	}
	g.batch = m
	g.caster.UseBatchMarcher(m)
}

// close releases the batch marcher and stops audio.
func (g *Game) close() {
	g.useBatchMarcher(nil)
	if g.sound != nil {
		g.sound.close()
	}
}

// fpsCounter counts drawn frames over one-second windows.
type fpsCounter struct {
	start  time.Time
	frames int
	fps    int
}

// frame records one presented frame at now. The first call only opens the
// window.
func (f *fpsCounter) frame(now time.Time) {
	if f.start.IsZero() {
		f.start = now
		return
	}
	f.frames++
	if now.Sub(f.start) >= time.Second {
		f.fps = f.frames
		f.frames = 0
		f.start = now
	}
}
