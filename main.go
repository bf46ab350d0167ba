//go:generate go run ./cmd/gentextures -out assets

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/raycast"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run holds the body of main so deferred cleanup, including stopping any
// running profile, happens before a fatal exit.
func run() error {
	if err := checkProfileFlags(*cpuProfileFlag, *recordDefaultPGO); err != nil {
		return err
	}
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("CPU profiling failed: %w", err)
		}
		defer stop()
	}

	workers := *workersFlag
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	opts := gameOptions{
		assetsDir:        *assetsDirFlag,
		levels:           *levelsFlag,
		width:            screenWidth,
		height:           screenHeight,
		workers:          workers,
		mouseSensitivity: *mouseSensitivityFlag,
	}

	if *terminalFlag {
		return runTerminalMode(opts)
	}

	g, err := newGame(opts)
	if err != nil {
		return err
	}
	defer g.close()
	g.attachBatchMarcher()
	if fonts, err := loadMenuFonts(); err != nil {
		log.Printf("Menu fonts unavailable, using debug text: %v", err)
	} else {
		g.fonts = fonts
	}
	g.welcomeImg = loadBackground(opts.assetsDir, welcomeImageFile)
	g.successImg = loadBackground(opts.assetsDir, successImageFile)
	if *enableAudioFlag {
		g.sound = newSoundSystem(opts.assetsDir)
	}

	if *recordDefaultPGO {
		if err := g.startLevel(0); err != nil {
			return fmt.Errorf("PGO recording failed: %w", err)
		}
		stop, err := startCPUProfile(defaultPGOPath)
		if err != nil {
			return fmt.Errorf("PGO recording failed: %w", err)
		}
		defer stop()
		g.enableAutoWalk(pgoRecordDuration, func() {
			stop()
			log.Printf("Wrote %s", defaultPGOPath)
		})
		log.Printf("Recording %s for %s", defaultPGOPath, pgoRecordDuration)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(targetTPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// checkProfileFlags rejects asking for two CPU profiles at once; pprof only
// supports one.
func checkProfileFlags(cpuProfile string, recordPGO bool) error {
	if cpuProfile != "" && recordPGO {
		return errors.New("-cpuprofile and -record-default-pgo cannot be combined")
	}
	return nil
}

// runTerminalMode sizes the framebuffer to the terminal and runs the game
// there instead of in a window.
func runTerminalMode(opts gameOptions) error {
	screen, width, height, err := newTerminalScreen()
	if err != nil {
		return err
	}
	opts.width, opts.height = width, height
	g, err := newGame(opts)
	if err != nil {
		screen.Fini()
		return err
	}
	defer g.close()
	g.attachBatchMarcher()
	if *enableAudioFlag {
		if s, err := newBeepSounds(opts.assetsDir); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			g.sound = s
		}
	}
	return runTerminal(g, screen)
}

// attachBatchMarcher enables the OpenCL marcher when -opencl is set, staying
// on the CPU if no device is available.
func (g *Game) attachBatchMarcher() {
	if !*openCLFlag {
		return
	}
	m, err := raycast.NewOpenCLMarcher()
	if err != nil {
		log.Printf("OpenCL unavailable, marching on the CPU: %v", err)
		return
	}
	log.Printf("OpenCL marcher enabled (device: %s)", m.DeviceName())
	g.useBatchMarcher(m)
}
