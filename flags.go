package main

import "flag"

// Command-line flags that control asset locations, rendering back-ends and
// optional runtime behaviour.
var (
	// assetsDirFlag points at the directory holding textures, sounds and levels.
	assetsDirFlag = flag.String("assets", defaultAssetsDir, "directory containing textures, sounds and the levels/ folder")

	// levelsFlag lists the level files shown on the welcome menu.
	levelsFlag = flag.String("levels", "maze.txt,mazetky.txt", "comma-separated level files, relative to <assets>/levels")

	// workersFlag splits the column loop over this many goroutines.
	workersFlag = flag.Int("workers", 1, "goroutines sharing the per-column ray loop (0 uses every CPU)")

	// openCLFlag marches rays on an OpenCL device when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "march rays on an OpenCL device (requires -tags opencl)")

	// enableAudioFlag toggles background music and step sounds.
	enableAudioFlag = flag.Bool("enable-audio", true, "play background music and step sounds")

	// debugFlag adds renderer details to the FPS overlay.
	debugFlag = flag.Bool("debug", false, "show renderer details next to the FPS counter")

	mouseSensitivityFlag = flag.Float64("mouse-sensitivity", defaultMouseSens, "radians of rotation per pixel of horizontal mouse movement")

	// terminalFlag renders into the terminal through tcell instead of a window.
	terminalFlag = flag.Bool("terminal", false, "render in the terminal instead of opening a window")

	// cpuProfileFlag writes a CPU profile covering the whole session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly through the first level for 15s while capturing default.pgo")
)
