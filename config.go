package main

import (
	"image/color"
	"time"
)

// Window, pacing and gameplay constants. Physics always advances by
// player.Timestep regardless of targetTPS.
const (
	screenWidth       = 800
	screenHeight      = 600
	windowTitle       = "Raycaster Textured"
	targetTPS         = 30
	stepSoundCooldown = 0.25
	markerFrameTime   = 0.2
	markerFrames      = 3
	minimapSize       = 150
	minimapScale      = 10
	minimapCells      = 20
	minimapMargin     = 10
	defaultMouseSens  = 0.003
	audioSampleRate   = 48000
	musicVolume       = 0.7
	terminalKeyHold   = 150 * time.Millisecond
	pgoRecordDuration = 15 * time.Second
	defaultPGOPath    = "default.pgo"
	defaultAssetsDir  = "assets"
	levelsSubdir      = "levels"
	musicFile         = "background_music.mp3"
	stepSoundFile     = "step.wav"
	welcomeImageFile  = "welcome.png"
	successImageFile  = "success.png"
	menuTitleSize     = 40
	menuTextSize      = 20
	successTitleSize  = 30
	menuLineSpacing   = 30
)

var (
	backgroundColor = color.RGBA{0, 0, 139, 255}
	menuBackground  = color.RGBA{0, 0, 0, 255}
)

// wallTextureFiles binds each wall symbol to its image under the assets dir.
var wallTextureFiles = map[byte]string{
	'+': "wall4.png",
	'-': "wall2.png",
	'|': "wall1.png",
	'#': "wall3.png",
}

// minimapColors gives each wall symbol its minimap tint.
var minimapColors = map[byte]color.RGBA{
	'#': {130, 130, 130, 255},
	'+': {230, 41, 55, 255},
	'-': {0, 228, 48, 255},
	'|': {0, 121, 241, 255},
}
