package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// soundSystem plays the looping background music and the step sound through
// ebiten's audio context.
type soundSystem struct {
	music *audio.Player
	step  *audio.Player
}

// newSoundSystem opens the audio context and loads both sounds from dir. A
// sound that fails to load is logged and skipped.
func newSoundSystem(dir string) *soundSystem {
	ctx := audio.NewContext(audioSampleRate)
	s := &soundSystem{}

	if p, err := loadMusicLoop(ctx, filepath.Join(dir, musicFile)); err != nil {
		log.Printf("Background music disabled: %v", err)
	} else {
		s.music = p
		s.music.SetVolume(musicVolume)
		s.music.Play()
	}
	if p, err := loadStepSound(ctx, filepath.Join(dir, stepSoundFile)); err != nil {
		log.Printf("Step sound disabled: %v", err)
	} else {
		s.step = p
	}
	return s
}

// loadMusicLoop decodes the MP3 at path into an endlessly looping player.
func loadMusicLoop(ctx *audio.Context, path string) (*audio.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("creating player for %q: %w", path, err)
	}
	return p, nil
}

// loadStepSound decodes the WAV at path fully into memory so it can be
// rewound and replayed cheaply.
func loadStepSound(ctx *audio.Context, path string) (*audio.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	return ctx.NewPlayerFromBytes(decoded), nil
}

// playStep restarts the step sound from the beginning.
func (s *soundSystem) playStep() {
	if s.step == nil {
		return
	}
	if err := s.step.SetPosition(0); err != nil {
		log.Printf("Rewinding step sound failed: %v", err)
		return
	}
	s.step.Play()
}

func (s *soundSystem) close() {
	for _, p := range []*audio.Player{s.music, s.step} {
		if p != nil {
			_ = p.Close()
		}
	}
}
