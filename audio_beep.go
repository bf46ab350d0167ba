package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// beepSounds is the terminal-mode audio back-end. It drives the speaker
// directly because no ebiten game loop is running.
type beepSounds struct {
	rate  beep.SampleRate
	step  *beep.Buffer
	music beep.StreamSeekCloser
}

// newBeepSounds initialises the speaker and loads both sounds from dir. A
// sound that fails to load is logged and skipped.
func newBeepSounds(dir string) (*beepSounds, error) {
	rate := beep.SampleRate(audioSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	s := &beepSounds{rate: rate}

	if buf, err := s.loadStep(filepath.Join(dir, stepSoundFile)); err != nil {
		log.Printf("Step sound disabled: %v", err)
	} else {
		s.step = buf
	}
	if err := s.startMusic(filepath.Join(dir, musicFile)); err != nil {
		log.Printf("Background music disabled: %v", err)
	}
	return s, nil
}

// loadStep decodes the WAV at path into a buffer at the speaker rate.
func (s *beepSounds) loadStep(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	defer stream.Close()
	buf := beep.NewBuffer(beep.Format{SampleRate: s.rate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, s.rate, stream))
	return buf, nil
}

// startMusic loops the MP3 at path at a reduced volume.
func (s *beepSounds) startMusic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	s.music = stream
	loop := beep.Loop(-1, stream)
	volume := &effects.Volume{
		Streamer: beep.Resample(4, format.SampleRate, s.rate, loop),
		Base:     2,
		Volume:   -0.5,
	}
	speaker.Play(volume)
	return nil
}

func (s *beepSounds) playStep() {
	if s.step == nil {
		return
	}
	speaker.Play(s.step.Streamer(0, s.step.Len()))
}

func (s *beepSounds) close() {
	speaker.Clear()
	if s.music != nil {
		_ = s.music.Close()
	}
}
