package main

// animation cycles through a fixed number of frames at a constant rate.
type animation struct {
	frames    int
	frameTime float64
	elapsed   float64
	current   int
}

func newAnimation(frames int, frameTime float64) animation {
	if frames < 1 {
		frames = 1
	}
	return animation{frames: frames, frameTime: frameTime}
}

// update advances the animation by dt seconds, skipping frames when dt spans
// more than one frame time.
func (a *animation) update(dt float64) {
	if a.frameTime <= 0 || dt <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.frameTime {
		a.elapsed -= a.frameTime
		a.current = (a.current + 1) % a.frames
	}
}

// frame returns the index of the frame to draw.
func (a *animation) frame() int { return a.current }
