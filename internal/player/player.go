// Package player owns the viewer's pose and the collision-checked movement rules.
package player

import "math"

// Timestep is the fixed physics step in seconds. It does not follow the frame rate.
const Timestep = 1.0 / 60.0

// Defaults for a freshly spawned player.
const (
	DefaultX        = 3.5
	DefaultY        = 3.5
	DefaultAngle    = 0.0
	DefaultFOV      = math.Pi / 3
	DefaultSpeed    = 20.0
	DefaultRotSpeed = 10.0
	DefaultRadius   = 0.2
)

// Input carries the intents sampled for one physics step.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool

	// MouseDX is the horizontal cursor delta in pixels since the last step.
	MouseDX float64
	// MouseSensitivity converts MouseDX into radians.
	MouseSensitivity float64
}

// Moving reports whether any translational intent is active.
func (in Input) Moving() bool {
	return in.Forward || in.Backward || in.StrafeLeft || in.StrafeRight
}

// Player is the viewer: position in cell units, facing angle in radians.
type Player struct {
	X, Y     float64
	Angle    float64
	FOV      float64
	Speed    float64
	RotSpeed float64
	Radius   float64
}

// New returns a player at the default start pose.
func New() *Player {
	return &Player{
		X:        DefaultX,
		Y:        DefaultY,
		Angle:    DefaultAngle,
		FOV:      DefaultFOV,
		Speed:    DefaultSpeed,
		RotSpeed: DefaultRotSpeed,
		Radius:   DefaultRadius,
	}
}

// Turn applies keyboard and mouse rotation for one step.
func (p *Player) Turn(in Input) {
	if in.TurnLeft {
		p.Angle -= p.RotSpeed * Timestep
	}
	if in.TurnRight {
		p.Angle += p.RotSpeed * Timestep
	}
	if in.MouseDX != 0 {
		p.Angle += in.MouseDX * in.MouseSensitivity
	}
}

// Direction sums the unit vectors of every active intent and normalises the
// result, so diagonal movement is no faster than straight movement. No intent
// (or intents that cancel out) yields (0, 0).
func (p *Player) Direction(in Input) (float64, float64) {
	var dx, dy float64
	cos, sin := math.Cos(p.Angle), math.Sin(p.Angle)
	if in.Forward {
		dx += cos
		dy += sin
	}
	if in.Backward {
		dx -= cos
		dy -= sin
	}
	// Strafe right is +90°, left is -90° in screen space where y grows downward.
	if in.StrafeRight {
		dx -= sin
		dy += cos
	}
	if in.StrafeLeft {
		dx += sin
		dy -= cos
	}
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return 0, 0
	}
	return dx / length, dy / length
}

// Update runs one physics step: rotate, then move with X and Y resolved
// independently so the player slides along walls. It reports whether the
// position changed.
func (p *Player) Update(in Input, world Solid) bool {
	p.Turn(in)
	dx, dy := p.Direction(in)
	if dx == 0 && dy == 0 {
		return false
	}
	return p.Move(dx*p.Speed*Timestep, dy*p.Speed*Timestep, world)
}

// Move attempts a displacement, accepting each axis only if the eight-point
// probe at the candidate position is clear.
func (p *Player) Move(dx, dy float64, world Solid) bool {
	moved := false
	if nx := p.X + dx; dx != 0 && !Collides(world, nx, p.Y, p.Radius) {
		p.X = nx
		moved = true
	}
	if ny := p.Y + dy; dy != 0 && !Collides(world, p.X, ny, p.Radius) {
		p.Y = ny
		moved = true
	}
	return moved
}
