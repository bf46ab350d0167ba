// Package raycast turns a player pose and a grid maze into textured wall
// columns in a framebuffer.
package raycast

import "math"

// Defaults for Config.
const (
	DefaultStep       = 0.01
	DefaultMaxDepth   = 20.0
	DefaultProjection = 1.5
)

// Config holds the march and projection constants.
type Config struct {
	// Step is the fixed distance advanced per march sample.
	Step float64
	// MaxDepth caps the ray length; beyond it the column shows no wall.
	MaxDepth float64
	// Projection is K in height = screenHeight*K/distance.
	Projection float64
}

// DefaultConfig returns the stock march and projection constants.
func DefaultConfig() Config {
	return Config{Step: DefaultStep, MaxDepth: DefaultMaxDepth, Projection: DefaultProjection}
}

// World is the part of a maze the marcher needs.
type World interface {
	WallAt(x, y float64) (byte, bool)
}

// Pose is the viewpoint a frame is rendered from.
type Pose struct {
	X, Y  float64
	Angle float64
	FOV   float64
}

// Hit is the result of marching one ray.
type Hit struct {
	Hit      bool
	Symbol   byte
	X, Y     float64
	Distance float64
}

// RayAngle returns the angle of column i out of width, spreading rays evenly
// over the field of view with column 0 leftmost.
func RayAngle(p Pose, i, width int) float64 {
	return p.Angle - p.FOV/2 + p.FOV*(float64(i)/float64(width))
}

// March walks from (x, y) along angle in fixed steps until it samples a wall
// or passes MaxDepth.
func (c Config) March(w World, x, y, angle float64) Hit {
	cos, sin := math.Cos(angle), math.Sin(angle)
	for n := 0; ; n++ {
		d := float64(n) * c.Step
		if d >= c.MaxDepth {
			return Hit{}
		}
		hx, hy := x+d*cos, y+d*sin
		if sym, ok := w.WallAt(hx, hy); ok {
			return Hit{Hit: true, Symbol: sym, X: hx, Y: hy, Distance: d}
		}
	}
}

// CorrectedDistance projects a radial distance onto the view direction,
// removing fish-eye distortion.
func CorrectedDistance(distance, viewAngle, rayAngle float64) float64 {
	return distance * math.Cos(viewAngle-rayAngle)
}

// WallHeight is the projected slice height for a corrected distance. A
// non-positive distance means the eye is inside the wall and yields +Inf.
func WallHeight(screenHeight int, projection, corrected float64) float64 {
	if corrected <= 0 {
		return math.Inf(1)
	}
	return float64(screenHeight) * projection / corrected
}

// WallSpan centres a slice of the given height on the screen and clamps it to
// [0, screenHeight].
func WallSpan(screenHeight int, height float64) (start, end float64) {
	mid := float64(screenHeight) / 2
	start = math.Max(mid-height/2, 0)
	end = math.Min(mid+height/2, float64(screenHeight))
	return start, end
}

// TextureU picks the horizontal texture coordinate in [0,1) for a hit point:
// the fractional part of whichever axis deviates more from the cell centre.
func TextureU(hitX, hitY float64) float64 {
	fx := hitX - math.Floor(hitX)
	fy := hitY - math.Floor(hitY)
	if math.Abs(fx-0.5) > math.Abs(fy-0.5) {
		return fx
	}
	return fy
}
