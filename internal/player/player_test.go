package player

import (
	"math"
	"math/rand"
	"testing"

	"raycaster/internal/maze"
)

func room() *maze.Maze {
	return maze.FromRows(
		"######",
		"#    #",
		"#    #",
		"#    #",
		"######",
	)
}

func TestDirectionUnitLength(t *testing.T) {
	p := New()
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2.5, -1.2} {
		p.Angle = angle
		for mask := 1; mask < 16; mask++ {
			in := Input{
				Forward:     mask&1 != 0,
				Backward:    mask&2 != 0,
				StrafeLeft:  mask&4 != 0,
				StrafeRight: mask&8 != 0,
			}
			dx, dy := p.Direction(in)
			l := math.Hypot(dx, dy)
			cancels := (in.Forward == in.Backward) && (in.StrafeLeft == in.StrafeRight)
			if cancels {
				if l != 0 {
					t.Fatalf("angle %v mask %b: opposing intents should cancel, got len %v", angle, mask, l)
				}
				continue
			}
			if math.Abs(l-1) > 1e-9 {
				t.Fatalf("angle %v mask %b: length %v, want 1", angle, mask, l)
			}
		}
	}
}

func TestDirectionNoInput(t *testing.T) {
	p := New()
	if dx, dy := p.Direction(Input{}); dx != 0 || dy != 0 {
		t.Fatalf("no input produced (%v,%v)", dx, dy)
	}
	before := *p
	if p.Update(Input{}, room()) {
		t.Fatal("Update without input reported movement")
	}
	if *p != before {
		t.Fatal("Update without input changed the player")
	}
}

func TestStrafeIsPerpendicular(t *testing.T) {
	p := New()
	p.Angle = 0
	dx, dy := p.Direction(Input{StrafeRight: true})
	if math.Abs(dx) > 1e-9 || math.Abs(dy-1) > 1e-9 {
		t.Fatalf("strafe right at angle 0 = (%v,%v), want (0,1)", dx, dy)
	}
	dx, dy = p.Direction(Input{StrafeLeft: true})
	if math.Abs(dx) > 1e-9 || math.Abs(dy+1) > 1e-9 {
		t.Fatalf("strafe left at angle 0 = (%v,%v), want (0,-1)", dx, dy)
	}
}

func TestForwardMovesBySpeedTimesStep(t *testing.T) {
	p := New()
	p.X, p.Y = 2.5, 2.5
	if !p.Update(Input{Forward: true}, room()) {
		t.Fatal("expected movement")
	}
	want := 2.5 + p.Speed*Timestep
	if math.Abs(p.X-want) > 1e-12 || p.Y != 2.5 {
		t.Fatalf("got (%v,%v), want (%v,2.5)", p.X, p.Y, want)
	}
}

func TestSlideAlongWall(t *testing.T) {
	p := New()
	p.X, p.Y = 4.75, 2.5
	// Diagonal push into the east wall: X is blocked, Y is free.
	moved := p.Move(0.1, 0.1, room())
	if !moved {
		t.Fatal("player should still slide along the wall")
	}
	if p.X != 4.75 {
		t.Fatalf("X changed to %v despite the wall", p.X)
	}
	if math.Abs(p.Y-2.6) > 1e-12 {
		t.Fatalf("Y = %v, want 2.6", p.Y)
	}
}

func TestSlideViaUpdate(t *testing.T) {
	p := New()
	p.X, p.Y = 4.79, 2.0
	p.Angle = math.Pi / 4
	p.Speed = 6
	startY := p.Y
	for i := 0; i < 10; i++ {
		p.Update(Input{Forward: true}, room())
	}
	if p.X+p.Radius >= 5 {
		t.Fatalf("player entered wall: x=%v", p.X)
	}
	if p.Y <= startY {
		t.Fatalf("player stuck at y=%v; diagonal motion must slide", p.Y)
	}
}

func TestCollidesProbe(t *testing.T) {
	m := room()
	if Collides(m, 2.5, 2.5, 0.2) {
		t.Fatal("centre of room should be clear")
	}
	if !Collides(m, 1.1, 2.5, 0.2) {
		t.Fatal("west probe should hit the wall")
	}
	if !Collides(m, 4.5, 3.9, 0.2) {
		t.Fatal("south probe should hit the wall")
	}
	// Diagonal probe alone: corner cell only.
	corner := maze.FromRows("#  ", "   ", "   ")
	if !Collides(corner, 1.1, 1.1, 0.2) {
		t.Fatal("diagonal probe should hit the corner cell")
	}
}

func TestNeverEntersWall(t *testing.T) {
	m := maze.FromRows(
		"##########",
		"#   #    #",
		"# # # ## #",
		"# #   #  #",
		"##########",
	)
	rng := rand.New(rand.NewSource(3))
	p := New()
	p.X, p.Y = 1.5, 1.5
	p.Speed = 8
	for i := 0; i < 5000; i++ {
		in := Input{
			Forward:     rng.Intn(2) == 0,
			Backward:    rng.Intn(4) == 0,
			StrafeLeft:  rng.Intn(3) == 0,
			StrafeRight: rng.Intn(3) == 0,
			TurnLeft:    rng.Intn(3) == 0,
			TurnRight:   rng.Intn(3) == 0,
		}
		p.Update(in, m)
		if _, hit := m.WallAt(p.X, p.Y); hit {
			t.Fatalf("step %d: player inside wall at (%v,%v)", i, p.X, p.Y)
		}
		if Collides(m, p.X, p.Y, p.Radius) {
			t.Fatalf("step %d: accepted colliding position (%v,%v)", i, p.X, p.Y)
		}
	}
}

// At the default speed a step is a third of a cell, so the probe can never
// skip over a one-cell wall.
func TestDefaultSpeedNeverTunnels(t *testing.T) {
	m := maze.FromRows(
		"##########",
		"#   #    #",
		"# # # ## #",
		"# #   #  #",
		"##########",
	)
	step := DefaultSpeed * Timestep
	if step >= 0.5 {
		t.Fatalf("default step %v cells is too long for one-cell walls", step)
	}
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		p := New()
		p.X, p.Y = 1.5, 1.5
		p.Angle = rng.Float64() * 2 * math.Pi
		for i := 0; i < 2000; i++ {
			in := Input{
				Forward:   rng.Intn(4) > 0,
				TurnLeft:  rng.Intn(5) == 0,
				TurnRight: rng.Intn(5) == 0,
			}
			x0, y0 := p.X, p.Y
			p.Update(in, m)
			if math.Abs(p.X-x0) > step+1e-12 || math.Abs(p.Y-y0) > step+1e-12 {
				t.Fatalf("trial %d step %d: moved (%v,%v), limit %v", trial, i, p.X-x0, p.Y-y0, step)
			}
			if Collides(m, p.X, p.Y, p.Radius) {
				t.Fatalf("trial %d step %d: inside a wall at (%v,%v)", trial, i, p.X, p.Y)
			}
		}
	}
}

func TestTurn(t *testing.T) {
	p := New()
	p.Turn(Input{TurnRight: true})
	if want := p.RotSpeed * Timestep; math.Abs(p.Angle-want) > 1e-12 {
		t.Fatalf("angle %v want %v", p.Angle, want)
	}
	p.Angle = 0
	p.Turn(Input{MouseDX: 10, MouseSensitivity: 0.003})
	if math.Abs(p.Angle-0.03) > 1e-12 {
		t.Fatalf("mouse turn angle %v want 0.03", p.Angle)
	}
	p.Turn(Input{TurnLeft: true, TurnRight: true})
	if math.Abs(p.Angle-0.03) > 1e-12 {
		t.Fatal("opposing turn keys should cancel")
	}
}
