package raycast

import (
	"math"
	"testing"

	"raycaster/internal/maze"
)

func TestMarchImmediateHit(t *testing.T) {
	m := maze.FromRows("#")
	h := DefaultConfig().March(m, 0.5, 0.5, 0)
	if !h.Hit || h.Symbol != '#' {
		t.Fatalf("got %+v, want immediate hit on '#'", h)
	}
	if h.Distance != 0 {
		t.Fatalf("distance %v, want 0", h.Distance)
	}
	if int(h.X) != 0 || int(h.Y) != 0 {
		t.Fatalf("hit cell (%d,%d), want (0,0)", int(h.X), int(h.Y))
	}
}

func TestMarchNoHit(t *testing.T) {
	// Open space with a single wall behind the player.
	m := maze.FromRows("#    ")
	cfg := Config{Step: 0.01, MaxDepth: 50, Projection: 1.5}
	h := cfg.March(m, 2.5, 0.5, 0)
	if h.Hit {
		t.Fatalf("ray aimed away from every wall hit %+v", h)
	}
}

func TestMarchFindsWallAtExpectedDistance(t *testing.T) {
	m := maze.FromRows(
		"#####",
		"#   #",
		"#####",
	)
	cfg := DefaultConfig()
	h := cfg.March(m, 1.5, 1.5, 0)
	if !h.Hit || h.Symbol != '#' {
		t.Fatalf("expected hit, got %+v", h)
	}
	// The east wall starts at x=4: first sample at or beyond 2.5.
	if h.Distance < 2.5-1e-9 || h.Distance > 2.5+cfg.Step+1e-9 {
		t.Fatalf("distance %v, want about 2.5", h.Distance)
	}
	if int(h.X) != 4 {
		t.Fatalf("hit x %v not in wall column 4", h.X)
	}
}

func TestMarchRespectsMaxDepth(t *testing.T) {
	m := maze.FromRows("          #")
	cfg := Config{Step: 0.01, MaxDepth: 5, Projection: 1.5}
	if h := cfg.March(m, 0.5, 0.5, 0); h.Hit {
		t.Fatalf("wall at 9.5 beyond max depth 5 was hit: %+v", h)
	}
	cfg.MaxDepth = 20
	if h := cfg.March(m, 0.5, 0.5, 0); !h.Hit {
		t.Fatal("wall within max depth missed")
	}
}

func TestRayAngleSpread(t *testing.T) {
	p := Pose{Angle: 1, FOV: math.Pi / 3}
	if got := RayAngle(p, 0, 800); math.Abs(got-(1-math.Pi/6)) > 1e-12 {
		t.Fatalf("column 0 angle %v", got)
	}
	if got := RayAngle(p, 400, 800); math.Abs(got-1) > 1e-12 {
		t.Fatalf("middle column angle %v, want facing angle", got)
	}
	prev := RayAngle(p, 0, 800)
	for i := 1; i < 800; i++ {
		a := RayAngle(p, i, 800)
		if a <= prev {
			t.Fatalf("angles not increasing at column %d", i)
		}
		prev = a
	}
}

func TestCorrectedDistance(t *testing.T) {
	const raw = 7.25
	view := 0.4
	if got := CorrectedDistance(raw, view, view); got != raw {
		t.Fatalf("straight-ahead corrected %v, want %v", got, raw)
	}
	fov := math.Pi / 3
	for i := 0; i <= 100; i++ {
		ray := view - fov/2 + fov*float64(i)/100
		if got := CorrectedDistance(raw, view, ray); got > raw+1e-12 {
			t.Fatalf("ray %v: corrected %v exceeds raw %v", ray, got, raw)
		}
	}
}

func TestWallHeightDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.05; d < 30; d += 0.05 {
		h := WallHeight(600, 1.5, d)
		if !(h < prev) {
			t.Fatalf("height %v at distance %v not below %v", h, d, prev)
		}
		prev = h
	}
	if !math.IsInf(WallHeight(600, 1.5, 0), 1) {
		t.Fatal("zero distance should project to +Inf")
	}
}

func TestWallSpan(t *testing.T) {
	cases := []struct {
		height     float64
		start, end float64
	}{
		{100, 250, 350},
		{600, 0, 600},
		{5000, 0, 600},
		{math.Inf(1), 0, 600},
		{0, 300, 300},
	}
	for _, tc := range cases {
		s, e := WallSpan(600, tc.height)
		if s != tc.start || e != tc.end {
			t.Errorf("WallSpan(600,%v) = [%v,%v], want [%v,%v]", tc.height, s, e, tc.start, tc.end)
		}
	}
}

func TestTextureU(t *testing.T) {
	cases := []struct {
		x, y, want float64
	}{
		{4.001, 2.3, 0.001},
		{3.999, 2.3, 0.999},
		{2.3, 5.002, 0.002},
		{2.75, 1.5, 0.75},
		{1.5, 7.25, 0.25},
	}
	for _, tc := range cases {
		if got := TextureU(tc.x, tc.y); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("TextureU(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
