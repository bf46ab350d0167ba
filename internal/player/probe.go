package player

// probeOffset is one collision sample point relative to the player's centre,
// expressed in multiples of the collision radius.
type probeOffset struct {
	dx float64
	dy float64
}

// diagonalScale pulls the diagonal probes in so they sit near the circle.
const diagonalScale = 0.7

var collisionProbe = precomputeProbe()

func precomputeProbe() [8]probeOffset {
	return [8]probeOffset{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{diagonalScale, diagonalScale},
		{-diagonalScale, diagonalScale},
		{diagonalScale, -diagonalScale},
		{-diagonalScale, -diagonalScale},
	}
}

// Solid answers whether a world position lies inside a wall cell.
type Solid interface {
	WallAt(x, y float64) (byte, bool)
}

// Collides reports whether a body of the given radius centred at (x, y) would
// overlap a wall at any of its eight probe points.
func Collides(world Solid, x, y, radius float64) bool {
	for _, p := range collisionProbe {
		if _, hit := world.WallAt(x+p.dx*radius, y+p.dy*radius); hit {
			return true
		}
	}
	return false
}
