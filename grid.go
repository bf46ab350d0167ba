package main

// cellRect is the on-screen rectangle of one minimap cell.
type cellRect struct {
	x, y, size float32
}

// minimapWindow returns the first column and row of the minimapCells-wide
// window centred on the player, clamped so it stays inside the maze.
func minimapWindow(px, py float64, mazeW, mazeH int) (int, int) {
	half := minimapCells / 2
	col := clampCoord(int(px)-half, 0, max(mazeW-minimapCells, 0))
	row := clampCoord(int(py)-half, 0, max(mazeH-minimapCells, 0))
	return col, row
}

// minimapCell places maze cell (col, row) inside the minimap anchored at
// (ox, oy) whose window starts at (startCol, startRow).
func minimapCell(ox, oy float32, col, row, startCol, startRow int) cellRect {
	return cellRect{
		x:    ox + float32((col-startCol)*minimapScale),
		y:    oy + float32((row-startRow)*minimapScale),
		size: minimapScale,
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
