// Package maze holds the grid of cell symbols a level is built from.
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Empty is the passable cell symbol.
const Empty byte = ' '

// ErrEmpty is returned when a maze source has no rows at all.
var ErrEmpty = errors.New("maze has no rows")

// Maze is an immutable, possibly ragged grid of cell symbols indexed [row][col].
type Maze struct {
	rows  [][]byte
	width int
}

// Load reads the maze stored at path.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading maze %q: %w", path, err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading maze %q: %w", path, err)
	}
	return m, nil
}

// Parse builds a maze from text where each line is a row and each byte a cell.
func Parse(r io.Reader) (*Maze, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	m := &Maze{}
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		row := []byte(line)
		if len(row) > m.width {
			m.width = len(row)
		}
		m.rows = append(m.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(m.rows) == 0 {
		return nil, ErrEmpty
	}
	return m, nil
}

// FromRows builds a maze from literal rows. Mostly useful for tests and tools.
func FromRows(rows ...string) *Maze {
	m := &Maze{rows: make([][]byte, len(rows))}
	for i, r := range rows {
		m.rows[i] = []byte(r)
		if len(r) > m.width {
			m.width = len(r)
		}
	}
	return m
}

// WallAt reports the wall symbol of the cell containing (x, y). Coordinates are
// truncated, so both ray and player collision see identical cell boundaries.
// Anything outside the grid, including negative coordinates, is open space.
func (m *Maze) WallAt(x, y float64) (byte, bool) {
	if x < 0 || y < 0 {
		return Empty, false
	}
	return m.Cell(int(x), int(y))
}

// Cell is WallAt on integer cell coordinates.
func (m *Maze) Cell(col, row int) (byte, bool) {
	if row < 0 || row >= len(m.rows) {
		return Empty, false
	}
	r := m.rows[row]
	if col < 0 || col >= len(r) {
		return Empty, false
	}
	ch := r[col]
	if ch == Empty {
		return Empty, false
	}
	return ch, true
}

// Height is the number of rows.
func (m *Maze) Height() int { return len(m.rows) }

// Width is the length of the longest row.
func (m *Maze) Width() int { return m.width }

// RowLen returns the length of row y, or 0 outside the grid.
func (m *Maze) RowLen(y int) int {
	if y < 0 || y >= len(m.rows) {
		return 0
	}
	return len(m.rows[y])
}

// Symbols lists the distinct wall symbols present, in first-seen order.
func (m *Maze) Symbols() []byte {
	var seen [256]bool
	var out []byte
	for _, row := range m.rows {
		for _, ch := range row {
			if ch == Empty || seen[ch] {
				continue
			}
			seen[ch] = true
			out = append(out, ch)
		}
	}
	return out
}

// Dense returns the grid padded to Width()×Height(), row-major, with Empty in
// cells missing from short rows.
func (m *Maze) Dense() []byte {
	out := make([]byte, m.width*len(m.rows))
	for y, row := range m.rows {
		base := y * m.width
		copy(out[base:base+len(row)], row)
		for x := len(row); x < m.width; x++ {
			out[base+x] = Empty
		}
	}
	return out
}
