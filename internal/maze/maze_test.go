package maze

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBoxMaze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.txt")
	if err := os.WriteFile(path, []byte("####\n#  #\n####\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Height() != 3 || m.Width() != 4 {
		t.Fatalf("got %dx%d grid, want 3x4", m.Height(), m.Width())
	}
	if ch, ok := m.WallAt(1.5, 1.5); ok {
		t.Fatalf("WallAt(1.5,1.5) = %q, want no wall", ch)
	}
	ch, ok := m.WallAt(0.5, 0.5)
	if !ok || ch != '#' {
		t.Fatalf("WallAt(0.5,0.5) = %q,%v, want '#',true", ch, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("got %v, want ErrEmpty", err)
	}
}

func TestParseStripsCarriageReturn(t *testing.T) {
	m, err := Parse(strings.NewReader("##\r\n# \r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.RowLen(1) != 2 {
		t.Fatalf("row 1 len = %d, want 2", m.RowLen(1))
	}
	if _, ok := m.WallAt(1.2, 1.2); ok {
		t.Fatal("trailing CR must not become a wall cell")
	}
}

func TestWallAtOutOfBounds(t *testing.T) {
	m := FromRows("###", "#", "#####")
	cases := []struct {
		name string
		x, y float64
	}{
		{"past last row", 0.5, 3.5},
		{"far below", 1, 100},
		{"past short row", 1.5, 1.5},
		{"past long row", 5.1, 2.0},
		{"negative x", -0.5, 0.5},
		{"negative y", 0.5, -0.1},
		{"both negative", -3, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if ch, ok := m.WallAt(tc.x, tc.y); ok {
				t.Fatalf("WallAt(%v,%v) = %q, want no wall", tc.x, tc.y, ch)
			}
		})
	}
}

func TestWallAtReturnsSymbol(t *testing.T) {
	m := FromRows("#+-|", "    ")
	for i, want := range []byte("#+-|") {
		ch, ok := m.WallAt(float64(i)+0.99, 0.99)
		if !ok || ch != want {
			t.Errorf("cell %d: got %q,%v want %q", i, ch, ok, want)
		}
		if ch, ok := m.WallAt(float64(i)+0.01, 1.01); ok {
			t.Errorf("empty cell %d reported %q", i, ch)
		}
	}
}

func TestWallAtTruncates(t *testing.T) {
	m := FromRows("# ")
	// 0.99 rounds to 1 but truncates to 0.
	if _, ok := m.WallAt(0.99, 0); !ok {
		t.Fatal("0.99 must truncate into the wall cell")
	}
	if _, ok := m.WallAt(1.0, 0); ok {
		t.Fatal("1.0 lies in the open cell")
	}
}

func TestSymbolsAndDense(t *testing.T) {
	m := FromRows("#+", "-", "# |")
	if got := string(m.Symbols()); got != "#+-|" {
		t.Fatalf("Symbols = %q", got)
	}
	if got, want := string(m.Dense()), "#+ -  # |"; got != want {
		t.Fatalf("Dense = %q, want %q", got, want)
	}
}
