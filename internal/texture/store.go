package texture

import (
	"fmt"
	"image/color"
	"sort"
)

// Fallback is returned for symbols that have no texture bound.
var Fallback = color.RGBA{255, 255, 255, 255}

// Store maps wall symbols to textures through a fixed 256-entry table.
// It is read-only once built and safe to share across goroutines.
type Store struct {
	index    [256]int16
	textures []*Texture
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	for i := range s.index {
		s.index[i] = -1
	}
	return s
}

// Load reads one image per symbol. Any missing or undecodable asset fails the
// whole load; textures are a precondition for rendering.
func Load(paths map[byte]string) (*Store, error) {
	s := NewStore()
	symbols := make([]int, 0, len(paths))
	for sym := range paths {
		symbols = append(symbols, int(sym))
	}
	sort.Ints(symbols)
	for _, sym := range symbols {
		path := paths[byte(sym)]
		tex, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading texture for %q: %w", byte(sym), err)
		}
		s.Bind(byte(sym), tex)
	}
	return s, nil
}

// Bind associates symbol with tex, replacing any previous binding.
func (s *Store) Bind(symbol byte, tex *Texture) {
	if i := s.index[symbol]; i >= 0 {
		s.textures[i] = tex
		return
	}
	s.index[symbol] = int16(len(s.textures))
	s.textures = append(s.textures, tex)
}

// Get returns the texture bound to symbol.
func (s *Store) Get(symbol byte) (*Texture, bool) {
	i := s.index[symbol]
	if i < 0 {
		return nil, false
	}
	return s.textures[i], true
}

// Sample returns the colour at (tx, ty) of symbol's texture, or Fallback when
// the symbol is unbound.
func (s *Store) Sample(symbol byte, tx, ty int) color.RGBA {
	tex, ok := s.Get(symbol)
	if !ok {
		return Fallback
	}
	return tex.At(tx, ty)
}

// Missing lists the symbols from want that have no texture.
func (s *Store) Missing(want []byte) []byte {
	var out []byte
	for _, sym := range want {
		if s.index[sym] < 0 {
			out = append(out, sym)
		}
	}
	return out
}
