package raycast

import (
	"fmt"
	"sync"

	"raycaster/internal/framebuffer"
	"raycaster/internal/texture"
)

// BatchMarcher marches every column of a frame in one call, typically on an
// accelerator. Texturing always stays on the CPU.
type BatchMarcher interface {
	LoadGrid(cells []byte, width, height int) error
	MarchColumns(p Pose, cfg Config, hits []Hit) error
	DeviceName() string
	Close()
}

// Grid is a world that can be flattened for a BatchMarcher.
type Grid interface {
	World
	Dense() []byte
	Width() int
	Height() int
}

// Caster renders frames. It keeps a per-column hit buffer between frames so
// steady-state rendering does not allocate.
type Caster struct {
	cfg     Config
	workers int
	hits    []Hit

	batch      BatchMarcher
	batchWorld Grid
}

// NewCaster returns a caster using cfg. workers < 1 is treated as 1.
func NewCaster(cfg Config, workers int) *Caster {
	if workers < 1 {
		workers = 1
	}
	return &Caster{cfg: cfg, workers: workers}
}

// Config returns the caster's constants.
func (c *Caster) Config() Config { return c.cfg }

// Workers returns how many goroutines share the column range.
func (c *Caster) Workers() int { return c.workers }

// UseBatchMarcher routes the march phase through m. Passing nil restores the
// CPU marcher.
func (c *Caster) UseBatchMarcher(m BatchMarcher) {
	c.batch = m
	c.batchWorld = nil
}

// Hits returns the hit records of the last rendered frame, one per column.
func (c *Caster) Hits() []Hit { return c.hits }

// Render casts one ray per framebuffer column and draws the textured wall
// slices. Columns whose ray finds nothing are left untouched. An error is only
// possible when a BatchMarcher is in use.
func (c *Caster) Render(fb *framebuffer.Framebuffer, w World, store *texture.Store, p Pose) error {
	width := fb.Width()
	if width == 0 {
		return nil
	}
	if cap(c.hits) < width {
		c.hits = make([]Hit, width)
	}
	c.hits = c.hits[:width]

	if c.batch != nil {
		if err := c.batchMarch(w, p); err != nil {
			return err
		}
		c.fanOut(width, func(i int) {
			c.drawColumn(fb, store, p, i, c.hits[i])
		})
		return nil
	}

	c.fanOut(width, func(i int) {
		angle := RayAngle(p, i, width)
		c.hits[i] = c.cfg.March(w, p.X, p.Y, angle)
		c.drawColumn(fb, store, p, i, c.hits[i])
	})
	return nil
}

func (c *Caster) batchMarch(w World, p Pose) error {
	grid, ok := w.(Grid)
	if !ok {
		return fmt.Errorf("batch marcher needs a dense grid, got %T", w)
	}
	if grid != c.batchWorld {
		if err := c.batch.LoadGrid(grid.Dense(), grid.Width(), grid.Height()); err != nil {
			return fmt.Errorf("uploading grid: %w", err)
		}
		c.batchWorld = grid
	}
	if err := c.batch.MarchColumns(p, c.cfg, c.hits); err != nil {
		return fmt.Errorf("marching columns: %w", err)
	}
	return nil
}

// fanOut runs fn for every column, splitting the range into contiguous blocks
// when more than one worker is configured. Each block writes only its own
// columns of the framebuffer and hit buffer.
func (c *Caster) fanOut(width int, fn func(i int)) {
	if c.workers == 1 || width < c.workers*2 {
		for i := 0; i < width; i++ {
			fn(i)
		}
		return
	}
	colsPer := (width + c.workers - 1) / c.workers
	var wg sync.WaitGroup
	for k := 0; k < c.workers; k++ {
		start := k * colsPer
		if start >= width {
			break
		}
		end := start + colsPer
		if end > width {
			end = width
		}
		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			for i := x0; i < x1; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// drawColumn projects a hit into a vertical slice and samples its texture column.
func (c *Caster) drawColumn(fb *framebuffer.Framebuffer, store *texture.Store, p Pose, i int, h Hit) {
	if !h.Hit {
		return
	}
	screenH := fb.Height()
	angle := RayAngle(p, i, fb.Width())
	corrected := CorrectedDistance(h.Distance, p.Angle, angle)
	start, end := WallSpan(screenH, WallHeight(screenH, c.cfg.Projection, corrected))
	if end <= start {
		return
	}

	texW, texH := 1, 1
	if tex, ok := store.Get(h.Symbol); ok {
		texW, texH = tex.Width(), tex.Height()
	}
	tx := int(TextureU(h.X, h.Y) * float64(texW))
	span := end - start
	for y := int(start); y < int(end); y++ {
		ty := int((float64(y) - start) / span * float64(texH))
		fb.Set(i, y, store.Sample(h.Symbol, tx, ty))
	}
}
