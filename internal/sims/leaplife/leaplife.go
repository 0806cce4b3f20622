// Package leaplife steps seed shapes on a toroidal grid under a rule table
// and tracks how their population evolves.
package leaplife

import (
	"leaplife/internal/core"
	"leaplife/internal/lifespan"
	"leaplife/internal/polyomino"
	"leaplife/internal/rule"
	"leaplife/internal/seed"
)

// Step computes the next generation of cur into nxt and returns its
// population. Cells must hold 0 or 1; both grids must share dimensions.
func Step(cur, nxt *core.ByteGrid, rules *rule.Table) int {
	w, h := cur.W, cur.H
	src, dst := cur.Cells(), nxt.Cells()
	population := 0
	for y := 0; y < h; y++ {
		up := ((y - 1 + h) % h) * w
		mid := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			l := (x - 1 + w) % w
			r := (x + 1) % w
			code := int(src[up+l])<<8 | int(src[up+x])<<7 | int(src[up+r])<<6 |
				int(src[mid+l])<<5 | int(src[mid+x])<<4 | int(src[mid+r])<<3 |
				int(src[down+l])<<2 | int(src[down+x])<<1 | int(src[down+r])
			v := rules.Next(code)
			dst[mid+x] = v
			population += int(v)
		}
	}
	return population
}

// Place centres the shape's bounding box on the grid and marks its cells
// alive. A cell's X selects the grid row and Y the column. Cells that would
// land off the grid are skipped.
func Place(g *core.ByteGrid, s polyomino.Shape) {
	if len(s) == 0 {
		return
	}
	minX, minY, maxX, maxY := s.Bounds()
	rowOffset := (g.H - (maxX - minX + 1)) / 2
	colOffset := (g.W - (maxY - minY + 1)) / 2
	cells := g.Cells()
	for _, c := range s {
		row := c.X - minX + rowOffset
		col := c.Y - minY + colOffset
		if g.In(col, row) {
			cells[g.Index(col, row)] = 1
		}
	}
}

// World runs one seed at a time on a double-buffered torus.
type World struct {
	cfg   Config
	rules *rule.Table

	cur    *core.ByteGrid
	nxt    *core.ByteGrid
	origin *core.ByteGrid
	seed   polyomino.Shape

	generation int
	population int
	tracker    *lifespan.Tracker
}

// New returns a World with the given dimensions and rules.
func New(w, h int, rules *rule.Table) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Rule = rules.Name()
	return newWorld(cfg, rules)
}

// NewWithConfig returns a World configured from cfg. Unknown rule names fall
// back to LeapLife.
func NewWithConfig(cfg Config) *World {
	rules, err := rule.ByName(cfg.Rule)
	if err != nil {
		rules = rule.LeapLife()
	}
	return newWorld(cfg, rules)
}

func newWorld(cfg Config, rules *rule.Table) *World {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	return &World{
		cfg:     cfg,
		rules:   rules,
		cur:     cur,
		nxt:     core.NewByteGrid(cur.W, cur.H),
		origin:  core.NewByteGrid(cur.W, cur.H),
		tracker: lifespan.NewTracker(cur.W * cur.H),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.rules.Name() }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cur.W, H: w.cur.H} }

// Cells exposes the current grid values.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Grid exposes the current generation.
func (w *World) Grid() *core.ByteGrid { return w.cur }

// Origin exposes the grid as it was at generation zero.
func (w *World) Origin() *core.ByteGrid { return w.origin }

// SeedShape returns the shape placed by the last Load.
func (w *World) SeedShape() polyomino.Shape { return w.seed }

// Rules returns the rule table in use.
func (w *World) Rules() *rule.Table { return w.rules }

// Generation returns the number of steps since the last Load.
func (w *World) Generation() int { return w.generation }

// Population returns the live cell count of the current generation.
func (w *World) Population() int { return w.population }

// Tracker exposes the running lifespan bookkeeping fed by Advance.
func (w *World) Tracker() *lifespan.Tracker { return w.tracker }

// Load clears the world and places s at the centre.
func (w *World) Load(s polyomino.Shape) {
	w.cur.Clear()
	w.nxt.Clear()
	Place(w.cur, s)
	w.origin.CopyFrom(w.cur)
	w.seed = s.Clone()
	w.generation = 0
	w.population = w.cur.Count()
	w.tracker.Reset()
}

// Advance steps one generation and returns the new population.
func (w *World) Advance() int {
	w.population = Step(w.cur, w.nxt, w.rules)
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++
	w.tracker.Observe(w.population)
	return w.population
}

// Step advances the simulation by one generation.
func (w *World) Step() { w.Advance() }

// Reset loads the configured seed. Random worlds draw their seed from a
// generator seeded with the given value.
func (w *World) Reset(s int64) {
	if w.cfg.Random {
		side := w.cfg.RandomSide
		w.Load(seed.Random(seed.NewFixedEntropy(s), side, side))
		return
	}
	strategy, err := polyomino.ParseStrategy(w.cfg.Strategy)
	if err != nil {
		strategy = polyomino.BoundaryGrowth
	}
	shapes := polyomino.NewGenerator(strategy).Generate(w.cfg.ShapeSize)
	if len(shapes) == 0 {
		w.Load(nil)
		return
	}
	w.Load(shapes[w.cfg.ShapeIndex%len(shapes)])
}

// Parameters reports the seed and progress for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	status := "running"
	if w.tracker.Settled() {
		status = "settled"
	}
	seedLabel := "random"
	if !w.cfg.Random {
		seedLabel = w.seed.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Seed",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", w.rules.Name()),
				core.IntParam("cells", "Cells", len(w.seed)),
				core.StringParam("shape", "Shape", seedLabel),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", w.generation),
				core.IntParam("population", "Population", w.population),
				core.IntParam("estimated", "Estimated", w.tracker.Estimated()),
				core.StringParam("status", "Status", status),
			},
		},
	}}
}

func init() {
	core.Register("leaplife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Rule = "life"
		return NewWithConfig(c)
	})
}
