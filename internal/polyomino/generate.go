package polyomino

import (
	"fmt"
	"slices"
)

// Strategy selects how the depth-first search grows a shape.
type Strategy int

const (
	// BoundaryGrowth branches from every cell of the shape and is exhaustive.
	BoundaryGrowth Strategy = iota
	// TipGrowth only branches from the largest cell of the shape. It misses
	// shapes from size 5 upwards and exists to reproduce earlier surveys.
	TipGrowth
)

func (s Strategy) String() string {
	switch s {
	case BoundaryGrowth:
		return "boundary"
	case TipGrowth:
		return "tip"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy resolves a strategy by name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "boundary", "":
		return BoundaryGrowth, nil
	case "tip":
		return TipGrowth, nil
	}
	return 0, fmt.Errorf("unknown growth strategy %q", name)
}

// Generator enumerates free polyominoes.
type Generator struct {
	Strategy Strategy

	n        int
	found    map[string]Shape
	expanded map[string]struct{}
}

// NewGenerator returns a Generator using the given strategy.
func NewGenerator(s Strategy) *Generator {
	return &Generator{Strategy: s}
}

// Generate returns one canonical representative of every free polyomino of
// n cells the strategy can reach, sorted by Compare.
func (g *Generator) Generate(n int) []Shape {
	if n <= 0 {
		return nil
	}
	g.n = n
	g.found = make(map[string]Shape)
	g.expanded = make(map[string]struct{})

	origin := Cell{0, 0}
	switch g.Strategy {
	case TipGrowth:
		g.growTip(Shape{}, origin)
	default:
		g.growBoundary(Shape{origin})
	}

	out := make([]Shape, 0, len(g.found))
	for _, s := range g.found {
		out = append(out, s)
	}
	slices.SortFunc(out, Compare)
	g.found, g.expanded = nil, nil
	return out
}

func (g *Generator) record(s Shape) {
	c := Canonical(s)
	k := c.Key()
	if _, ok := g.found[k]; !ok {
		g.found[k] = c
	}
}

// extend returns a fresh normalized shape holding cur plus c, leaving cur
// untouched so sibling branches keep their own state.
func extend(cur Shape, c Cell) Shape {
	cells := make([]Cell, len(cur), len(cur)+1)
	copy(cells, cur)
	return Normalize(append(cells, c))
}

func (g *Generator) growTip(cur Shape, next Cell) {
	if cur.Contains(next) {
		return
	}
	cur = extend(cur, next)
	if len(cur) != g.n {
		last := cur[len(cur)-1]
		for _, d := range steps {
			nb := Cell{last.X + d.X, last.Y + d.Y}
			if !cur.Contains(nb) {
				g.growTip(cur, nb)
			}
		}
		return
	}
	g.record(cur)
}

func (g *Generator) growBoundary(cur Shape) {
	if len(cur) == g.n {
		g.record(cur)
		return
	}
	// Every symmetry of an expanded shape yields the same children up to
	// symmetry, so one expansion per free shape is enough.
	k := Canonical(cur).Key()
	if _, ok := g.expanded[k]; ok {
		return
	}
	g.expanded[k] = struct{}{}

	for _, c := range cur {
		for _, d := range steps {
			nb := Cell{c.X + d.X, c.Y + d.Y}
			if !cur.Contains(nb) {
				g.growBoundary(extend(cur, nb))
			}
		}
	}
}
