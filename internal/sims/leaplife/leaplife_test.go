package leaplife

import (
	"bytes"
	"testing"

	"leaplife/internal/core"
	"leaplife/internal/lifespan"
	"leaplife/internal/polyomino"
	"leaplife/internal/rule"
)

func TestEmptyGridStaysEmpty(t *testing.T) {
	for _, rules := range []*rule.Table{rule.Life(), rule.LeapLife()} {
		cur, nxt := core.NewByteGrid(32, 32), core.NewByteGrid(32, 32)
		for i := 0; i < 20; i++ {
			if pop := Step(cur, nxt, rules); pop != 0 {
				t.Fatalf("%s: generation %d has population %d", rules.Name(), i+1, pop)
			}
			cur, nxt = nxt, cur
		}
	}
}

func TestBlockAcrossWrapIsStable(t *testing.T) {
	cur, nxt := core.NewByteGrid(200, 200), core.NewByteGrid(200, 200)
	corners := [][2]int{{0, 0}, {199, 0}, {0, 199}, {199, 199}}
	for _, c := range corners {
		cur.Set(c[0], c[1], 1)
	}
	for i := 0; i < 10; i++ {
		if pop := Step(cur, nxt, rule.Life()); pop != 4 {
			t.Fatalf("generation %d: population %d, expected 4", i+1, pop)
		}
		cur, nxt = nxt, cur
		for _, c := range corners {
			if cur.Get(c[0], c[1]) != 1 {
				t.Fatalf("generation %d: corner (%d,%d) died", i+1, c[0], c[1])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	w := New(5, 5, rule.Life())
	w.Load(polyomino.Shape{{0, 0}, {1, 0}, {2, 0}})

	// A vertical bar of three occupies column 2, rows 1..3.
	expects := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	checkCells(t, w, expects, "initial")

	w.Step()
	expects = map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	checkCells(t, w, expects, "after first step")

	w.Step()
	expects = map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	checkCells(t, w, expects, "after second step")
}

func checkCells(t *testing.T, w *World, expects map[[2]int]bool, when string) {
	t.Helper()
	g := w.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Get(x, y) == 1
			if alive != expects[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", when, x, y, alive, !alive)
			}
		}
	}
}

func TestPlaceCentresShape(t *testing.T) {
	g := core.NewByteGrid(200, 200)
	tee := polyomino.Shape{{0, 0}, {0, 1}, {0, 2}, {1, 1}}
	Place(g, tee)
	want := [][2]int{{98, 99}, {99, 99}, {100, 99}, {99, 100}}
	for _, c := range want {
		if g.Get(c[0], c[1]) != 1 {
			t.Fatalf("expected live cell at column %d row %d", c[0], c[1])
		}
	}
	if g.Count() != len(tee) {
		t.Fatalf("placed %d cells, expected %d", g.Count(), len(tee))
	}
}

func TestPlaceSkipsOffGridCells(t *testing.T) {
	g := core.NewByteGrid(3, 3)
	Place(g, polyomino.Shape{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}})
	if got := g.Count(); got != 3 {
		t.Fatalf("expected only the 3 in-range cells, got %d", got)
	}
}

func TestSingleCellDiesImmediately(t *testing.T) {
	w := New(200, 200, rule.LeapLife())
	w.Load(polyomino.Shape{{0, 0}})
	if pop := w.Advance(); pop != 0 {
		t.Fatalf("population after one generation = %d, expected 0", pop)
	}

	w.Load(polyomino.Shape{{0, 0}})
	res := lifespan.Estimate(w, lifespan.Config{Cells: 200 * 200})
	if res.Estimated != 0 || res.Lifespan != 0 {
		t.Fatalf("single cell estimate %+v, expected 0", res)
	}
	if res.Generations != lifespan.Threshold+1 {
		t.Fatalf("single cell ran %d generations, expected %d", res.Generations, lifespan.Threshold+1)
	}
}

func TestTetrominoLifespans(t *testing.T) {
	shapes := polyomino.NewGenerator(polyomino.BoundaryGrowth).Generate(4)
	// I, L, T, O, S in canonical order.
	want := []int{0, 1, 9, 0, 0}
	if len(shapes) != len(want) {
		t.Fatalf("expected %d tetrominoes, got %d", len(want), len(shapes))
	}
	w := New(200, 200, rule.LeapLife())
	est := lifespan.NewEstimator(lifespan.Config{Cells: 200 * 200})
	for i, s := range shapes {
		w.Load(s)
		res := est.Run(w)
		if res.Lifespan != want[i] {
			t.Fatalf("tetromino %v: lifespan %d, expected %d", s, res.Lifespan, want[i])
		}
		if w.Tracker().Lifespan() != res.Lifespan {
			t.Fatalf("world tracker disagrees: %d vs %d", w.Tracker().Lifespan(), res.Lifespan)
		}
	}
}

func TestLoadKeepsOrigin(t *testing.T) {
	w := New(200, 200, rule.LeapLife())
	w.Load(polyomino.Shape{{0, 0}, {0, 1}, {0, 2}, {1, 1}})
	for i := 0; i < 5; i++ {
		w.Step()
	}
	if w.Generation() != 5 {
		t.Fatalf("Generation = %d, expected 5", w.Generation())
	}
	if w.Origin().Count() != 4 {
		t.Fatalf("origin should still hold the seed, has %d cells", w.Origin().Count())
	}
}

func TestRender(t *testing.T) {
	g := core.NewByteGrid(200, 200)
	Place(g, polyomino.Shape{{0, 0}, {0, 1}, {0, 2}, {1, 1}})
	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := "(2x3):\n" +
		".....\n" +
		".ooo.\n" +
		"..o..\n" +
		".....\n"
	if buf.String() != want {
		t.Fatalf("Render =\n%s\nexpected\n%s", buf.String(), want)
	}
}

func TestRenderClipsAtEdge(t *testing.T) {
	g := core.NewByteGrid(4, 4)
	g.Set(0, 0, 1)
	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatal(err)
	}
	if want := "(0x0):\no.\n..\n"; buf.String() != want {
		t.Fatalf("Render = %q, expected %q", buf.String(), want)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, core.NewByteGrid(4, 4)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(0x0):\n" {
		t.Fatalf("Render = %q", buf.String())
	}
}

func TestRegistryAndReset(t *testing.T) {
	for _, name := range []string{"leaplife", "life"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim := factory(map[string]string{"w": "64", "h": "48"})
		if sim.Name() != name {
			t.Fatalf("factory %q built %q", name, sim.Name())
		}
		if s := sim.Size(); s.W != 64 || s.H != 48 {
			t.Fatalf("size %+v, expected 64x48", s)
		}
		sim.Reset(1)
		w := sim.(*World)
		if got := w.SeedShape().String(); got != "(0,0) (0,1) (0,2) (1,1)" {
			t.Fatalf("default seed = %s, expected the T-tetromino", got)
		}
	}
}

func TestRandomResetReproducible(t *testing.T) {
	a := NewWithConfig(FromMap(map[string]string{"random": "true", "w": "50", "h": "50"}))
	b := NewWithConfig(FromMap(map[string]string{"random": "true", "w": "50", "h": "50"}))
	a.Reset(9)
	b.Reset(9)
	if a.SeedShape().String() != b.SeedShape().String() {
		t.Fatal("equal reset seeds must draw equal random seeds")
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "rule": "highlife", "size": "x", "strategy": "tip"})
	def := DefaultConfig()
	if c.Width != def.Width || c.Rule != def.Rule || c.ShapeSize != def.ShapeSize {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	if c.Strategy != "tip" {
		t.Fatalf("strategy = %q, expected tip", c.Strategy)
	}
}

func TestParametersSnapshot(t *testing.T) {
	w := New(20, 20, rule.LeapLife())
	w.Load(polyomino.Shape{{0, 0}})
	w.Step()
	values := map[string]string{}
	for _, g := range w.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["generation"] != "1" || values["population"] != "0" || values["rule"] != "leaplife" {
		t.Fatalf("unexpected snapshot %v", values)
	}
}
