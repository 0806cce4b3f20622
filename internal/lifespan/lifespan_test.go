package lifespan

import "testing"

// sequence replays fixed populations, then repeats its cycle forever.
type sequence struct {
	prefix []int
	cycle  []int
	i      int
}

func (s *sequence) Advance() int {
	defer func() { s.i++ }()
	if s.i < len(s.prefix) {
		return s.prefix[s.i]
	}
	return s.cycle[(s.i-len(s.prefix))%len(s.cycle)]
}

func distinct(n, base int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = base + i
	}
	return out
}

func TestSteadyPopulationSettlesAtOnset(t *testing.T) {
	const g0 = 20
	seq := &sequence{prefix: distinct(g0, 100), cycle: []int{7}}
	tr := NewTracker(1000)

	for tr.Observe(seq.Advance()) {
		if tr.Generation() > g0 && tr.Estimated() != g0 {
			t.Fatalf("estimate moved to %d after onset %d", tr.Estimated(), g0)
		}
		if got := tr.Lifespan(); got != NotSettled {
			t.Fatalf("generation %d: expected sentinel before the gap closes, got %d", tr.Generation(), got)
		}
	}
	if got := tr.Lifespan(); got != g0 {
		t.Fatalf("Lifespan = %d, expected %d", got, g0)
	}
	if got := tr.Generation(); got != g0+Threshold+1 {
		t.Fatalf("stopped after %d generations, expected %d", got, g0+Threshold+1)
	}
}

func TestCycleSettlesAtLastFirstSighting(t *testing.T) {
	const g0, k = 30, 3
	seq := &sequence{prefix: distinct(g0, 500), cycle: []int{1, 2, 3}}
	res := Estimate(seq, Config{Cells: 1000})
	if res.Lifespan != g0+k-1 || res.Capped {
		t.Fatalf("unexpected result %+v, expected lifespan %d", res, g0+k-1)
	}
}

func TestLongGapRecurrenceCountsAsFresh(t *testing.T) {
	prefix := append([]int{5}, distinct(60, 1000)...)
	seq := &sequence{prefix: prefix, cycle: []int{5}}
	res := Estimate(seq, Config{Cells: 2000})
	if res.Lifespan != 61 {
		t.Fatalf("Lifespan = %d, expected the recurrence at generation 61", res.Lifespan)
	}
}

func TestGenerationCap(t *testing.T) {
	seq := &sequence{prefix: distinct(1000, 1), cycle: []int{0}}
	res := Estimate(seq, Config{Cells: 2000, MaxGenerations: 100})
	want := Result{Lifespan: NotSettled, Estimated: 99, Generations: 100, Capped: true}
	if res != want {
		t.Fatalf("Estimate = %+v, expected %+v", res, want)
	}
}

func TestEstimatorReuse(t *testing.T) {
	est := NewEstimator(Config{Cells: 10})
	first := est.Run(&sequence{cycle: []int{0}})
	second := est.Run(&sequence{cycle: []int{0}})
	if first != second || first.Lifespan != 0 {
		t.Fatalf("runs differ after reset: %+v vs %+v", first, second)
	}
}

func TestTrackerGrowsForLargePopulations(t *testing.T) {
	tr := NewTracker(4)
	tr.Observe(9)
	if tr.Estimated() != 0 || tr.Generation() != 1 {
		t.Fatalf("unexpected state after out-of-range population: est %d gen %d", tr.Estimated(), tr.Generation())
	}
}
