// Package lifespan estimates how long a pattern takes to settle, judged by
// when its population count stops taking fresh values.
//
// A population value counts as fresh when it has never been seen or was last
// seen at least Threshold generations earlier. The estimate is the last
// generation that produced a fresh value; the run ends once more than
// Threshold generations pass without one. Two different configurations with
// the same population are indistinguishable here, so the result is a
// heuristic and not a cycle proof.
package lifespan

// Threshold is the generation gap that separates a recurrence from a fresh
// population value.
const Threshold = 50

// NotSettled is returned when a run stops before the gap condition holds.
const NotSettled = -1

// Stepper advances a simulation by one generation and returns the new
// population.
type Stepper interface {
	Advance() int
}

// Tracker holds the recurrence bookkeeping for a single run.
type Tracker struct {
	// lastSeen[p] is the generation count right after population p was last
	// observed; zero means never.
	lastSeen   []int
	estimated  int
	generation int
}

// NewTracker sizes the bookkeeping for populations 0..cells.
func NewTracker(cells int) *Tracker {
	if cells < 0 {
		cells = 0
	}
	return &Tracker{lastSeen: make([]int, cells+1)}
}

// Reset clears the tracker for a new run.
func (t *Tracker) Reset() {
	clear(t.lastSeen)
	t.estimated = 0
	t.generation = 0
}

// Observe records the population produced by the next generation and
// reports whether the run should continue.
func (t *Tracker) Observe(population int) bool {
	if population < 0 {
		population = 0
	}
	if population >= len(t.lastSeen) {
		grown := make([]int, population+1)
		copy(grown, t.lastSeen)
		t.lastSeen = grown
	}
	last := t.lastSeen[population]
	if last == 0 || t.generation-last >= Threshold {
		t.estimated = t.generation
	}
	t.generation++
	t.lastSeen[population] = t.generation
	return !t.Settled()
}

// Estimated returns the last generation that produced a fresh population.
func (t *Tracker) Estimated() int { return t.estimated }

// Generation returns the number of observed generations.
func (t *Tracker) Generation() int { return t.generation }

// Settled reports whether more than Threshold generations have passed since
// the last fresh population.
func (t *Tracker) Settled() bool { return t.generation-t.estimated > Threshold }

// Lifespan returns Estimated once settled and NotSettled before.
func (t *Tracker) Lifespan() int {
	if t.Settled() {
		return t.estimated
	}
	return NotSettled
}

// Config bounds an estimation run.
type Config struct {
	// Cells is the grid cell count, the largest possible population.
	Cells int
	// MaxGenerations stops a run that has not settled; 0 means no cap.
	MaxGenerations int
}

// Result describes a finished run.
type Result struct {
	Lifespan    int
	Estimated   int
	Generations int
	Capped      bool
}

// Estimator runs estimations, reusing its tracker between runs.
type Estimator struct {
	cfg     Config
	tracker *Tracker
}

// NewEstimator returns an Estimator for the given bounds.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: cfg, tracker: NewTracker(cfg.Cells)}
}

// Run steps s until the population settles or the generation cap is hit.
func (e *Estimator) Run(s Stepper) Result {
	t := e.tracker
	t.Reset()
	for t.Observe(s.Advance()) {
		if e.cfg.MaxGenerations > 0 && t.Generation() >= e.cfg.MaxGenerations {
			break
		}
	}
	return Result{
		Lifespan:    t.Lifespan(),
		Estimated:   t.Estimated(),
		Generations: t.Generation(),
		Capped:      !t.Settled(),
	}
}

// Estimate runs a single estimation with a fresh tracker.
func Estimate(s Stepper, cfg Config) Result {
	return NewEstimator(cfg).Run(s)
}
