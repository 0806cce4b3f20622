// Package survey runs lifespan estimates over families of seeds and writes
// a plain-text report.
package survey

import (
	"fmt"
	"io"
	"log"

	"leaplife/internal/lifespan"
	"leaplife/internal/polyomino"
	"leaplife/internal/rule"
	"leaplife/internal/seed"
	"leaplife/internal/sims/leaplife"
)

// Survey writes estimates for seeds to an output stream.
type Survey struct {
	cfg   Config
	out   io.Writer
	log   *log.Logger
	world *leaplife.World
	est   *lifespan.Estimator
}

// New validates cfg and prepares a survey writing to out.
func New(out io.Writer, cfg Config) (*Survey, error) {
	rules, err := rule.ByName(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", cfg.GridSize)
	}
	cells := cfg.GridSize * cfg.GridSize
	return &Survey{
		cfg:   cfg,
		out:   out,
		log:   log.Default(),
		world: leaplife.New(cfg.GridSize, cfg.GridSize, rules),
		est: lifespan.NewEstimator(lifespan.Config{
			Cells:          cells,
			MaxGenerations: cfg.MaxGenerations,
		}),
	}, nil
}

// SetLogger redirects progress and audit messages.
func (s *Survey) SetLogger(l *log.Logger) { s.log = l }

// Polyominoes enumerates every size in [MinSize, MaxSize] and reports one
// estimate per shape. Sizes whose count disagrees with the reference are
// logged as incomplete.
func (s *Survey) Polyominoes() error {
	strategy, err := polyomino.ParseStrategy(s.cfg.Strategy)
	if err != nil {
		return err
	}
	gen := polyomino.NewGenerator(strategy)
	for n := s.cfg.MinSize; n <= s.cfg.MaxSize; n++ {
		shapes := gen.Generate(n)
		if err := polyomino.Audit(n, shapes); err != nil {
			s.log.Printf("warning: %s growth is incomplete: %v", strategy, err)
		}
		s.log.Printf("size %d: %d shapes", n, len(shapes))
		if _, err := fmt.Fprintf(s.out, "Found %d free polyominoes of size %d\n", len(shapes), n); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		for _, shape := range shapes {
			res, err := s.run(shape)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(s.out, "Estimated lifespan: %d\n", res.Lifespan); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
	return nil
}

// Random draws Side x Side seeds from e and reports one estimate per draw.
// With Samples == 0 it never returns unless writing fails.
func (s *Survey) Random(e seed.Entropy) error {
	for k := 1; s.cfg.Samples == 0 || k <= s.cfg.Samples; k++ {
		shape := seed.Random(e, s.cfg.Side, s.cfg.Side)
		res, err := s.run(shape)
		if err != nil {
			return err
		}
		if res.Capped {
			s.log.Printf("sample %d hit the %d generation cap", k, s.cfg.MaxGenerations)
		}
		if _, err := fmt.Fprintf(s.out, "Sample %d lifespan: %d\n\n", k, res.Lifespan); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

func (s *Survey) run(shape polyomino.Shape) (lifespan.Result, error) {
	s.world.Load(shape)
	res := s.est.Run(s.world)
	if res.Estimated >= s.cfg.OutputMin {
		if err := leaplife.Render(s.out, s.world.Origin()); err != nil {
			return res, fmt.Errorf("write seed: %w", err)
		}
	}
	return res, nil
}
