package survey

import (
	"flag"

	"leaplife/internal/polyomino"
)

// Config holds the parameters for both survey programs.
type Config struct {
	MinSize  int
	MaxSize  int
	Strategy string

	Rule     string
	GridSize int

	// OutputMin is the estimate at which the seed is printed.
	OutputMin int
	// MaxGenerations caps each run; 0 leaves runs unbounded.
	MaxGenerations int

	// Samples limits the random survey; 0 draws forever.
	Samples int
	// Seed makes random draws reproducible; 0 uses system entropy.
	Seed int64
	Side int

	Out string
}

// DefaultConfig returns the polyomino survey configuration.
func DefaultConfig() Config {
	return Config{
		MinSize:   1,
		MaxSize:   12,
		Strategy:  polyomino.BoundaryGrowth.String(),
		Rule:      "leaplife",
		GridSize:  200,
		OutputMin: 300,
		Side:      10,
		Out:       "out.txt",
	}
}

// RandomConfig returns the random survey configuration.
func RandomConfig() Config {
	c := DefaultConfig()
	c.OutputMin = 500
	c.MaxGenerations = 100000
	c.Out = "out4.txt"
	return c
}

// Bind attaches the shared configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule table: leaplife or life")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "edge length of the toroidal grid")
	fs.IntVar(&c.OutputMin, "print-min", c.OutputMin, "print the seed when its estimate reaches this value")
	fs.IntVar(&c.MaxGenerations, "cap", c.MaxGenerations, "generation cap per seed (0 = none)")
	fs.StringVar(&c.Out, "out", c.Out, "output file (- for stdout)")
}

// BindPolyomino attaches the enumeration flags.
func (c *Config) BindPolyomino(fs *flag.FlagSet) {
	c.Bind(fs)
	fs.IntVar(&c.MinSize, "min", c.MinSize, "smallest polyomino size")
	fs.IntVar(&c.MaxSize, "max", c.MaxSize, "largest polyomino size")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "growth strategy: boundary or tip")
}

// BindRandom attaches the random sampling flags.
func (c *Config) BindRandom(fs *flag.FlagSet) {
	c.Bind(fs)
	fs.IntVar(&c.Samples, "samples", c.Samples, "number of draws (0 = forever)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fixed seed for reproducible draws (0 = system entropy)")
	fs.IntVar(&c.Side, "side", c.Side, "edge length of each random draw")
}
