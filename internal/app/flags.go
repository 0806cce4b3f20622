package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Size     int
	Index    int
	Strategy string
	Random   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "leaplife", Scale: 3, TPS: 15, Seed: 42, Size: 4, Index: 2, Strategy: "boundary"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "rule to run: leaplife or life")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random draws")
	fs.IntVar(&c.Size, "size", c.Size, "polyomino size")
	fs.IntVar(&c.Index, "index", c.Index, "polyomino index within its size")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "growth strategy: boundary or tip")
	fs.BoolVar(&c.Random, "random", c.Random, "draw a random 10x10 seed instead of a polyomino")
}

// SimOptions converts the seed selection into factory options.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":     strconv.Itoa(c.Size),
		"index":    strconv.Itoa(c.Index),
		"strategy": c.Strategy,
		"random":   strconv.FormatBool(c.Random),
	}
}
