// Command chrysalis-random draws random 10x10 seeds and reports how long
// each takes to settle. By default it runs until interrupted.
package main

import (
	"flag"
	"log"

	"leaplife/internal/seed"
	"leaplife/internal/survey"
)

func main() {
	cfg := survey.RandomConfig()
	cfg.BindRandom(flag.CommandLine)
	flag.Parse()

	out, err := survey.OpenOutput(cfg.Out)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	s, err := survey.New(out, cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var entropy seed.Entropy = seed.NewSystemEntropy()
	if cfg.Seed != 0 {
		entropy = seed.NewFixedEntropy(cfg.Seed)
	}
	log.Printf("sampling %dx%d seeds (%s rule, cap %d) into %s", cfg.Side, cfg.Side, cfg.Rule, cfg.MaxGenerations, cfg.Out)
	if err := s.Random(entropy); err != nil {
		log.Fatal(err)
	}
}
