// Command chrysalis enumerates free polyominoes of each size and reports how
// long every one takes to settle on a LeapLife torus.
package main

import (
	"flag"
	"log"

	"leaplife/internal/survey"
)

func main() {
	cfg := survey.DefaultConfig()
	cfg.BindPolyomino(flag.CommandLine)
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
	log.Printf("surveying sizes %d..%d (%s growth, %s rule) into %s", cfg.MinSize, cfg.MaxSize, cfg.Strategy, cfg.Rule, cfg.Out)
	if err := s.Polyominoes(); err != nil {
		log.Fatal(err)
	}
}
