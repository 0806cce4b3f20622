package leaplife

import (
	"strconv"

	"leaplife/internal/polyomino"
	"leaplife/internal/rule"
)

// Config controls the world dimensions and which seed Reset places.
type Config struct {
	Width  int
	Height int
	Rule   string

	// ShapeSize and ShapeIndex pick a polyomino from the enumeration.
	ShapeSize  int
	ShapeIndex int
	Strategy   string

	// Random replaces the polyomino with a RandomSide x RandomSide draw.
	Random     bool
	RandomSide int
}

// DefaultConfig returns the standard configuration: the T-tetromino on a
// 200x200 LeapLife torus.
func DefaultConfig() Config {
	return Config{
		Width:      200,
		Height:     200,
		Rule:       "leaplife",
		ShapeSize:  4,
		ShapeIndex: 2,
		Strategy:   polyomino.BoundaryGrowth.String(),
		RandomSide: 10,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := rule.ByName(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ShapeSize = parsed
		}
	}
	if v, ok := cfg["index"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ShapeIndex = parsed
		}
	}
	if v, ok := cfg["strategy"]; ok {
		if _, err := polyomino.ParseStrategy(v); err == nil {
			c.Strategy = v
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	if v, ok := cfg["side"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RandomSide = parsed
		}
	}
	return c
}
