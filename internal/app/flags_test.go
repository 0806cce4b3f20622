package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "life", "-size", "5", "-index", "7", "-random"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "life" || cfg.Size != 5 || cfg.Index != 7 || !cfg.Random {
		t.Fatalf("unexpected config %+v", cfg)
	}
	opts := cfg.SimOptions()
	if opts["size"] != "5" || opts["index"] != "7" || opts["random"] != "true" || opts["strategy"] != "boundary" {
		t.Fatalf("unexpected options %v", opts)
	}
}
