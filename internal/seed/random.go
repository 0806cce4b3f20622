// Package seed draws random seed patterns from a linear-feedback bit stream.
package seed

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"leaplife/internal/core"
	"leaplife/internal/polyomino"
)

// DefaultSide is the edge length of a random draw.
const DefaultSide = 10

// taps is the feedback polynomial of the 32-bit Galois LFSR.
const taps uint32 = 0xD0000001

// Entropy supplies the values that seed and re-mix the bit stream.
type Entropy interface {
	// Seed returns a fresh starting value.
	Seed() uint32
	// Ticks returns a fast-moving counter mixed in after every row.
	Ticks() uint32
}

// SystemEntropy mixes wall-clock time, the process id and the CPU time this
// process has consumed. Draws are not reproducible.
type SystemEntropy struct {
	proc *process.Process
	pid  uint32
}

// NewSystemEntropy returns entropy bound to the current process. When the
// process cannot be inspected, CPU ticks read as zero.
func NewSystemEntropy() *SystemEntropy {
	pid := os.Getpid()
	e := &SystemEntropy{pid: uint32(pid)}
	if p, err := process.NewProcess(int32(pid)); err == nil {
		e.proc = p
	}
	return e
}

// Seed combines microseconds since the epoch, the pid and CPU ticks.
func (e *SystemEntropy) Seed() uint32 {
	return uint32(time.Now().UnixMicro()) ^ e.pid ^ e.Ticks()
}

// Ticks returns the process CPU time in microseconds, truncated to 32 bits.
func (e *SystemEntropy) Ticks() uint32 {
	if e.proc == nil {
		return 0
	}
	times, err := e.proc.Times()
	if err != nil {
		return 0
	}
	return uint32(int64((times.User + times.System) * 1e6))
}

// FixedEntropy replays a deterministic stream, for reproducible draws.
type FixedEntropy struct {
	rng *core.RNG
}

// NewFixedEntropy returns entropy derived from seed.
func NewFixedEntropy(seed int64) *FixedEntropy {
	return &FixedEntropy{rng: core.NewRNG(seed)}
}

// Seed returns the next value of the stream.
func (e *FixedEntropy) Seed() uint32 { return e.rng.Uint32() }

// Ticks returns the next value of the stream.
func (e *FixedEntropy) Ticks() uint32 { return e.rng.Uint32() }

// Random fills a rows x cols window from the LFSR and returns the live cells
// as a normalized shape. Row i of the window becomes X = i. The result need
// not be connected and may be empty.
func Random(e Entropy, rows, cols int) polyomino.Shape {
	s := e.Seed()
	var cells []polyomino.Cell
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s = s>>1 ^ (-(s & 1) & taps)
			if s>>16&1 == 1 {
				cells = append(cells, polyomino.Cell{X: i, Y: j})
			}
		}
		s ^= e.Ticks() + e.Seed()
	}
	return polyomino.Normalize(cells)
}
