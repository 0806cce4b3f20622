package leaplife

import (
	"fmt"
	"io"
	"strings"

	"leaplife/internal/core"
)

// Render writes the live region of g as text: a "(<rows>x<cols>):" header
// followed by rows of '.' and 'o'. The region is the bounding box of live
// cells grown by one cell on each side and clipped to the grid.
func Render(out io.Writer, g *core.ByteGrid) error {
	cells := g.Cells()
	minRow, maxRow := g.H, -1
	minCol, maxCol := g.W, -1
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if cells[g.Index(x, y)] == 0 {
				continue
			}
			minRow, maxRow = min(minRow, y), max(maxRow, y)
			minCol, maxCol = min(minCol, x), max(maxCol, x)
		}
	}
	if maxRow < 0 {
		_, err := io.WriteString(out, "(0x0):\n")
		return err
	}

	minRow, maxRow = max(0, minRow-1), min(g.H-1, maxRow+1)
	minCol, maxCol = max(0, minCol-1), min(g.W-1, maxCol+1)

	var b strings.Builder
	fmt.Fprintf(&b, "(%dx%d):\n", maxRow-minRow-1, maxCol-minCol-1)
	for y := minRow; y <= maxRow; y++ {
		for x := minCol; x <= maxCol; x++ {
			if cells[g.Index(x, y)] != 0 {
				b.WriteByte('o')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(out, b.String())
	return err
}
