package polyomino

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// Cell is a grid coordinate. Cells order by X, then Y.
type Cell struct {
	X, Y int
}

// Less reports whether c sorts before o.
func (c Cell) Less(o Cell) bool {
	return c.X < o.X || (c.X == o.X && c.Y < o.Y)
}

func compareCells(a, b Cell) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// steps lists the four orthogonal neighbour offsets.
var steps = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Shape is a normalized set of cells: translated so the minimum X and Y are
// zero, sorted, without duplicates.
type Shape []Cell

// Normalize translates cells to the origin, sorts them and drops duplicates.
// The slice is modified in place and returned as a Shape.
func Normalize(cells []Cell) Shape {
	if len(cells) == 0 {
		return Shape{}
	}
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	for i := range cells {
		cells[i].X -= minX
		cells[i].Y -= minY
	}
	slices.SortFunc(cells, compareCells)
	return Shape(slices.Compact(cells))
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// Contains reports whether c is one of the shape's cells.
func (s Shape) Contains(c Cell) bool {
	_, ok := slices.BinarySearchFunc(s, c, compareCells)
	return ok
}

// Bounds returns the inclusive bounding box of the shape.
func (s Shape) Bounds() (minX, minY, maxX, maxY int) {
	if len(s) == 0 {
		return 0, 0, -1, -1
	}
	minX, minY = s[0].X, s[0].Y
	maxX, maxY = minX, minY
	for _, c := range s[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// Connected reports whether every cell is reachable from the first through
// orthogonal steps. The empty shape counts as connected.
func (s Shape) Connected() bool {
	if len(s) == 0 {
		return true
	}
	seen := map[Cell]bool{s[0]: true}
	queue := []Cell{s[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			nb := Cell{c.X + d.X, c.Y + d.Y}
			if !seen[nb] && s.Contains(nb) {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(s)
}

// Compare orders shapes lexicographically by their cell sequences; a proper
// prefix sorts first.
func Compare(a, b Shape) int {
	return slices.CompareFunc(a, b, compareCells)
}

// Rotate turns the shape a quarter turn, mapping (x, y) to (y, -x).
func Rotate(s Shape) Shape {
	out := make([]Cell, len(s))
	for i, c := range s {
		out[i] = Cell{c.Y, -c.X}
	}
	return Normalize(out)
}

// Reflect mirrors the shape, mapping (x, y) to (-x, y).
func Reflect(s Shape) Shape {
	out := make([]Cell, len(s))
	for i, c := range s {
		out[i] = Cell{-c.X, c.Y}
	}
	return Normalize(out)
}

// Transforms returns the four rotations of s, each followed by its mirror
// image.
func Transforms(s Shape) []Shape {
	out := make([]Shape, 0, 8)
	cur := s
	for i := 0; i < 4; i++ {
		out = append(out, cur, Reflect(cur))
		cur = Rotate(cur)
	}
	return out
}

// Canonical returns the smallest of the eight symmetry transforms of s.
func Canonical(s Shape) Shape {
	all := Transforms(s)
	best := all[0]
	for _, t := range all[1:] {
		if Compare(t, best) < 0 {
			best = t
		}
	}
	return best
}

// Key serializes a normalized shape. For shapes of equal length, byte order
// of keys matches Compare.
func (s Shape) Key() string {
	buf := make([]byte, 0, 4*len(s))
	for _, c := range s {
		buf = binary.BigEndian.AppendUint16(buf, uint16(c.X))
		buf = binary.BigEndian.AppendUint16(buf, uint16(c.Y))
	}
	return string(buf)
}

func (s Shape) String() string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(')')
	}
	return b.String()
}
