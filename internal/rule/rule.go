// Package rule builds lookup tables mapping a 3x3 neighbourhood to the next
// state of its centre cell.
//
// A neighbourhood code packs the window row by row, left to right, most
// significant bit first: bit 8 is the top-left cell, bit 4 the centre and
// bit 0 the bottom-right cell.
package rule

import (
	"fmt"
	"math/bits"
)

// Size is the number of distinct neighbourhood codes.
const Size = 512

const centreBit = 4

// Table maps every neighbourhood code to 0 (dead) or 1 (alive).
type Table struct {
	name string
	next [Size]uint8
}

// Override forces the outcome for a single neighbourhood code.
type Override struct {
	Code  int
	Alive bool
}

// leapOverrides are applied on top of B3/S23 to form LeapLife.
var leapOverrides = []Override{
	{0x101, true},
	{0x044, true},
	{0x191, false},
	{0x05C, false},
	{0x113, false},
	{0x074, false},
	{0x0D4, false},
	{0x131, false},
	{0x056, false},
	{0x119, false},
}

// Life returns the standard B3/S23 table.
func Life() *Table {
	t := &Table{name: "life"}
	for code := 0; code < Size; code++ {
		n := Neighbours(code)
		if Centre(code) {
			t.next[code] = bit(n == 2 || n == 3)
		} else {
			t.next[code] = bit(n == 3)
		}
	}
	return t
}

// LeapLife returns B3/S23 with the LeapLife overrides applied.
func LeapLife() *Table {
	t := Life()
	t.name = "leaplife"
	for _, o := range leapOverrides {
		t.next[o.Code] = bit(o.Alive)
	}
	return t
}

// Overrides returns a copy of the LeapLife override list.
func Overrides() []Override {
	return append([]Override(nil), leapOverrides...)
}

// ByName resolves "life" or "leaplife".
func ByName(name string) (*Table, error) {
	switch name {
	case "life":
		return Life(), nil
	case "leaplife", "":
		return LeapLife(), nil
	}
	return nil, fmt.Errorf("unknown rule %q", name)
}

// Name identifies the table.
func (t *Table) Name() string { return t.name }

// Next returns the state of the centre cell after one generation.
func (t *Table) Next(code int) uint8 { return t.next[code&(Size-1)] }

// Centre reports whether the centre bit of code is set.
func Centre(code int) bool { return code>>centreBit&1 == 1 }

// Neighbours counts the live cells around the centre.
func Neighbours(code int) int {
	return bits.OnesCount16(uint16(code&(Size-1))) - int(code>>centreBit&1)
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
