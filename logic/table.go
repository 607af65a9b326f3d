package logic

import "strings"

// A Table is the truth table of a formula over n variables: a bit vector of
// length 2^n where bit a holds the formula's output under assignment a.
// Assignments are ordered by their binary value, variable v at bit v, so the
// tables of any two formulas over the same n are directly comparable.
//
// With n at most 5 the whole table fits in a uint32, the same packing the
// table uses as its map key.
type Table struct {
	bits uint32
	n    int
}

// TableOf evaluates f under all 2^n assignments and returns its truth table.
func TableOf(f Formula, n int) Table {
	t := Table{n: n}
	for a := uint32(0); a < 1<<uint(n); a++ {
		if f.Eval(a) {
			t.bits |= 1 << a
		}
	}
	return t
}

// MakeTable builds a table directly from its packed bits.
func MakeTable(bits uint32, n int) Table {
	if n < 5 {
		bits &= 1<<(1<<uint(n)) - 1
	}
	return Table{bits: bits, n: n}
}

// N returns the number of variables the table ranges over.
func (t Table) N() int { return t.n }

// Len returns the number of rows, 2^n.
func (t Table) Len() int { return 1 << uint(t.n) }

// Bit returns the formula output under assignment a.
func (t Table) Bit(a uint32) bool { return t.bits&(1<<a) != 0 }

// Key returns the packed bit vector, usable as a map key among tables of the
// same n.
func (t Table) Key() uint32 { return t.bits }

// String renders the table in assignment order, e.g. "[0 1 0 1]".
func (t Table) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for a := 0; a < t.Len(); a++ {
		if a > 0 {
			sb.WriteByte(' ')
		}
		if t.Bit(uint32(a)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
