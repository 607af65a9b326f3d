package enum

import (
	"github.com/pkg/errors"

	"github.com/lootsmuggler/logictools/logic"
)

// An Entry records every formula whose truth table is Table, in discovery
// order, and the subset of them with the fewest binary operators.
type Entry struct {
	Table logic.Table

	// MinOps is the smallest operator count seen for this table.
	MinOps int
	// Minimal holds every formula achieving MinOps, first discovered
	// first. There is no secondary tie-break.
	Minimal []logic.Formula
	// All holds every formula filed under this table, in discovery order.
	All []logic.Formula
}

// A Catalog maps truth tables to the formulas computing them. It is built by
// one pass of Ingest calls in generation order and read afterwards; entries
// are created lazily on the first sighting of a table and never removed.
type Catalog struct {
	n        int
	entries  map[uint32]*Entry
	order    []*Entry        // entries in first-discovery order
	formulas []logic.Formula // every ingested formula, in order
	seen     map[string]struct{}
}

// NewCatalog returns an empty catalog for truth tables over n variables.
func NewCatalog(n int) *Catalog {
	return &Catalog{
		n:       n,
		entries: make(map[uint32]*Entry),
		seen:    make(map[string]struct{}),
	}
}

// Ingest files f under its truth table. Callers must ingest formulas in
// non-decreasing operator-count order and must not ingest the same formula
// twice: a duplicate is a broken generator contract and is reported as an
// error rather than silently dropped.
func (c *Catalog) Ingest(f logic.Formula, t logic.Table) error {
	s := f.String()
	if _, ok := c.seen[s]; ok {
		return errors.Errorf("formula %q ingested twice", s)
	}
	c.seen[s] = struct{}{}
	c.formulas = append(c.formulas, f)

	e, ok := c.entries[t.Key()]
	if !ok {
		e = &Entry{Table: t}
		c.entries[t.Key()] = e
		c.order = append(c.order, e)
	}
	e.All = append(e.All, f)

	ops := f.BinOps()
	switch {
	case len(e.Minimal) == 0:
		e.MinOps = ops
		e.Minimal = []logic.Formula{f}
	case ops == e.MinOps:
		e.Minimal = append(e.Minimal, f)
	case ops < e.MinOps:
		// Unreachable under ordered ingestion, but the record must stay
		// coherent if a caller feeds sizes out of order.
		e.MinOps = ops
		e.Minimal = []logic.Formula{f}
	}
	return nil
}

// N returns the number of variables the catalog's tables range over.
func (c *Catalog) N() int { return c.n }

// Len returns the number of distinct truth tables discovered.
func (c *Catalog) Len() int { return len(c.order) }

// Formulas returns every ingested formula in generation order.
func (c *Catalog) Formulas() []logic.Formula { return c.formulas }

// Entries returns the catalog's entries in first-discovery order.
func (c *Catalog) Entries() []*Entry { return c.order }

// Lookup returns the entry for the given table, or nil if the run never
// produced a formula with that table.
func (c *Catalog) Lookup(t logic.Table) *Entry { return c.entries[t.Key()] }
