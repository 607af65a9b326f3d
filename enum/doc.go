// Package enum enumerates boolean formulas and catalogs them by truth table.
//
// A run generates every syntactically distinct formula over n variables in
// order of increasing binary-operator count, up to a size ceiling, computes
// each formula's truth table, and files it in a catalog keyed by table. The
// catalog keeps, per table, every formula seen and the smallest ones.
//
// Because generation never emits a formula smaller than any already emitted,
// the first formula filed under a table is guaranteed minimal (or tied for
// minimal) among everything the run will ever produce for that table, and a
// single ingestion pass suffices.
//
// Enumeration is exhaustive and the formula pool of every size class stays
// resident as building material for larger classes, so memory grows
// multiplicatively with the ceiling. Runs with n >= 4 cannot come close to
// covering all 2^(2^n) tables in reasonable time or space; they terminate at
// the ceiling with a partial catalog, which is a normal outcome, not an
// error.
package enum
