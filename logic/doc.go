// Package logic defines immutable boolean formula trees over a fixed set of
// indexed variables, together with their truth tables.
//
// A formula is built from variables p1..pn, negation and the binary
// connectives AND, OR and XOR. Formulas evaluate against an assignment, a
// bit vector giving the value of each variable. The truth table of a formula
// collects its output under every possible assignment into a single bit
// vector, so two formulas compute the same boolean function exactly when
// their truth tables are equal.
//
// The size of a formula is its number of binary connectives. Negation is not
// counted: ~p1 is as small as p1. This is the metric used when looking for
// the smallest formula computing a given function.
//
// For example, the formula
//
// ~(p1 & p2) ^ p3
//
// is built with
//
// f := Xor(Not(And(Var(0), Var(1))), Var(2))
//
// has BinOps() == 2, and its truth table for n = 3 has length 8.
package logic
