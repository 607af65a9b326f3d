package logic

import (
	"strconv"
	"strings"
)

// A Formula is an immutable boolean expression tree. Two formulas are the
// same tree exactly when their String forms are equal; semantic equality is
// a matter of truth tables, not of this package.
type Formula interface {
	// Eval returns the formula's value under the given assignment, where
	// bit v of the assignment holds the value of variable v.
	Eval(assignment uint32) bool
	// BinOps returns the number of binary connectives in the tree.
	// Negations are free.
	BinOps() int
	String() string

	write(sb *strings.Builder, nested bool)
}

// Var returns the formula consisting of the single variable with index v.
// It prints as p1, p2, ... (indices are zero-based, names are not).
func Var(v int) Formula {
	return variable(v)
}

// VarName returns the display name of variable index v.
func VarName(v int) string {
	return "p" + strconv.Itoa(v+1)
}

type variable int

func (v variable) Eval(assignment uint32) bool {
	return assignment&(1<<uint(v)) != 0
}

func (v variable) BinOps() int { return 0 }

func (v variable) String() string { return VarName(int(v)) }

func (v variable) write(sb *strings.Builder, nested bool) {
	sb.WriteString(VarName(int(v)))
}

// Not negates the given formula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) Eval(assignment uint32) bool {
	return !n[0].Eval(assignment)
}

func (n not) BinOps() int { return n[0].BinOps() }

func (n not) String() string { return render(n) }

func (n not) write(sb *strings.Builder, nested bool) {
	sb.WriteByte('~')
	n[0].write(sb, true)
}

// Bin combines two formulas with the given connective.
func Bin(op Op, l, r Formula) Formula {
	return binop{op: op, l: l, r: r}
}

// And returns the conjunction of two formulas.
func And(l, r Formula) Formula { return Bin(OpAnd, l, r) }

// Or returns the disjunction of two formulas.
func Or(l, r Formula) Formula { return Bin(OpOr, l, r) }

// Xor returns the exclusive disjunction of two formulas.
func Xor(l, r Formula) Formula { return Bin(OpXor, l, r) }

type binop struct {
	op   Op
	l, r Formula
}

func (b binop) Eval(assignment uint32) bool {
	return b.op.Apply(b.l.Eval(assignment), b.r.Eval(assignment))
}

func (b binop) BinOps() int { return 1 + b.l.BinOps() + b.r.BinOps() }

func (b binop) String() string { return render(b) }

func (b binop) write(sb *strings.Builder, nested bool) {
	if nested {
		sb.WriteByte('(')
	}
	b.l.write(sb, true)
	sb.WriteByte(' ')
	sb.WriteString(b.op.String())
	sb.WriteByte(' ')
	b.r.write(sb, true)
	if nested {
		sb.WriteByte(')')
	}
}

func render(f Formula) string {
	var sb strings.Builder
	f.write(&sb, false)
	return sb.String()
}
