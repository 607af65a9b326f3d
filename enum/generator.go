package enum

import (
	"github.com/lootsmuggler/logictools/logic"
)

// A Generator produces every syntactically distinct formula over n
// variables, one size class at a time. Size class k holds the formulas with
// exactly k binary operators; negation is free and does not open a class of
// its own.
//
// Classes must be grown in order: class k is built by combining the retained
// formulas of classes i and k-1-i for every split of k-1, under every
// connective, each combination emitted plain and negated. Nothing is ever
// simplified or pruned beyond exact tree identity, so the class sizes grow
// multiplicatively and the pools dominate the memory cost of a run.
type Generator struct {
	n      int
	bySize [][]logic.Formula
	seen   map[string]struct{}
}

// NewGenerator returns a generator for formulas over n variables. No class
// is generated yet.
func NewGenerator(n int) *Generator {
	return &Generator{
		n:    n,
		seen: make(map[string]struct{}),
	}
}

// Classes returns the number of size classes generated so far.
func (g *Generator) Classes() int { return len(g.bySize) }

// Class returns the retained pool of size class k. The slice is shared,
// read-only building material; callers must not modify it.
func (g *Generator) Class(k int) []logic.Formula { return g.bySize[k] }

// Grow generates the next size class and returns its formulas in emission
// order. The returned slice is owned by the generator.
func (g *Generator) Grow() []logic.Formula {
	k := len(g.bySize)
	var class []logic.Formula
	emit := func(f logic.Formula) {
		s := f.String()
		if _, ok := g.seen[s]; ok {
			return
		}
		g.seen[s] = struct{}{}
		class = append(class, f)
	}
	if k == 0 {
		// The base class: every variable and its negation.
		for v := 0; v < g.n; v++ {
			emit(logic.Var(v))
			emit(logic.Not(logic.Var(v)))
		}
	} else {
		// Split the k-1 remaining operators among the two subtrees. Both
		// pools are frozen: earlier classes are never appended to again.
		for i := 0; i < k; i++ {
			left, right := g.bySize[i], g.bySize[k-1-i]
			for _, l := range left {
				for _, r := range right {
					for _, op := range logic.Ops {
						f := logic.Bin(op, l, r)
						emit(f)
						emit(logic.Not(f))
					}
				}
			}
		}
	}
	g.bySize = append(g.bySize, class)
	return class
}
