package logic

// An Op is a binary boolean connective.
type Op uint8

// The connective alphabet. It is total: every Op value used by the package
// appears here, and Apply is defined for all of them.
const (
	OpAnd Op = iota
	OpOr
	OpXor
)

// Ops lists every binary connective, in the order generators should try them.
var Ops = [...]Op{OpAnd, OpOr, OpXor}

// Apply computes the connective's truth function.
func (op Op) Apply(a, b bool) bool {
	switch op {
	case OpAnd:
		return a && b
	case OpOr:
		return a || b
	case OpXor:
		return a != b
	default:
		panic("logic: invalid operator")
	}
}

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	default:
		panic("logic: invalid operator")
	}
}
