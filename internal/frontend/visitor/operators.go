package visitor

import "github.com/cwbudde/cs2ps/internal/ir"

// binaryOps is the closed lookup from spec §4.1: "Operators: mapped
// into BinaryOp via a closed lookup; any unrecognized operator becomes
// Unknown."
var binaryOps = map[string]ir.BinaryOp{
	"==": ir.OpEqual,
	"!=": ir.OpNotEqual,
	"!":  ir.OpNot,
	">":  ir.OpGreaterThan,
	">=": ir.OpGreaterThanEqualTo,
	"<":  ir.OpLessThan,
	"<=": ir.OpLessThanEqualTo,
	"||": ir.OpOr,
	"&&": ir.OpAnd,
	"|":  ir.OpBor,
	"-":  ir.OpMinus,
	"+":  ir.OpPlus,
}

// compoundAssignOps expands a compound assignment operator (`+=`) into
// the BinaryOp its desugared `x = x op y` form carries, per spec's
// "compound operators... arrive pre-expanded by the visitor" note on
// ir.Assignment.
var compoundAssignOps = map[string]ir.BinaryOp{
	"+=": ir.OpPlus,
	"-=": ir.OpMinus,
	"|=": ir.OpBor,
}

func lookupBinaryOp(token string) ir.BinaryOp {
	if op, ok := binaryOps[token]; ok {
		return op
	}
	return ir.OpUnknown
}
