package builtin

import (
	"strings"

	"github.com/evanrichter/modus/internal/ir"
)

func stringConcatLiteral(a, b, c string) ir.Literal {
	return ir.Literal{
		Predicate: "string_concat",
		Args:      []ir.Term{ir.Constant(a), ir.Constant(b), ir.Constant(c)},
	}
}

// stringConcatMode1 concatenates: string_concat(a, b, c) with a and b
// ground, c produced as a ++ b.
var stringConcatMode1 = Mode{
	Name:       "string_concat",
	Groundness: []bool{false, false, true},
	Apply: func(l ir.Literal) (ir.Literal, bool) {
		a, ok := ir.AsConstant(l.Args[0])
		if !ok {
			return ir.Literal{}, false
		}
		b, ok := ir.AsConstant(l.Args[1])
		if !ok {
			return ir.Literal{}, false
		}
		return stringConcatLiteral(a, b, a+b), true
	},
}

// stringConcatMode2 splits off a suffix: b and c ground, a produced by
// stripping the known suffix b from c (fails if c doesn't end in b).
var stringConcatMode2 = Mode{
	Name:       "string_concat",
	Groundness: []bool{true, false, false},
	Apply: func(l ir.Literal) (ir.Literal, bool) {
		b, ok := ir.AsConstant(l.Args[1])
		if !ok {
			return ir.Literal{}, false
		}
		c, ok := ir.AsConstant(l.Args[2])
		if !ok {
			return ir.Literal{}, false
		}
		if !strings.HasSuffix(c, b) {
			return ir.Literal{}, false
		}
		return stringConcatLiteral(strings.TrimSuffix(c, b), b, c), true
	},
}

// stringConcatMode3 splits off a prefix: a and c ground, b produced by
// stripping the known prefix a from c (fails if c doesn't start with a).
var stringConcatMode3 = Mode{
	Name:       "string_concat",
	Groundness: []bool{false, true, false},
	Apply: func(l ir.Literal) (ir.Literal, bool) {
		a, ok := ir.AsConstant(l.Args[0])
		if !ok {
			return ir.Literal{}, false
		}
		c, ok := ir.AsConstant(l.Args[2])
		if !ok {
			return ir.Literal{}, false
		}
		if !strings.HasPrefix(c, a) {
			return ir.Literal{}, false
		}
		return stringConcatLiteral(a, strings.TrimPrefix(c, a), c), true
	},
}
