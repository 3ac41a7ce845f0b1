package builtin

import "github.com/evanrichter/modus/internal/ir"

// runMode and fromMode are the image-building marker predicates: each
// accepts a single argument that must already be a constant, and apply
// returns the literal unchanged so that the surrounding image-plan
// generator sees them as resolved facts it can act on directly.
var runMode = Mode{
	Name:       "run",
	Groundness: []bool{false},
	Apply:      acceptIfConstant,
}

var fromMode = Mode{
	Name:       "from",
	Groundness: []bool{false},
	Apply:      acceptIfConstant,
}

func acceptIfConstant(l ir.Literal) (ir.Literal, bool) {
	if !ir.IsGround(l.Args[0]) {
		return ir.Literal{}, false
	}
	return l, true
}
