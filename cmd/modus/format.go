package main

import (
	"strings"

	"github.com/evanrichter/modus/internal/ir"
)

func literalSequenceString(lits []ir.Literal) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}
