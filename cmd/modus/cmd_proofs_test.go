package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanrichter/modus/internal/ir"
)

func TestValuationStringEmpty(t *testing.T) {
	assert.Equal(t, "{}", valuationString(ir.NewSubstitution()))
}

func TestValuationStringSortsPairs(t *testing.T) {
	sub := ir.NewSubstitution().With(ir.UserVariable("Z"), ir.Constant("1")).With(ir.UserVariable("A"), ir.Constant("2"))
	got := valuationString(sub)
	// Sorted by the rendered "var=term" pair, not insertion order.
	assert.Equal(t, `{A="2", Z="1"}`, got)
}
