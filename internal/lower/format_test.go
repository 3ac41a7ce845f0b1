package lower

import (
	"testing"

	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/unify"
)

// TestFormatStringRoundTrip checks the format-string round-trip invariant:
// after lowering "A${v}B", binding v to "x" and propagating through the
// emitted string_concat chain yields the constant "AxB" in the final
// auxiliary variable.
func TestFormatStringRoundTrip(t *testing.T) {
	literals, result := expandFormatString("A${v}B")

	sub := ir.NewSubstitution().With(ir.Term(ir.UserVariable("v")), ir.Term(ir.Constant("x")))
	for _, l := range literals {
		sub = mustApplyConcat(t, sub, l)
	}

	final, ok := ir.AsConstant(sub.Walk(result))
	if !ok {
		t.Fatalf("final auxiliary variable did not resolve to a constant: %v", sub.Walk(result))
	}
	if final != "AxB" {
		t.Fatalf("format string round trip = %q, want %q", final, "AxB")
	}
}

func TestExpandFormatStringEscapesDollar(t *testing.T) {
	literals, _ := expandFormatString(`\$5`)
	found := false
	for _, l := range literals {
		if c, ok := ir.AsConstant(l.Args[1]); ok && c == "$5" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an escaped literal segment \"$5\" among %v", literals)
	}
}

func TestExpandFormatStringNoExpansions(t *testing.T) {
	literals, result := expandFormatString("plain")
	sub := ir.NewSubstitution()
	for _, l := range literals {
		sub = mustApplyConcat(t, sub, l)
	}
	final, ok := ir.AsConstant(sub.Walk(result))
	if !ok || final != "plain" {
		t.Fatalf("expandFormatString(plain) resolved to %v, want \"plain\"", sub.Walk(result))
	}
}

// TestExpandFormatStringUnterminatedExpansionTerminates guards against a
// regression where a format string with an unclosed "${" (no matching "}")
// made expandFormatString loop forever: readExpansion reported ok=false
// without readOutsideSegment ever consuming the "${", so rest never
// shrank. The unterminated "${...}" prefix is now emitted as literal text.
func TestExpandFormatStringUnterminatedExpansionTerminates(t *testing.T) {
	literals, result := expandFormatString("x${abc")
	sub := ir.NewSubstitution()
	for _, l := range literals {
		sub = mustApplyConcat(t, sub, l)
	}
	final, ok := ir.AsConstant(sub.Walk(result))
	if !ok || final != "x${abc" {
		t.Fatalf("expandFormatString(x${abc) resolved to %v, want %q", sub.Walk(result), "x${abc")
	}
}

func mustApplyConcat(t *testing.T, sub ir.Substitution, l ir.Literal) ir.Substitution {
	t.Helper()
	a, aok := ir.AsConstant(sub.Walk(l.Args[0]))
	b, bok := ir.AsConstant(sub.Walk(l.Args[1]))
	if !aok || !bok {
		t.Fatalf("concat literal %v has unresolved ground input", l)
	}
	target := sub.Walk(l.Args[2])
	return unify.ComposeExtend(sub, ir.NewSubstitution().With(target, ir.Term(ir.Constant(a+b))))
}
