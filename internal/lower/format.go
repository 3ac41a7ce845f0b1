package lower

import (
	"strings"

	"github.com/evanrichter/modus/internal/ir"
)

const concatPredicate = ir.Predicate("string_concat")

// expandFormatString lowers the raw content of a format string into a
// chain of string_concat literals and the final auxiliary variable holding
// the result: an initial no-op string_concat("", "", V0), then one
// string_concat literal per outside segment or ${var} expansion, threading
// a fresh auxiliary variable through each step.
//
// Grounded on original_source/src/translate.rs's convert_format_string.
func expandFormatString(raw string) ([]ir.Literal, ir.Term) {
	prev := ir.Term(ir.NewAuxiliaryVariable())
	literals := []ir.Literal{concatLiteral(ir.Constant(""), ir.Constant(""), prev)}

	rest := raw
	for len(rest) > 0 {
		segment, tail := readOutsideSegment(rest)
		next := ir.Term(ir.NewAuxiliaryVariable())
		literals = append(literals, concatLiteral(prev, ir.Constant(segment), next))
		prev = next
		rest = tail

		if varName, tail, ok := readExpansion(rest); ok {
			next := ir.Term(ir.NewAuxiliaryVariable())
			literals = append(literals, concatLiteral(prev, ir.UserVariable(varName), next))
			prev = next
			rest = tail
		} else if rest != "" {
			// rest starts with an unterminated "${" (no closing "}").
			// Emit it as literal text instead of looping on it forever.
			next := ir.Term(ir.NewAuxiliaryVariable())
			literals = append(literals, concatLiteral(prev, ir.Constant(rest), next))
			prev = next
			rest = ""
		}
	}

	return literals, prev
}

func concatLiteral(a, b, c ir.Term) ir.Literal {
	return ir.Literal{Predicate: concatPredicate, Args: []ir.Term{a, b, c}}
}

// readOutsideSegment consumes characters up to (but not including) the next
// unescaped "${", unescaping "\$" to a literal "$" as it goes. It returns
// the unescaped segment and the unconsumed remainder of s.
func readOutsideSegment(s string) (segment string, rest string) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], `\$`) {
			b.WriteByte('$')
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], "${") {
			break
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), s[i:]
}

// readExpansion recognizes a leading "${name}" and returns the variable
// name plus the remainder of s after it. ok is false if s doesn't start
// with a well-formed expansion (e.g. we're at the end of the string).
func readExpansion(s string) (name string, rest string, ok bool) {
	if !strings.HasPrefix(s, "${") {
		return "", s, false
	}
	close := strings.IndexByte(s, '}')
	if close < 0 {
		return "", s, false
	}
	return s[2:close], s[close+1:], true
}
