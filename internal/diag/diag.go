// Package diag is the engine's opaque diagnostic carrier. Callers stitch a
// Diagnostic to a source-file abstraction externally; this package never
// touches source text itself.
package diag

import "github.com/evanrichter/modus/internal/ir"

// Severity classifies a Diagnostic. The engine only ever produces errors,
// but the type allows for future warning/note severities without changing
// callers' handling of the error channel.
type Severity int

const (
	SeverityError Severity = iota
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Label attaches a message to a span of source, identified by byte offset
// and length.
type Label struct {
	Offset  int
	Length  int
	Message string
}

// UnknownPredicateCode identifies the sole diagnostic shape the engine
// currently produces.
const UnknownPredicateCode = "unknown-predicate"

// Diagnostic is a structured, source-independent error: a severity, a
// stable code, a human-readable message, and zero or more labels pointing
// at spans of the original source.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Labels   []Label
}

// Error satisfies the error interface so a Diagnostic can be returned and
// handled like any other Go error (errors.As works against it).
func (d *Diagnostic) Error() string {
	return d.Message
}

// UnknownPredicate builds the engine's one diagnostic shape: an error
// reporting that a literal's signature is neither a builtin nor present in
// the groundness map. When pos is nil the label degrades to a zero-length
// span at offset 0.
func UnknownPredicate(pos *ir.Position) *Diagnostic {
	offset, length := 0, 0
	if pos != nil {
		offset, length = pos.Offset, pos.Length
	}
	return &Diagnostic{
		Severity: SeverityError,
		Code:     UnknownPredicateCode,
		Message:  "unknown predicate",
		Labels: []Label{{
			Offset:  offset,
			Length:  length,
			Message: "unknown predicate",
		}},
	}
}
