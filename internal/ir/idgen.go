// Package ir defines the intermediate-language term, literal, clause, and
// substitution types that the SLD engine resolves over.
package ir

import "sync/atomic"

// counter is the process-wide source of fresh auxiliary and renamed variable
// ids. It starts at zero, is only ever incremented, and is read/written
// atomically so that concurrent lowering or renaming calls never collide.
var counter uint64

// nextID returns the next value of the global fresh-id counter.
func nextID() uint64 {
	return atomic.AddUint64(&counter, 1) - 1
}

// ResetFreshIDCounterForTests rewinds the global fresh-id counter to zero.
//
// This exists solely so tests can assert on specific auxiliary/renamed
// variable ids (format-string lowering and clause renaming both depend on
// the counter's exact sequence). Production code must never call this: the
// counter's values are not part of observable program semantics, and
// resetting it while other goroutines are lowering or renaming clauses
// produces ids that collide with ones already handed out.
func ResetFreshIDCounterForTests() {
	atomic.StoreUint64(&counter, 0)
}
