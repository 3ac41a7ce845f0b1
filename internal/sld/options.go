package sld

import "github.com/evanrichter/modus/internal/ir"

// GroundnessMap records, for each user predicate the program defines, which
// argument positions may be unbound at selection time: GroundnessMap[sig][i]
// == true means argument i may be a variable. It is the groundness table
// assumed to be supplied alongside the program; this engine takes no
// position on how it was derived (mode-inferred, declared, or simply "all
// arguments may be unbound").
type GroundnessMap map[ir.Signature][]bool

// Options configures one SLD search.
type Options struct {
	// MaxDepth bounds recursion: a node at level >= MaxDepth is treated as a
	// dead end (nil, no error) rather than explored further, keeping
	// non-terminating programs from running forever.
	MaxDepth int

	// Parallel opts into exploring a node's candidate clauses concurrently
	// via a bounded worker pool instead of strictly left-to-right. It never
	// changes which resolvents a node ends up with or their order — only
	// the wall-clock order in which their subtrees are built.
	Parallel bool

	// MaxParallelism caps concurrent subtree exploration when Parallel is
	// set. Zero means "let the runtime decide" (GOMAXPROCS).
	MaxParallelism int
}
