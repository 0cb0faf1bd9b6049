package analysis

import "github.com/radixdlt/manifest-analyzer/trace"

// Analyzer is the composed permission/requirement/processing behavior of
// one classifier. Permission and per-instruction processing are merged
// into Visit: an analyzer that would reject the instruction under its
// permission predicate simply returns false from Visit instead of also
// processing it, since a broken analyzer's processing is discarded anyway.
// Requirement stays a separate method because it is evaluated exactly
// once, after the full stream has been seen.
type Analyzer interface {
	// Name identifies the analyzer for diagnostics and metrics labels.
	Name() string

	// Visit is called once per instruction, in stream order, for as long
	// as this analyzer's permission has not broken. Returning false marks
	// the permission broken from this instruction forward; the analyzer
	// will not be visited again for the remainder of the traversal.
	Visit(ctx Context) bool

	// VisitDynamic is called in addition to Visit when an execution trace
	// entry is present for ctx.Index. Only called while permission is
	// unbroken.
	VisitDynamic(ctx Context, changes trace.WorktopChanges)

	// Requirement reports whether this analyzer's accumulated requirement
	// was satisfied by the end of the traversal. An analyzer with no
	// requirement (e.g. account-interactions, which is pure data
	// retrieval) always returns true.
	Requirement() bool

	// Output returns the analyzer's structured result. Only consulted when
	// permission never broke and Requirement() is true.
	Output() any
}

// Factory constructs a fresh Analyzer instance for one traversal. Analyzers
// carry mutable per-traversal state, so the engine is always given
// factories rather than shared instances.
type Factory func() Analyzer
