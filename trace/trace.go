// Package trace holds the optional execution-trace input an analysis run
// may be given: the actual resource movements observed at runtime, keyed by
// instruction index, used to produce DynamicAnalysis output in addition to
// the always-available StaticAnalysis.
package trace

import (
	"github.com/shopspring/decimal"

	"github.com/radixdlt/manifest-analyzer/value"
)

// ResourceDelta is one resource's observed change in worktop contents at a
// given instruction.
type ResourceDelta struct {
	Resource value.Address
	Amount   decimal.Decimal // fungible delta, positive or negative
	AddedIds []value.NonFungibleLocalId
	RemovedIds []value.NonFungibleLocalId
}

// WorktopChanges is the full set of resource deltas observed at one
// instruction index.
type WorktopChanges struct {
	Deltas []ResourceDelta
}

// Trace maps instruction index to the worktop changes observed at that
// instruction. A nil Trace means no execution trace was supplied and only
// static analysis runs.
type Trace map[int]WorktopChanges

// At returns the changes recorded for an instruction index, or the zero
// value and false if none were recorded.
func (t Trace) At(instructionIndex int) (WorktopChanges, bool) {
	if t == nil {
		return WorktopChanges{}, false
	}
	wc, ok := t[instructionIndex]
	return wc, ok
}
