// Package ioindex builds the per-(instruction, resource) invocation I/O
// record the analyzers consult to answer "what moved through this
// invocation," combining statically-bounded and dynamically-observed
// movements.
package ioindex

import (
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/manifest-analyzer/value"
)

// Kind tags which of the three stored combination outcomes a Record
// represents: static only, dynamic only, or both. A pair with neither has
// no Record.
type Kind uint8

const (
	KindStatic Kind = iota
	KindDynamic
	KindStaticAndDynamic
)

// Movement is a signed resource delta: positive In, positive Out, or a set
// of non-fungible ids moved in either direction.
type Movement struct {
	In     decimal.Decimal
	Out    decimal.Decimal
	InIds  []value.NonFungibleLocalId
	OutIds []value.NonFungibleLocalId
}

// Record is the combined static/dynamic view of one resource's movement
// through one invocation instruction.
type Record struct {
	Kind    Kind
	Static  Movement // valid iff Kind != KindDynamic
	Dynamic Movement // valid iff Kind != KindStatic
}

type key struct {
	instructionIndex int
	resource         value.Address
}

// Index is the lookup table from (instruction index, resource) to Record.
// Absence of a key means that invocation did not interact with that
// resource.
type Index struct {
	entries *orderedmap.OrderedMap[key, Record]
}

// New returns an empty Index.
func New() *Index {
	return &Index{entries: orderedmap.New[key, Record]()}
}

// SetStatic records a statically-bounded movement for the given
// instruction/resource pair, combining with any dynamic entry already
// present at that key.
func (idx *Index) SetStatic(instructionIndex int, resource value.Address, m Movement) {
	k := key{instructionIndex, resource}
	existing, ok := idx.entries.Get(k)
	if ok && existing.Kind != KindStatic {
		existing.Kind = KindStaticAndDynamic
		existing.Static = m
		idx.entries.Set(k, existing)
		return
	}
	idx.entries.Set(k, Record{Kind: KindStatic, Static: m})
}

// SetDynamic records an execution-trace-observed movement, combining with
// any static entry already present at that key.
func (idx *Index) SetDynamic(instructionIndex int, resource value.Address, m Movement) {
	k := key{instructionIndex, resource}
	existing, ok := idx.entries.Get(k)
	if ok && existing.Kind != KindDynamic {
		existing.Kind = KindStaticAndDynamic
		existing.Dynamic = m
		idx.entries.Set(k, existing)
		return
	}
	idx.entries.Set(k, Record{Kind: KindDynamic, Dynamic: m})
}

// Lookup returns the combined record for one instruction/resource pair.
func (idx *Index) Lookup(instructionIndex int, resource value.Address) (Record, bool) {
	return idx.entries.Get(key{instructionIndex, resource})
}

// ForInstruction returns every resource record touched by one instruction
// index, keyed by resource; the returned map carries no order.
func (idx *Index) ForInstruction(instructionIndex int) map[value.Address]Record {
	out := make(map[value.Address]Record)
	for pair := idx.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key.instructionIndex == instructionIndex {
			out[pair.Key.resource] = pair.Value
		}
	}
	return out
}

// Len reports how many (instruction, resource) records are stored.
func (idx *Index) Len() int { return idx.entries.Len() }
