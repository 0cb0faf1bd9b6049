// Package worktop interprets the worktop/bucket effects of an instruction
// stream, tracking fungible amounts and non-fungible id sets for as long as
// it can prove it knows their exact contents, and degrading to an
// untracked state once it can't.
package worktop

import (
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/manifest-analyzer/value"
)

// Tracking is the coarse mode the worktop interpreter is in.
type Tracking uint8

const (
	// Tracked means the interpreter can state exactly which resources the
	// worktop holds.
	Tracked Tracking = iota
	// Untracked means some prior instruction's effect on the worktop could
	// not be determined; the worktop's true contents are now unknown.
	Untracked
)

// ResourceContents is the known holdings of one resource on the worktop.
// For a fungible resource, Amount is meaningful and Ids is nil. For a
// non-fungible resource, Ids is meaningful and Amount is zero.
type ResourceContents struct {
	Amount decimal.Decimal
	Ids    map[string]value.NonFungibleLocalId
}

func emptyContents() ResourceContents {
	return ResourceContents{Amount: decimal.Zero, Ids: make(map[string]value.NonFungibleLocalId)}
}

// BucketState is what a taken/created bucket is known to hold.
type BucketState struct {
	Known    bool
	Resource value.Address
	Contents ResourceContents
}

// State is the worktop interpreter's running state: its tracking mode, the
// known contents of every resource it has seen (meaningless once
// Tracking == Untracked), and the buckets produced so far, keyed by bucket
// id.
type State struct {
	Tracking Tracking
	worktop  *orderedmap.OrderedMap[value.Address, ResourceContents]
	Buckets  map[uint32]BucketState
}

// New returns a worktop interpreter in the Tracked state, with an empty
// worktop and no buckets; "empty" is itself a known state.
func New() *State {
	return &State{
		Tracking: Tracked,
		worktop:  orderedmap.New[value.Address, ResourceContents](),
		Buckets:  make(map[uint32]BucketState),
	}
}

func (s *State) contentsOf(resource value.Address) ResourceContents {
	c, ok := s.worktop.Get(resource)
	if !ok {
		return emptyContents()
	}
	return c
}

func (s *State) setContentsOf(resource value.Address, c ResourceContents) {
	s.worktop.Set(resource, c)
}

func cloneIds(ids map[string]value.NonFungibleLocalId) map[string]value.NonFungibleLocalId {
	out := make(map[string]value.NonFungibleLocalId, len(ids))
	for k, v := range ids {
		out[k] = v
	}
	return out
}

// goUntracked transitions the interpreter to Untracked. Once there, it
// never recovers (I3's "no duplicate ids" and "nonnegative" guarantees are
// only meaningful while Tracked).
func (s *State) goUntracked() {
	s.Tracking = Untracked
}

// TakeByAmount handles TakeFromWorktop(resource, amount), producing the
// resulting bucket id's state.
func (s *State) TakeByAmount(bucketID uint32, resource value.Address, amount decimal.Decimal) {
	if s.Tracking == Untracked {
		s.Buckets[bucketID] = BucketState{Known: false}
		return
	}
	held := s.contentsOf(resource)
	if amount.IsZero() {
		s.Buckets[bucketID] = BucketState{Known: true, Resource: resource, Contents: emptyContents()}
		return
	}
	if held.Amount.LessThan(amount) {
		s.goUntracked()
		s.Buckets[bucketID] = BucketState{Known: false}
		return
	}
	held.Amount = held.Amount.Sub(amount)
	s.setContentsOf(resource, held)
	s.Buckets[bucketID] = BucketState{
		Known: true, Resource: resource,
		Contents: ResourceContents{Amount: amount, Ids: make(map[string]value.NonFungibleLocalId)},
	}
}

// TakeByIds handles TakeNonFungiblesFromWorktop(resource, ids).
func (s *State) TakeByIds(bucketID uint32, resource value.Address, ids []value.NonFungibleLocalId) {
	if s.Tracking == Untracked {
		s.Buckets[bucketID] = BucketState{Known: false}
		return
	}
	held := s.contentsOf(resource)
	taken := make(map[string]value.NonFungibleLocalId, len(ids))
	for _, id := range ids {
		key := nonFungibleKey(id)
		if _, ok := held.Ids[key]; !ok {
			s.goUntracked()
			s.Buckets[bucketID] = BucketState{Known: false}
			return
		}
		taken[key] = id
		delete(held.Ids, key)
	}
	s.setContentsOf(resource, held)
	s.Buckets[bucketID] = BucketState{Known: true, Resource: resource, Contents: ResourceContents{Ids: taken}}
}

// TakeAll handles TakeAllFromWorktop(resource).
func (s *State) TakeAll(bucketID uint32, resource value.Address) {
	if s.Tracking == Untracked {
		s.Buckets[bucketID] = BucketState{Known: false}
		return
	}
	held := s.contentsOf(resource)
	s.setContentsOf(resource, emptyContents())
	s.Buckets[bucketID] = BucketState{Known: true, Resource: resource, Contents: held}
}

// ReturnToWorktop handles ReturnToWorktop(bucket): the bucket's contents
// (if known) are added back; an unknown bucket forces Untracked, since the
// worktop's post-state can no longer be bounded.
func (s *State) ReturnToWorktop(bucketID uint32) {
	b, ok := s.Buckets[bucketID]
	if !ok || !b.Known {
		s.goUntracked()
		return
	}
	if s.Tracking == Untracked {
		return
	}
	held := s.contentsOf(b.Resource)
	held.Amount = held.Amount.Add(b.Contents.Amount)
	for k, v := range b.Contents.Ids {
		held.Ids[k] = v
	}
	s.setContentsOf(b.Resource, held)
}

// ApplyKnownInvocationOutput adds a statically-bounded invocation output
// bucket back onto the worktop bookkeeping, used when C3/C5 determine an
// invocation's output resources by static bounds rather than execution
// trace. An invocation whose outputs cannot be statically bounded should
// call GoUntracked instead.
func (s *State) ApplyKnownInvocationOutput(resource value.Address, amount decimal.Decimal, ids []value.NonFungibleLocalId) {
	if s.Tracking == Untracked {
		return
	}
	held := s.contentsOf(resource)
	held.Amount = held.Amount.Add(amount)
	for _, id := range ids {
		held.Ids[nonFungibleKey(id)] = id
	}
	s.setContentsOf(resource, held)
}

// GoUntracked forces the untracked transition, e.g. for
// CallDirectVaultMethod (always untrusted per spec) or an invocation whose
// output resources are not statically known.
func (s *State) GoUntracked() { s.goUntracked() }

// IsEmpty reports whether every resource the worktop has touched is
// currently at zero/empty. Meaningless once Untracked.
func (s *State) IsEmpty() bool {
	if s.Tracking == Untracked {
		return false
	}
	for pair := s.worktop.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Amount.IsZero() || len(pair.Value.Ids) != 0 {
			return false
		}
	}
	return true
}

func nonFungibleKey(id value.NonFungibleLocalId) string {
	switch id.LocalIDKind {
	case value.NFLocalIDString:
		return "s:" + id.StringValue
	case value.NFLocalIDInteger:
		return "i:" + id.IntValue.Dec()
	case value.NFLocalIDBytes:
		return "b:" + string(id.BytesValue)
	case value.NFLocalIDRUID:
		return "r:" + string(id.RUIDValue[:])
	default:
		return "?"
	}
}
