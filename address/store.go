package address

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/manifest-analyzer/value"
)

// NamedAddressStore is the append-only map from symbolic named-address ids
// (allocated by AllocateGlobalAddress) to the blueprint they will
// instantiate, owned by a single traversal. Iteration order matches
// allocation order.
type NamedAddressStore struct {
	entries *orderedmap.OrderedMap[uint32, BlueprintId]
}

// NewNamedAddressStore returns an empty store.
func NewNamedAddressStore() *NamedAddressStore {
	return &NamedAddressStore{entries: orderedmap.New[uint32, BlueprintId]()}
}

// Insert records the blueprint a named address will instantiate. Later
// insertions with the same id overwrite the earlier entry, mirroring the
// one-allocation-per-id manifest invariant (a re-insert would only happen
// for a malformed manifest; the store itself does not validate uniqueness).
func (s *NamedAddressStore) Insert(namedID uint32, blueprint BlueprintId) {
	s.entries.Set(namedID, blueprint)
}

// Get looks up the blueprint recorded for a named address id.
func (s *NamedAddressStore) Get(namedID uint32) (BlueprintId, bool) {
	return s.entries.Get(namedID)
}

// Len reports how many named addresses have been allocated so far.
func (s *NamedAddressStore) Len() int { return s.entries.Len() }

// ResolvedAddress is the outcome of resolving a value.Address (static or
// named) against a NamedAddressStore: either a concrete node id, or the
// blueprint a not-yet-materialized named address will instantiate.
type ResolvedAddress struct {
	Address   value.Address
	Blueprint BlueprintId // populated iff Address.IsNamed()
}

// ErrInvalidNamedAddress is returned by Resolve when a manifest method
// invocation's address refers to a named address id that was never
// allocated earlier in the same traversal.
type ErrInvalidNamedAddress struct {
	NamedID uint32
}

func (e *ErrInvalidNamedAddress) Error() string {
	return "address: named address not yet allocated"
}

// Resolve produces a ResolvedAddress for addr. For a static address this
// always succeeds. For a named address it fails with
// ErrInvalidNamedAddress if addr.NamedID was never recorded via Insert.
func (s *NamedAddressStore) Resolve(addr value.Address) (ResolvedAddress, error) {
	if !addr.IsNamed() {
		return ResolvedAddress{Address: addr}, nil
	}
	bp, ok := s.Get(addr.NamedID)
	if !ok {
		return ResolvedAddress{}, &ErrInvalidNamedAddress{NamedID: addr.NamedID}
	}
	return ResolvedAddress{Address: addr, Blueprint: bp}, nil
}

// EntityType resolves the GroupedEntityType of a ResolvedAddress: from the
// static node id's leading byte, or from the named address's recorded
// blueprint. ok is false when neither source yields a recognized type, in
// which case callers should treat the address as a generic component.
func (r ResolvedAddress) EntityType() (GroupedEntityType, bool) {
	if r.Address.IsNamed() {
		et, ok := r.Blueprint.EntityType()
		if !ok {
			return 0, false
		}
		return GroupEntityType(et), true
	}
	et, ok := EntityTypeFromNodeIDByte(r.Address.NodeID[0])
	if !ok {
		return 0, false
	}
	return GroupEntityType(et), true
}
