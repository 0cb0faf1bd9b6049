package value

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Value is the recursive tagged sum type every manifest argument, return
// value, and literal is expressed in. Every concrete variant below
// implements it; Kind() is total over them.
type Value interface {
	Kind() Kind
}

// Bool is the Bool variant.
type Bool struct{ Value bool }

func (Bool) Kind() Kind { return KindBool }

// U8..U128 are the unsigned integer variants. U128 uses uint256.Int since
// the standard library has no native 128-bit unsigned type; this mirrors
// the teacher's own use of uint256 for wide words.
type (
	U8   struct{ Value uint8 }
	U16  struct{ Value uint16 }
	U32  struct{ Value uint32 }
	U64  struct{ Value uint64 }
	U128 struct{ Value *uint256.Int }
)

func (U8) Kind() Kind   { return KindU8 }
func (U16) Kind() Kind  { return KindU16 }
func (U32) Kind() Kind  { return KindU32 }
func (U64) Kind() Kind  { return KindU64 }
func (U128) Kind() Kind { return KindU128 }

// I8..I128 are the signed integer variants. I128 is stored in a
// uint256.Int; codec.go writes and reads it as an unsigned decimal string
// and applies no sign conversion.
type (
	I8   struct{ Value int8 }
	I16  struct{ Value int16 }
	I32  struct{ Value int32 }
	I64  struct{ Value int64 }
	I128 struct{ Value *uint256.Int }
)

func (I8) Kind() Kind   { return KindI8 }
func (I16) Kind() Kind  { return KindI16 }
func (I32) Kind() Kind  { return KindI32 }
func (I64) Kind() Kind  { return KindI64 }
func (I128) Kind() Kind { return KindI128 }

// String is the String variant.
type String struct{ Value string }

func (String) Kind() Kind { return KindString }

// Enum is a discriminated, Rust-style enum: a u8 discriminator plus an
// ordered sequence of fields (§3 of the spec).
type Enum struct {
	Discriminator uint8
	Fields        []Value
}

func (Enum) Kind() Kind { return KindEnum }

// Array is a homogeneous sequence: every element must have ElementKind
// (invariant I1). Construct via NewArray to enforce this rather than by
// literal, since a hand-built Array can violate the invariant.
type Array struct {
	ElementKind Kind
	Elements    []Value
}

func (Array) Kind() Kind { return KindArray }

// NewArray validates element-kind uniformity (I1) before returning the
// Array; the codec also builds decoded arrays through it, and callers that
// already trust their input may construct Array{} directly.
func NewArray(elementKind Kind, elements []Value) (Array, error) {
	for i, e := range elements {
		if e.Kind() != elementKind {
			return Array{}, fmt.Errorf("array element %d has kind %s, want %s", i, e.Kind(), elementKind)
		}
	}
	return Array{ElementKind: elementKind, Elements: elements}, nil
}

// Tuple is a heterogeneous, ordered sequence of fields.
type Tuple struct{ Fields []Value }

func (Tuple) Kind() Kind { return KindTuple }

// MapEntry is one (key, value) pair of a Map, kept in insertion order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is a sequence of (key, value) entries where every key has KeyKind
// and every value has ValueKind (invariant I1's map analogue).
type Map struct {
	KeyKind   Kind
	ValueKind Kind
	Entries   []MapEntry
}

func (Map) Kind() Kind { return KindMap }

// NewMap validates key/value-kind uniformity before returning the Map.
func NewMap(keyKind, valueKind Kind, entries []MapEntry) (Map, error) {
	for i, e := range entries {
		if e.Key.Kind() != keyKind {
			return Map{}, fmt.Errorf("map entry %d key has kind %s, want %s", i, e.Key.Kind(), keyKind)
		}
		if e.Value.Kind() != valueKind {
			return Map{}, fmt.Errorf("map entry %d value has kind %s, want %s", i, e.Value.Kind(), valueKind)
		}
	}
	return Map{KeyKind: keyKind, ValueKind: valueKind, Entries: entries}, nil
}

// AddressKind distinguishes a global/internal node address that is either
// resolved (static, a concrete node id) or symbolic (named, allocated
// later in the same manifest by AllocateGlobalAddress).
type AddressKind uint8

const (
	AddressStatic AddressKind = iota
	AddressNamed
)

// Address is the custom Address variant: either a 30-byte static node id
// or a symbolic named-address placeholder (an index into the manifest's
// id allocator space).
type Address struct {
	AddressKind AddressKind
	NodeID      [30]byte // valid iff AddressKind == AddressStatic
	NamedID     uint32   // valid iff AddressKind == AddressNamed
}

func (Address) Kind() Kind { return KindAddress }

// IsNamed reports whether this address is a symbolic named address.
func (a Address) IsNamed() bool { return a.AddressKind == AddressNamed }

// Bucket is a transient id referring to a worktop extraction.
type Bucket struct{ ID uint32 }

func (Bucket) Kind() Kind { return KindBucket }

// Proof is a transient id referring to a non-consumable authorization
// token derived from resources or the auth zone.
type Proof struct{ ID uint32 }

func (Proof) Kind() Kind { return KindProof }

// ExpressionKind enumerates the built-in opaque expressions a manifest may
// reference (currently: the entire worktop, or the entire auth zone).
type ExpressionKind uint8

const (
	ExpressionEntireWorktop ExpressionKind = iota
	ExpressionEntireAuthZone
)

// Expression is the opaque built-in Expression variant.
type Expression struct{ ExpressionKind ExpressionKind }

func (Expression) Kind() Kind { return KindExpression }

// Blob is a 32-byte content hash referencing a manifest blob attachment.
type Blob struct{ Hash [32]byte }

func (Blob) Kind() Kind { return KindBlob }

// Decimal is a fixed-point value with 18 fractional digits.
type Decimal struct{ Value decimal.Decimal }

func (Decimal) Kind() Kind { return KindDecimal }

// DecimalPrecision is the fractional-digit precision of the Decimal
// variant, per spec.md §3.
const DecimalPrecision = 18

// NewDecimal builds a Decimal truncated to DecimalPrecision fractional
// digits, matching the on-ledger fixed-point representation.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Value: d.Truncate(DecimalPrecision)}
}

// PreciseDecimal is a fixed-point value with 64 fractional digits.
type PreciseDecimal struct{ Value decimal.Decimal }

func (PreciseDecimal) Kind() Kind { return KindPreciseDecimal }

// PreciseDecimalPrecision is the fractional-digit precision of the
// PreciseDecimal variant, per spec.md §3.
const PreciseDecimalPrecision = 64

// NewPreciseDecimal builds a PreciseDecimal truncated to
// PreciseDecimalPrecision fractional digits.
func NewPreciseDecimal(d decimal.Decimal) PreciseDecimal {
	return PreciseDecimal{Value: d.Truncate(PreciseDecimalPrecision)}
}

// NonFungibleLocalIDKind tags which representation a NonFungibleLocalId
// carries.
type NonFungibleLocalIDKind uint8

const (
	NFLocalIDString NonFungibleLocalIDKind = iota
	NFLocalIDInteger
	NFLocalIDBytes
	NFLocalIDRUID
)

// NonFungibleLocalId is the string/integer/bytes/ruid tagged variant
// identifying one unit of a non-fungible resource.
type NonFungibleLocalId struct {
	LocalIDKind NonFungibleLocalIDKind
	StringValue string
	IntValue    *uint256.Int
	BytesValue  []byte
	RUIDValue   [32]byte
}

func (NonFungibleLocalId) Kind() Kind { return KindNonFungibleLocalId }

// AddressReservation is a placeholder for an address allocated earlier in
// the same manifest but not yet consumed by a global-address instruction.
type AddressReservation struct{ ID uint32 }

func (AddressReservation) Kind() Kind { return KindAddressReservation }
