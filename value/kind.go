// Package value implements the manifest value model: a recursive tagged
// sum type over the primitives and custom types a transaction manifest can
// carry, plus its canonical wire-format (JSON) codec.
package value

// Kind is the tag enumeration for Value. Every Value variant has exactly
// one Kind and no payload-free Kind exists without a matching variant.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindString
	KindEnum
	KindArray
	KindTuple
	KindMap
	KindAddress
	KindBucket
	KindProof
	KindExpression
	KindBlob
	KindDecimal
	KindPreciseDecimal
	KindNonFungibleLocalId
	KindAddressReservation

	kindSentinel
)

// kindNames is a precomputed lookup table: Kind.String() is called on every
// value during traversal, so a direct array index beats a map lookup or a
// switch statement here.
var kindNames = [kindSentinel]string{
	KindBool:                "Bool",
	KindU8:                  "U8",
	KindU16:                 "U16",
	KindU32:                 "U32",
	KindU64:                 "U64",
	KindU128:                "U128",
	KindI8:                  "I8",
	KindI16:                 "I16",
	KindI32:                 "I32",
	KindI64:                 "I64",
	KindI128:                "I128",
	KindString:              "String",
	KindEnum:                "Enum",
	KindArray:               "Array",
	KindTuple:               "Tuple",
	KindMap:                 "Map",
	KindAddress:             "Address",
	KindBucket:              "Bucket",
	KindProof:               "Proof",
	KindExpression:          "Expression",
	KindBlob:                "Blob",
	KindDecimal:             "Decimal",
	KindPreciseDecimal:      "PreciseDecimal",
	KindNonFungibleLocalId:  "NonFungibleLocalId",
	KindAddressReservation:  "AddressReservation",
}

// String implements fmt.Stringer via direct array lookup rather than a map.
func (k Kind) String() string {
	if k >= kindSentinel {
		return "Unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined Kind tags.
func (k Kind) Valid() bool {
	return k < kindSentinel
}
