package value

import (
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

func decimalFromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("value: bad decimal %q: %w", s, err)
	}
	return d, nil
}

// wireJSON is the jsoniter configuration used for the Value wire format:
// map key order is not a concern here since Map/Enum/Tuple/Array already
// carry their own ordered field lists rather than relying on Go map
// iteration order.
var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// wireValue is the canonical JSON shape of a Value: a type tag plus a
// kind-specific payload. Integers of every width are decimal strings;
// byte arrays are lowercase hex, per spec.md §4.1.
type wireValue struct {
	Type string `json:"type"`

	Value   *string     `json:"value,omitempty"`
	Bool    *bool       `json:"bool,omitempty"`
	Variant *uint8      `json:"variant,omitempty"`
	Fields  []wireValue `json:"fields,omitempty"`

	ElementKind *string     `json:"element_kind,omitempty"`
	Elements    []wireValue `json:"elements,omitempty"`

	KeyKind   *string        `json:"key_kind,omitempty"`
	ValueKind *string        `json:"value_value_kind,omitempty"`
	Entries   []wireMapEntry `json:"entries,omitempty"`

	AddressKind *string `json:"address_kind,omitempty"`
	NodeID      *string `json:"node_id,omitempty"`
	NamedID     *uint32 `json:"named_id,omitempty"`

	ID *uint32 `json:"id,omitempty"`

	Expression *string `json:"expression,omitempty"`
	Hash       *string `json:"hash,omitempty"`

	LocalIDKind *string `json:"local_id_kind,omitempty"`
	Bytes       *string `json:"bytes,omitempty"`
}

type wireMapEntry struct {
	Key   wireValue `json:"key"`
	Value wireValue `json:"value"`
}

func strp(s string) *string   { return &s }
func u8p(v uint8) *uint8      { return &v }
func u32p(v uint32) *uint32   { return &v }

// Encode converts a Value into its canonical wire representation. Encode
// never fails for a well-formed Value tree (one built via this package's
// constructors); it returns an error for a Value type it does not
// recognize, which can only happen if a caller hand-rolls a type
// implementing Value.
func Encode(v Value) ([]byte, error) {
	w, err := encodeWire(v)
	if err != nil {
		return nil, err
	}
	return wireJSON.Marshal(w)
}

func encodeWire(v Value) (wireValue, error) {
	kind := v.Kind()
	w := wireValue{Type: kind.String()}

	switch tv := v.(type) {
	case Bool:
		w.Bool = &tv.Value
	case U8:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case U16:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case U32:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case U64:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case U128:
		w.Value = strp(tv.Value.Dec())
	case I8:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case I16:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case I32:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case I64:
		w.Value = strp(fmt.Sprintf("%d", tv.Value))
	case I128:
		w.Value = strp(tv.Value.Dec())
	case String:
		w.Value = strp(tv.Value)
	case Enum:
		w.Variant = u8p(tv.Discriminator)
		fields, err := encodeSlice(tv.Fields)
		if err != nil {
			return wireValue{}, err
		}
		w.Fields = fields
	case Array:
		w.ElementKind = strp(tv.ElementKind.String())
		elements, err := encodeSlice(tv.Elements)
		if err != nil {
			return wireValue{}, err
		}
		w.Elements = elements
	case Tuple:
		fields, err := encodeSlice(tv.Fields)
		if err != nil {
			return wireValue{}, err
		}
		w.Fields = fields
	case Map:
		w.KeyKind = strp(tv.KeyKind.String())
		w.ValueKind = strp(tv.ValueKind.String())
		entries := make([]wireMapEntry, 0, len(tv.Entries))
		for _, e := range tv.Entries {
			k, err := encodeWire(e.Key)
			if err != nil {
				return wireValue{}, err
			}
			val, err := encodeWire(e.Value)
			if err != nil {
				return wireValue{}, err
			}
			entries = append(entries, wireMapEntry{Key: k, Value: val})
		}
		w.Entries = entries
	case Address:
		if tv.IsNamed() {
			w.AddressKind = strp("Named")
			w.NamedID = u32p(tv.NamedID)
		} else {
			w.AddressKind = strp("Static")
			w.NodeID = strp(hex.EncodeToString(tv.NodeID[:]))
		}
	case Bucket:
		w.ID = u32p(tv.ID)
	case Proof:
		w.ID = u32p(tv.ID)
	case Expression:
		if tv.ExpressionKind == ExpressionEntireWorktop {
			w.Expression = strp("EntireWorktop")
		} else {
			w.Expression = strp("EntireAuthZone")
		}
	case Blob:
		w.Hash = strp(hex.EncodeToString(tv.Hash[:]))
	case Decimal:
		w.Value = strp(tv.Value.Truncate(DecimalPrecision).String())
	case PreciseDecimal:
		w.Value = strp(tv.Value.Truncate(PreciseDecimalPrecision).String())
	case NonFungibleLocalId:
		switch tv.LocalIDKind {
		case NFLocalIDString:
			w.LocalIDKind = strp("String")
			w.Value = strp(tv.StringValue)
		case NFLocalIDInteger:
			w.LocalIDKind = strp("Integer")
			w.Value = strp(tv.IntValue.Dec())
		case NFLocalIDBytes:
			w.LocalIDKind = strp("Bytes")
			w.Bytes = strp(hex.EncodeToString(tv.BytesValue))
		case NFLocalIDRUID:
			w.LocalIDKind = strp("RUID")
			w.Bytes = strp(hex.EncodeToString(tv.RUIDValue[:]))
		}
	case AddressReservation:
		w.ID = u32p(tv.ID)
	default:
		return wireValue{}, fmt.Errorf("value: unrecognized variant implementing Kind()=%s", kind)
	}
	return w, nil
}

func encodeSlice(values []Value) ([]wireValue, error) {
	out := make([]wireValue, 0, len(values))
	for _, v := range values {
		w, err := encodeWire(v)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Decode parses the canonical wire representation back into a Value. It
// fails (rather than panicking) on malformed input, satisfying C1's
// "partial for malformed inputs" contract.
func Decode(data []byte) (Value, error) {
	var w wireValue
	if err := wireJSON.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("value: decode: %w", err)
	}
	return decodeWire(w)
}

func parseKind(s string) (Kind, error) {
	for k := Kind(0); k < kindSentinel; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("value: unknown kind tag %q", s)
}

func decodeWire(w wireValue) (Value, error) {
	kind, err := parseKind(w.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindBool:
		if w.Bool == nil {
			return nil, fmt.Errorf("value: Bool missing bool field")
		}
		return Bool{Value: *w.Bool}, nil
	case KindU8, KindU16, KindU32, KindU64, KindU128, KindI8, KindI16, KindI32, KindI64, KindI128:
		return decodeInt(kind, w)
	case KindString:
		if w.Value == nil {
			return nil, fmt.Errorf("value: String missing value field")
		}
		return String{Value: *w.Value}, nil
	case KindEnum:
		if w.Variant == nil {
			return nil, fmt.Errorf("value: Enum missing variant field")
		}
		fields, err := decodeSlice(w.Fields)
		if err != nil {
			return nil, err
		}
		return Enum{Discriminator: *w.Variant, Fields: fields}, nil
	case KindArray:
		if w.ElementKind == nil {
			return nil, fmt.Errorf("value: Array missing element_kind field")
		}
		elemKind, err := parseKind(*w.ElementKind)
		if err != nil {
			return nil, err
		}
		elements, err := decodeSlice(w.Elements)
		if err != nil {
			return nil, err
		}
		return NewArray(elemKind, elements)
	case KindTuple:
		fields, err := decodeSlice(w.Fields)
		if err != nil {
			return nil, err
		}
		return Tuple{Fields: fields}, nil
	case KindMap:
		if w.KeyKind == nil || w.ValueKind == nil {
			return nil, fmt.Errorf("value: Map missing key_kind/value_value_kind field")
		}
		keyKind, err := parseKind(*w.KeyKind)
		if err != nil {
			return nil, err
		}
		valKind, err := parseKind(*w.ValueKind)
		if err != nil {
			return nil, err
		}
		entries := make([]MapEntry, 0, len(w.Entries))
		for _, e := range w.Entries {
			k, err := decodeWire(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := decodeWire(e.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: k, Value: val})
		}
		return NewMap(keyKind, valKind, entries)
	case KindAddress:
		return decodeAddress(w)
	case KindBucket:
		if w.ID == nil {
			return nil, fmt.Errorf("value: Bucket missing id field")
		}
		return Bucket{ID: *w.ID}, nil
	case KindProof:
		if w.ID == nil {
			return nil, fmt.Errorf("value: Proof missing id field")
		}
		return Proof{ID: *w.ID}, nil
	case KindExpression:
		if w.Expression == nil {
			return nil, fmt.Errorf("value: Expression missing expression field")
		}
		switch *w.Expression {
		case "EntireWorktop":
			return Expression{ExpressionKind: ExpressionEntireWorktop}, nil
		case "EntireAuthZone":
			return Expression{ExpressionKind: ExpressionEntireAuthZone}, nil
		default:
			return nil, fmt.Errorf("value: unknown expression %q", *w.Expression)
		}
	case KindBlob:
		if w.Hash == nil {
			return nil, fmt.Errorf("value: Blob missing hash field")
		}
		b, err := hex.DecodeString(*w.Hash)
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("value: Blob hash must be 32 bytes hex")
		}
		var out Blob
		copy(out.Hash[:], b)
		return out, nil
	case KindDecimal:
		if w.Value == nil {
			return nil, fmt.Errorf("value: Decimal missing value field")
		}
		d, err := decimalFromString(*w.Value)
		if err != nil {
			return nil, err
		}
		return NewDecimal(d), nil
	case KindPreciseDecimal:
		if w.Value == nil {
			return nil, fmt.Errorf("value: PreciseDecimal missing value field")
		}
		d, err := decimalFromString(*w.Value)
		if err != nil {
			return nil, err
		}
		return NewPreciseDecimal(d), nil
	case KindNonFungibleLocalId:
		return decodeNonFungibleLocalId(w)
	case KindAddressReservation:
		if w.ID == nil {
			return nil, fmt.Errorf("value: AddressReservation missing id field")
		}
		return AddressReservation{ID: *w.ID}, nil
	default:
		return nil, fmt.Errorf("value: unhandled kind %s", kind)
	}
}

func decodeSlice(wires []wireValue) ([]Value, error) {
	out := make([]Value, 0, len(wires))
	for _, w := range wires {
		v, err := decodeWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeInt(kind Kind, w wireValue) (Value, error) {
	if w.Value == nil {
		return nil, fmt.Errorf("value: %s missing value field", kind)
	}
	s := *w.Value
	switch kind {
	case KindU8:
		var v uint8
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad U8 %q: %w", s, err)
		}
		return U8{Value: v}, nil
	case KindU16:
		var v uint16
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad U16 %q: %w", s, err)
		}
		return U16{Value: v}, nil
	case KindU32:
		var v uint32
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad U32 %q: %w", s, err)
		}
		return U32{Value: v}, nil
	case KindU64:
		var v uint64
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad U64 %q: %w", s, err)
		}
		return U64{Value: v}, nil
	case KindU128:
		i, err := uint256.FromDecimal(s)
		if err != nil {
			return nil, fmt.Errorf("value: bad U128 %q: %w", s, err)
		}
		return U128{Value: i}, nil
	case KindI8:
		var v int8
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad I8 %q: %w", s, err)
		}
		return I8{Value: v}, nil
	case KindI16:
		var v int16
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad I16 %q: %w", s, err)
		}
		return I16{Value: v}, nil
	case KindI32:
		var v int32
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad I32 %q: %w", s, err)
		}
		return I32{Value: v}, nil
	case KindI64:
		var v int64
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return nil, fmt.Errorf("value: bad I64 %q: %w", s, err)
		}
		return I64{Value: v}, nil
	case KindI128:
		i, err := uint256.FromDecimal(s)
		if err != nil {
			return nil, fmt.Errorf("value: bad I128 %q: %w", s, err)
		}
		return I128{Value: i}, nil
	}
	return nil, fmt.Errorf("value: decodeInt: unreachable kind %s", kind)
}

func decodeAddress(w wireValue) (Value, error) {
	if w.AddressKind == nil {
		return nil, fmt.Errorf("value: Address missing address_kind field")
	}
	switch *w.AddressKind {
	case "Named":
		if w.NamedID == nil {
			return nil, fmt.Errorf("value: named Address missing named_id field")
		}
		return Address{AddressKind: AddressNamed, NamedID: *w.NamedID}, nil
	case "Static":
		if w.NodeID == nil {
			return nil, fmt.Errorf("value: static Address missing node_id field")
		}
		b, err := hex.DecodeString(*w.NodeID)
		if err != nil || len(b) != 30 {
			return nil, fmt.Errorf("value: Address node_id must be 30 bytes hex")
		}
		var out Address
		out.AddressKind = AddressStatic
		copy(out.NodeID[:], b)
		return out, nil
	default:
		return nil, fmt.Errorf("value: unknown address_kind %q", *w.AddressKind)
	}
}

func decodeNonFungibleLocalId(w wireValue) (Value, error) {
	if w.LocalIDKind == nil {
		return nil, fmt.Errorf("value: NonFungibleLocalId missing local_id_kind field")
	}
	switch *w.LocalIDKind {
	case "String":
		if w.Value == nil {
			return nil, fmt.Errorf("value: NonFungibleLocalId(String) missing value field")
		}
		return NonFungibleLocalId{LocalIDKind: NFLocalIDString, StringValue: *w.Value}, nil
	case "Integer":
		if w.Value == nil {
			return nil, fmt.Errorf("value: NonFungibleLocalId(Integer) missing value field")
		}
		i, err := uint256.FromDecimal(*w.Value)
		if err != nil {
			return nil, fmt.Errorf("value: bad NonFungibleLocalId(Integer) %q: %w", *w.Value, err)
		}
		return NonFungibleLocalId{LocalIDKind: NFLocalIDInteger, IntValue: i}, nil
	case "Bytes":
		if w.Bytes == nil {
			return nil, fmt.Errorf("value: NonFungibleLocalId(Bytes) missing bytes field")
		}
		b, err := hex.DecodeString(*w.Bytes)
		if err != nil {
			return nil, fmt.Errorf("value: bad NonFungibleLocalId(Bytes) hex: %w", err)
		}
		return NonFungibleLocalId{LocalIDKind: NFLocalIDBytes, BytesValue: b}, nil
	case "RUID":
		if w.Bytes == nil {
			return nil, fmt.Errorf("value: NonFungibleLocalId(RUID) missing bytes field")
		}
		b, err := hex.DecodeString(*w.Bytes)
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("value: NonFungibleLocalId(RUID) must be 32 bytes hex")
		}
		var out NonFungibleLocalId
		out.LocalIDKind = NFLocalIDRUID
		copy(out.RUIDValue[:], b)
		return out, nil
	default:
		return nil, fmt.Errorf("value: unknown local_id_kind %q", *w.LocalIDKind)
	}
}
