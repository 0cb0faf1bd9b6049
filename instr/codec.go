package instr

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/radixdlt/manifest-analyzer/value"
)

// wireJSON mirrors the value package's jsoniter configuration so encoded
// instruction streams embed value.Encode's own wire shape verbatim.
var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// wireInstruction is the canonical JSON shape of one Instruction: a kind
// tag plus raw value-wire payloads for every field that carries a Value,
// and plain JSON for everything else (strings, bucket/proof/child ids).
type wireInstruction struct {
	Kind string `json:"kind"`

	Resource   jsoniter.RawMessage   `json:"resource,omitempty"`
	Amount     jsoniter.RawMessage   `json:"amount,omitempty"`
	Ids        []jsoniter.RawMessage `json:"ids,omitempty"`
	Bucket     jsoniter.RawMessage   `json:"bucket,omitempty"`
	Proof      jsoniter.RawMessage   `json:"proof,omitempty"`
	Package    jsoniter.RawMessage   `json:"package,omitempty"`
	Address    jsoniter.RawMessage   `json:"address,omitempty"`
	Blueprint  *string               `json:"blueprint,omitempty"`
	Function   *string               `json:"function,omitempty"`
	Method     *string               `json:"method,omitempty"`
	Args       jsoniter.RawMessage   `json:"args,omitempty"`
	ChildIndex *uint32               `json:"child_index,omitempty"`
	Access     jsoniter.RawMessage   `json:"access,omitempty"`
}

func encodeValue(v value.Value) (jsoniter.RawMessage, error) {
	b, err := value.Encode(v)
	if err != nil {
		return nil, err
	}
	return jsoniter.RawMessage(b), nil
}

func decodeValue(raw jsoniter.RawMessage) (value.Value, error) {
	return value.Decode([]byte(raw))
}

func encodeIds(ids []value.NonFungibleLocalId) ([]jsoniter.RawMessage, error) {
	out := make([]jsoniter.RawMessage, len(ids))
	for i, id := range ids {
		raw, err := encodeValue(id)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return out, nil
}

func decodeIds(raws []jsoniter.RawMessage) ([]value.NonFungibleLocalId, error) {
	out := make([]value.NonFungibleLocalId, len(raws))
	for i, raw := range raws {
		v, err := decodeValue(raw)
		if err != nil {
			return nil, err
		}
		id, ok := v.(value.NonFungibleLocalId)
		if !ok {
			return nil, fmt.Errorf("instr: expected non_fungible_local_id, got %s", v.Kind())
		}
		out[i] = id
	}
	return out, nil
}

// Encode marshals one instruction to its wire JSON form.
func Encode(ins Instruction) ([]byte, error) {
	w, err := encodeWire(ins)
	if err != nil {
		return nil, err
	}
	return wireJSON.Marshal(w)
}

// EncodeStream marshals an ordered instruction list, the unit a manifest
// analysis request/response actually exchanges.
func EncodeStream(instructions []Instruction) ([]byte, error) {
	wires := make([]wireInstruction, len(instructions))
	for i, ins := range instructions {
		w, err := encodeWire(ins)
		if err != nil {
			return nil, fmt.Errorf("instr: encode instruction %d: %w", i, err)
		}
		wires[i] = w
	}
	return wireJSON.Marshal(wires)
}

// Decode unmarshals one instruction from its wire JSON form.
func Decode(data []byte) (Instruction, error) {
	var w wireInstruction
	if err := wireJSON.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("instr: decode: %w", err)
	}
	return decodeWire(w)
}

// DecodeStream unmarshals an ordered instruction list.
func DecodeStream(data []byte) ([]Instruction, error) {
	var wires []wireInstruction
	if err := wireJSON.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("instr: decode stream: %w", err)
	}
	out := make([]Instruction, len(wires))
	for i, w := range wires {
		ins, err := decodeWire(w)
		if err != nil {
			return nil, fmt.Errorf("instr: decode instruction %d: %w", i, err)
		}
		out[i] = ins
	}
	return out, nil
}

func encodeWire(ins Instruction) (wireInstruction, error) {
	w := wireInstruction{Kind: ins.Kind().String()}
	var err error

	encResource := func(a value.Address) {
		if err == nil {
			w.Resource, err = encodeValue(a)
		}
	}
	encAmount := func(d value.Decimal) {
		if err == nil {
			w.Amount, err = encodeValue(d)
		}
	}
	encIds := func(ids []value.NonFungibleLocalId) {
		if err == nil {
			w.Ids, err = encodeIds(ids)
		}
	}
	encBucket := func(b value.Bucket) {
		if err == nil {
			w.Bucket, err = encodeValue(b)
		}
	}
	encProof := func(p value.Proof) {
		if err == nil {
			w.Proof, err = encodeValue(p)
		}
	}
	encArgs := func(v value.Value) {
		if err == nil {
			w.Args, err = encodeValue(v)
		}
	}

	switch ins := ins.(type) {
	case TakeFromWorktop:
		encResource(ins.Resource)
		encAmount(ins.Amount)
	case TakeNonFungiblesFromWorktop:
		encResource(ins.Resource)
		encIds(ins.Ids)
	case TakeAllFromWorktop:
		encResource(ins.Resource)
	case ReturnToWorktop:
		encBucket(ins.Bucket)
	case AssertWorktopContains:
		encResource(ins.Resource)
		encAmount(ins.Amount)
	case AssertWorktopContainsNonFungibles:
		encResource(ins.Resource)
		encIds(ins.Ids)
	case AssertWorktopContainsAny:
		encResource(ins.Resource)
	case PopFromAuthZone:
	case PushToAuthZone:
		encProof(ins.Proof)
	case CreateProofFromAuthZoneOfAmount:
		encResource(ins.Resource)
		encAmount(ins.Amount)
	case CreateProofFromAuthZoneOfNonFungibles:
		encResource(ins.Resource)
		encIds(ins.Ids)
	case CreateProofFromAuthZoneOfAll:
		encResource(ins.Resource)
	case CreateProofFromBucketOfAmount:
		encBucket(ins.Bucket)
		encAmount(ins.Amount)
	case CreateProofFromBucketOfNonFungibles:
		encBucket(ins.Bucket)
		encIds(ins.Ids)
	case CreateProofFromBucketOfAll:
		encBucket(ins.Bucket)
	case DropProof:
		encProof(ins.Proof)
	case DropAuthZoneProofs:
	case DropAuthZoneSignatureProofs:
	case DropAllProofs:
	case CloneProof:
		encProof(ins.Proof)
	case BurnResource:
		encBucket(ins.Bucket)
	case CallFunction:
		w.Blueprint, w.Function = strp(ins.Blueprint), strp(ins.Function)
		if err == nil {
			w.Package, err = encodeValue(ins.Package)
		}
		encArgs(ins.Args)
	case CallMethod:
		w.Method = strp(ins.Method)
		if err == nil {
			w.Address, err = encodeValue(ins.Address)
		}
		encArgs(ins.Args)
	case CallDirectVaultMethod:
		w.Method = strp(ins.Method)
		if err == nil {
			w.Address, err = encodeValue(ins.Address)
		}
		encArgs(ins.Args)
	case CallMetadataMethod:
		w.Method = strp(ins.Method)
		if err == nil {
			w.Address, err = encodeValue(ins.Address)
		}
		encArgs(ins.Args)
	case CallRoleAssignmentMethod:
		w.Method = strp(ins.Method)
		if err == nil {
			w.Address, err = encodeValue(ins.Address)
		}
		encArgs(ins.Args)
	case CallRoyaltyMethod:
		w.Method = strp(ins.Method)
		if err == nil {
			w.Address, err = encodeValue(ins.Address)
		}
		encArgs(ins.Args)
	case AllocateGlobalAddress:
		w.Blueprint = strp(ins.Blueprint)
		if err == nil {
			w.Package, err = encodeValue(ins.Package)
		}
	case YieldToParent:
		encArgs(ins.Args)
	case YieldToChild:
		w.ChildIndex = u32p(ins.ChildIndex)
		encArgs(ins.Args)
	case VerifyParent:
		if err == nil {
			w.Access, err = encodeValue(ins.Access)
		}
	default:
		return wireInstruction{}, fmt.Errorf("instr: encode: unrecognized instruction %T", ins)
	}
	return w, err
}

func strp(s string) *string { return &s }
func u32p(v uint32) *uint32 { return &v }

func decodeWire(w wireInstruction) (Instruction, error) {
	resource := func() (value.Address, error) { return decodeAddress(w.Resource, "resource") }
	amount := func() (value.Decimal, error) { return decodeDecimal(w.Amount, "amount") }
	ids := func() ([]value.NonFungibleLocalId, error) { return decodeIds(w.Ids) }
	bucket := func() (value.Bucket, error) { return decodeBucket(w.Bucket) }
	proof := func() (value.Proof, error) { return decodeProof(w.Proof) }
	addr := func(raw jsoniter.RawMessage, field string) (value.Address, error) { return decodeAddress(raw, field) }
	str := func(s *string, field string) (string, error) {
		if s == nil {
			return "", fmt.Errorf("instr: %q: missing %s", w.Kind, field)
		}
		return *s, nil
	}
	args := func() (value.Value, error) {
		if len(w.Args) == 0 {
			return value.Tuple{}, nil
		}
		return decodeValue(w.Args)
	}

	switch w.Kind {
	case KindTakeFromWorktop.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		a, err := amount()
		if err != nil {
			return nil, err
		}
		return TakeFromWorktop{Resource: r, Amount: a}, nil
	case KindTakeNonFungiblesFromWorktop.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		idList, err := ids()
		if err != nil {
			return nil, err
		}
		return TakeNonFungiblesFromWorktop{Resource: r, Ids: idList}, nil
	case KindTakeAllFromWorktop.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		return TakeAllFromWorktop{Resource: r}, nil
	case KindReturnToWorktop.String():
		b, err := bucket()
		if err != nil {
			return nil, err
		}
		return ReturnToWorktop{Bucket: b}, nil
	case KindAssertWorktopContains.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		a, err := amount()
		if err != nil {
			return nil, err
		}
		return AssertWorktopContains{Resource: r, Amount: a}, nil
	case KindAssertWorktopContainsNonFungibles.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		idList, err := ids()
		if err != nil {
			return nil, err
		}
		return AssertWorktopContainsNonFungibles{Resource: r, Ids: idList}, nil
	case KindAssertWorktopContainsAny.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		return AssertWorktopContainsAny{Resource: r}, nil
	case KindPopFromAuthZone.String():
		return PopFromAuthZone{}, nil
	case KindPushToAuthZone.String():
		p, err := proof()
		if err != nil {
			return nil, err
		}
		return PushToAuthZone{Proof: p}, nil
	case KindCreateProofFromAuthZoneOfAmount.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		a, err := amount()
		if err != nil {
			return nil, err
		}
		return CreateProofFromAuthZoneOfAmount{Resource: r, Amount: a}, nil
	case KindCreateProofFromAuthZoneOfNonFungibles.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		idList, err := ids()
		if err != nil {
			return nil, err
		}
		return CreateProofFromAuthZoneOfNonFungibles{Resource: r, Ids: idList}, nil
	case KindCreateProofFromAuthZoneOfAll.String():
		r, err := resource()
		if err != nil {
			return nil, err
		}
		return CreateProofFromAuthZoneOfAll{Resource: r}, nil
	case KindCreateProofFromBucketOfAmount.String():
		b, err := bucket()
		if err != nil {
			return nil, err
		}
		a, err := amount()
		if err != nil {
			return nil, err
		}
		return CreateProofFromBucketOfAmount{Bucket: b, Amount: a}, nil
	case KindCreateProofFromBucketOfNonFungibles.String():
		b, err := bucket()
		if err != nil {
			return nil, err
		}
		idList, err := ids()
		if err != nil {
			return nil, err
		}
		return CreateProofFromBucketOfNonFungibles{Bucket: b, Ids: idList}, nil
	case KindCreateProofFromBucketOfAll.String():
		b, err := bucket()
		if err != nil {
			return nil, err
		}
		return CreateProofFromBucketOfAll{Bucket: b}, nil
	case KindDropProof.String():
		p, err := proof()
		if err != nil {
			return nil, err
		}
		return DropProof{Proof: p}, nil
	case KindDropAuthZoneProofs.String():
		return DropAuthZoneProofs{}, nil
	case KindDropAuthZoneSignatureProofs.String():
		return DropAuthZoneSignatureProofs{}, nil
	case KindDropAllProofs.String():
		return DropAllProofs{}, nil
	case KindCloneProof.String():
		p, err := proof()
		if err != nil {
			return nil, err
		}
		return CloneProof{Proof: p}, nil
	case KindBurnResource.String():
		b, err := bucket()
		if err != nil {
			return nil, err
		}
		return BurnResource{Bucket: b}, nil
	case KindCallFunction.String():
		pkg, err := addr(w.Package, "package")
		if err != nil {
			return nil, err
		}
		blueprint, err := str(w.Blueprint, "blueprint")
		if err != nil {
			return nil, err
		}
		function, err := str(w.Function, "function")
		if err != nil {
			return nil, err
		}
		a, err := args()
		if err != nil {
			return nil, err
		}
		return CallFunction{Package: pkg, Blueprint: blueprint, Function: function, Args: a}, nil
	case KindCallMethod.String(), KindCallDirectVaultMethod.String(), KindCallMetadataMethod.String(),
		KindCallRoleAssignmentMethod.String(), KindCallRoyaltyMethod.String():
		a, err := addr(w.Address, "address")
		if err != nil {
			return nil, err
		}
		method, err := str(w.Method, "method")
		if err != nil {
			return nil, err
		}
		argVal, err := args()
		if err != nil {
			return nil, err
		}
		switch w.Kind {
		case KindCallMethod.String():
			return CallMethod{Address: a, Method: method, Args: argVal}, nil
		case KindCallDirectVaultMethod.String():
			return CallDirectVaultMethod{Address: a, Method: method, Args: argVal}, nil
		case KindCallMetadataMethod.String():
			return CallMetadataMethod{Address: a, Method: method, Args: argVal}, nil
		case KindCallRoleAssignmentMethod.String():
			return CallRoleAssignmentMethod{Address: a, Method: method, Args: argVal}, nil
		default:
			return CallRoyaltyMethod{Address: a, Method: method, Args: argVal}, nil
		}
	case KindAllocateGlobalAddress.String():
		pkg, err := addr(w.Package, "package")
		if err != nil {
			return nil, err
		}
		blueprint, err := str(w.Blueprint, "blueprint")
		if err != nil {
			return nil, err
		}
		return AllocateGlobalAddress{Package: pkg, Blueprint: blueprint}, nil
	case KindYieldToParent.String():
		a, err := args()
		if err != nil {
			return nil, err
		}
		return YieldToParent{Args: a}, nil
	case KindYieldToChild.String():
		if w.ChildIndex == nil {
			return nil, fmt.Errorf("instr: %q: missing child_index", w.Kind)
		}
		a, err := args()
		if err != nil {
			return nil, err
		}
		return YieldToChild{ChildIndex: *w.ChildIndex, Args: a}, nil
	case KindVerifyParent.String():
		if len(w.Access) == 0 {
			return nil, fmt.Errorf("instr: %q: missing access", w.Kind)
		}
		a, err := decodeValue(w.Access)
		if err != nil {
			return nil, err
		}
		return VerifyParent{Access: a}, nil
	default:
		return nil, fmt.Errorf("instr: decode: unrecognized kind %q", w.Kind)
	}
}

func decodeAddress(raw jsoniter.RawMessage, field string) (value.Address, error) {
	if len(raw) == 0 {
		return value.Address{}, fmt.Errorf("instr: missing %s", field)
	}
	v, err := decodeValue(raw)
	if err != nil {
		return value.Address{}, err
	}
	a, ok := v.(value.Address)
	if !ok {
		return value.Address{}, fmt.Errorf("instr: %s: expected address, got %s", field, v.Kind())
	}
	return a, nil
}

func decodeDecimal(raw jsoniter.RawMessage, field string) (value.Decimal, error) {
	if len(raw) == 0 {
		return value.Decimal{}, fmt.Errorf("instr: missing %s", field)
	}
	v, err := decodeValue(raw)
	if err != nil {
		return value.Decimal{}, err
	}
	d, ok := v.(value.Decimal)
	if !ok {
		return value.Decimal{}, fmt.Errorf("instr: %s: expected decimal, got %s", field, v.Kind())
	}
	return d, nil
}

func decodeBucket(raw jsoniter.RawMessage) (value.Bucket, error) {
	if len(raw) == 0 {
		return value.Bucket{}, fmt.Errorf("instr: missing bucket")
	}
	v, err := decodeValue(raw)
	if err != nil {
		return value.Bucket{}, err
	}
	b, ok := v.(value.Bucket)
	if !ok {
		return value.Bucket{}, fmt.Errorf("instr: expected bucket, got %s", v.Kind())
	}
	return b, nil
}

func decodeProof(raw jsoniter.RawMessage) (value.Proof, error) {
	if len(raw) == 0 {
		return value.Proof{}, fmt.Errorf("instr: missing proof")
	}
	v, err := decodeValue(raw)
	if err != nil {
		return value.Proof{}, err
	}
	p, ok := v.(value.Proof)
	if !ok {
		return value.Proof{}, fmt.Errorf("instr: expected proof, got %s", v.Kind())
	}
	return p, nil
}
