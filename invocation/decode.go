package invocation

import (
	"fmt"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

// InvocationKind tags which native blueprint a decoded Invocation targets.
type InvocationKind uint8

const (
	InvocationAccount InvocationKind = iota
	InvocationIdentity
	InvocationPool
	InvocationValidator
	InvocationAccessController
)

// Invocation is the tagged sum type over every decodable native blueprint
// invocation (TypedManifestNativeInvocation in the spec's vocabulary).
type Invocation interface {
	InvocationKind() InvocationKind
}

type AccountInvocation struct{ Method native.AccountMethod }

func (AccountInvocation) InvocationKind() InvocationKind { return InvocationAccount }

type IdentityInvocation struct{ Method native.IdentityMethod }

func (IdentityInvocation) InvocationKind() InvocationKind { return InvocationIdentity }

type PoolInvocation struct{ Method native.PoolMethod }

func (PoolInvocation) InvocationKind() InvocationKind { return InvocationPool }

type ValidatorInvocation struct{ Method native.ValidatorMethod }

func (ValidatorInvocation) InvocationKind() InvocationKind { return InvocationValidator }

type AccessControllerInvocation struct{ Method native.AccessControllerMethod }

func (AccessControllerInvocation) InvocationKind() InvocationKind { return InvocationAccessController }

// ErrTypedInvocationDecode is returned when a method is recognized as
// belonging to a native blueprint but its argument Value does not match
// the expected shape. This is a fatal, traversal-aborting condition.
type ErrTypedInvocationDecode struct {
	Blueprint string
	Method    string
	Reason    string
}

func (e *ErrTypedInvocationDecode) Error() string {
	return fmt.Sprintf("invocation: decode %s.%s: %s", e.Blueprint, e.Method, e.Reason)
}

// Decode attempts to decode a method/function invocation's arguments into
// a typed native Invocation. ok is false (with a nil error) when the
// blueprint or method is not one this package recognizes — the instruction
// remains visible to analyzers as a raw invocation. A non-nil error means
// the blueprint+method was recognized but args had the wrong shape.
//
// registry, when non-nil, is consulted first; if it reports the
// (blueprint, module, method) triple as unknown, decoding is skipped and
// the call is treated as unrecognized rather than attempting the built-in
// shape match. A nil registry always attempts the built-in shapes.
func Decode(blueprintName string, module ModuleId, method string, args value.Value, registry SchemaRegistry) (Invocation, bool, error) {
	if module != ModuleMain {
		return nil, false, nil
	}
	if registry != nil {
		known, err := registry.Lookup(blueprintName, "Main", method)
		if err != nil {
			return nil, false, err
		}
		if !known {
			return nil, false, nil
		}
	}

	switch blueprintName {
	case address.AccountBlueprint:
		return decodeAccount(method, args)
	case address.IdentityBlueprint:
		return decodeIdentity(method, args)
	case address.OneResourcePoolBlueprint, address.TwoResourcePoolBlueprint, address.MultiResourcePoolBlueprint:
		return decodePool(blueprintName, method, args)
	case address.ValidatorBlueprint:
		return decodeValidator(method, args)
	case address.AccessControllerBlueprint:
		return decodeAccessController(method, args)
	default:
		return nil, false, nil
	}
}

// fields returns the positional elements of a Tuple-shaped args Value. Any
// non-Tuple Value is reported as a decode error for the given
// blueprint/method; an empty Tuple yields no fields and no error, and the
// field count is checked separately by want.
func fields(blueprint, method string, args value.Value) ([]value.Value, error) {
	tup, ok := args.(value.Tuple)
	if !ok {
		return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: "arguments are not a Tuple"}
	}
	return tup.Fields, nil
}

func want(blueprint, method string, got []value.Value, n int) error {
	if len(got) != n {
		return &ErrTypedInvocationDecode{
			Blueprint: blueprint, Method: method,
			Reason: fmt.Sprintf("expected %d argument fields, got %d", n, len(got)),
		}
	}
	return nil
}

func asAddress(blueprint, method, field string, v value.Value) (value.Address, error) {
	a, ok := v.(value.Address)
	if !ok {
		return value.Address{}, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " is not an Address"}
	}
	return a, nil
}

func asDecimal(blueprint, method, field string, v value.Value) (value.Decimal, error) {
	d, ok := v.(value.Decimal)
	if !ok {
		return value.Decimal{}, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " is not a Decimal"}
	}
	return d, nil
}

func asBucket(blueprint, method, field string, v value.Value) (value.Bucket, error) {
	b, ok := v.(value.Bucket)
	if !ok {
		return value.Bucket{}, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " is not a Bucket"}
	}
	return b, nil
}

func asBucketArray(blueprint, method, field string, v value.Value) ([]value.Bucket, error) {
	arr, ok := v.(value.Array)
	if !ok {
		return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " is not an Array"}
	}
	out := make([]value.Bucket, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		b, ok := e.(value.Bucket)
		if !ok {
			return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " contains a non-Bucket element"}
		}
		out = append(out, b)
	}
	return out, nil
}

func asNonFungibleIdArray(blueprint, method, field string, v value.Value) ([]value.NonFungibleLocalId, error) {
	arr, ok := v.(value.Array)
	if !ok {
		return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " is not an Array"}
	}
	out := make([]value.NonFungibleLocalId, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		id, ok := e.(value.NonFungibleLocalId)
		if !ok {
			return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " contains a non-NonFungibleLocalId element"}
		}
		out = append(out, id)
	}
	return out, nil
}

// asOption unwraps a manifest Option, encoded as an Enum with discriminator
// 0 (None, no fields) or 1 (Some, one field). It returns nil, nil for None.
func asOption(blueprint, method, field string, v value.Value) (value.Value, error) {
	e, ok := v.(value.Enum)
	if !ok {
		return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " is not an Option-shaped Enum"}
	}
	switch e.Discriminator {
	case 0:
		return nil, nil
	case 1:
		if len(e.Fields) != 1 {
			return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " Some variant must carry exactly one field"}
		}
		return e.Fields[0], nil
	default:
		return nil, &ErrTypedInvocationDecode{Blueprint: blueprint, Method: method, Reason: field + " has an unrecognized Option discriminator"}
	}
}
