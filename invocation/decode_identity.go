package invocation

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

const identityBlueprint = address.IdentityBlueprint

func decodeIdentity(method string, args value.Value) (Invocation, bool, error) {
	f, err := fields(identityBlueprint, method, args)
	if err != nil {
		return nil, false, err
	}

	switch method {
	case "securify":
		if err := want(identityBlueprint, method, f, 0); err != nil {
			return nil, false, err
		}
		return IdentityInvocation{Method: native.IdentitySecurify{}}, true, nil
	default:
		return nil, false, nil
	}
}
