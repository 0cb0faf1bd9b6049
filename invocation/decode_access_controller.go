package invocation

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

const accessControllerBlueprint = address.AccessControllerBlueprint

func decodeAccessController(method string, args value.Value) (Invocation, bool, error) {
	f, err := fields(accessControllerBlueprint, method, args)
	if err != nil {
		return nil, false, err
	}

	switch method {
	case "create_proof":
		if err := want(accessControllerBlueprint, method, f, 0); err != nil {
			return nil, false, err
		}
		return AccessControllerInvocation{Method: native.AccessControllerCreateProof{}}, true, nil
	default:
		return nil, false, nil
	}
}
