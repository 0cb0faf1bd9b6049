// Package invocation resolves grouped instructions into invocation
// receivers and, for recognized native blueprints, into a domain-typed
// invocation that analyzers can pattern-match on directly.
package invocation

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/value"
)

// ModuleId names the sub-namespace of methods a method invocation targets.
type ModuleId uint8

const (
	ModuleMain ModuleId = iota
	ModuleMetadata
	ModuleRoleAssignment
	ModuleRoyalty
)

func (m ModuleId) String() string {
	switch m {
	case ModuleMain:
		return "Main"
	case ModuleMetadata:
		return "Metadata"
	case ModuleRoleAssignment:
		return "RoleAssignment"
	case ModuleRoyalty:
		return "Royalty"
	default:
		return "Unknown"
	}
}

// ReceiverKind tags which shape a ManifestInvocationReceiver carries.
type ReceiverKind uint8

const (
	ReceiverBlueprintFunction ReceiverKind = iota
	ReceiverDirectAccess
	ReceiverGlobalMethod
)

// Receiver identifies what an invocation instruction targets: a blueprint
// function (no instance), a direct-access internal vault, or a method on a
// resolved global address.
type Receiver struct {
	Kind ReceiverKind

	BlueprintFunction address.BlueprintId  // valid iff Kind == ReceiverBlueprintFunction
	DirectAccess      value.Address        // valid iff Kind == ReceiverDirectAccess
	GlobalMethod      address.ResolvedAddress // valid iff Kind == ReceiverGlobalMethod
	Module            ModuleId              // valid iff Kind == ReceiverGlobalMethod
}

// EntityType resolves the GroupedEntityType the receiver targets, where
// that is knowable (not for BlueprintFunction/DirectAccess receivers, which
// have no resolved component entity).
func (r Receiver) EntityType() (address.GroupedEntityType, bool) {
	if r.Kind != ReceiverGlobalMethod {
		return 0, false
	}
	return r.GlobalMethod.EntityType()
}
