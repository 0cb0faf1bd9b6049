package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// ownerKeysMetadataKey is the metadata field name that makes a lock/set
// call against the Metadata module reserved; every other key is an
// ordinary metadata mutation.
const ownerKeysMetadataKey = "owner_keys"

// metadataKey extracts the key argument common to the Metadata module's
// lock(key) and set(key, value) methods. Both encode it as the first field
// of a Tuple-shaped args value.
func metadataKey(args value.Value) (string, bool) {
	tup, ok := args.(value.Tuple)
	if !ok || len(tup.Fields) == 0 {
		return "", false
	}
	s, ok := tup.Fields[0].(value.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// ReservedInstructionsOutput is the boolean flag set for instructions the
// wallet/UI must surface distinctly, regardless of what else the manifest
// does.
type ReservedInstructionsOutput struct {
	AccountLockFee                  bool
	AccountSecurify                 bool
	AccountLockOwnerKeysMetadata    bool
	AccountUpdateOwnerKeysMetadata  bool
	IdentityLockOwnerKeysMetadata   bool
	IdentityUpdateOwnerKeysMetadata bool
	IdentitySecurify                bool
	AccessController                bool
}

type ReservedInstructions struct {
	out ReservedInstructionsOutput
}

func NewReservedInstructions() analysis.Analyzer {
	return &ReservedInstructions{}
}

func (*ReservedInstructions) Name() string { return "reserved_instructions" }

func (a *ReservedInstructions) Visit(ctx analysis.Context) bool {
	if !ctx.IsInvocation {
		return true
	}
	r := ctx.Invocation.Receiver

	if _, ok := accountEntity(r); ok {
		if accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation); ok {
			switch accountInv.Method.(type) {
			case native.AccountLockFee, native.AccountLockContingentFee,
				native.AccountLockFeeAndWithdraw, native.AccountLockFeeAndWithdrawNonFungibles:
				a.out.AccountLockFee = true
			case native.AccountSecurify:
				a.out.AccountSecurify = true
			}
		}
		if r.Module == invocation.ModuleMetadata {
			if key, ok := metadataKey(ctx.Invocation.Args); ok && key == ownerKeysMetadataKey {
				switch ctx.Invocation.Name {
				case "lock":
					a.out.AccountLockOwnerKeysMetadata = true
				case "set":
					a.out.AccountUpdateOwnerKeysMetadata = true
				}
			}
		}
		return true
	}

	if _, ok := identityEntity(r); ok {
		if identityInv, ok := ctx.Invocation.Typed.(invocation.IdentityInvocation); ok {
			if _, ok := identityInv.Method.(native.IdentitySecurify); ok {
				a.out.IdentitySecurify = true
			}
		}
		if r.Module == invocation.ModuleMetadata {
			if key, ok := metadataKey(ctx.Invocation.Args); ok && key == ownerKeysMetadataKey {
				switch ctx.Invocation.Name {
				case "lock":
					a.out.IdentityLockOwnerKeysMetadata = true
				case "set":
					a.out.IdentityUpdateOwnerKeysMetadata = true
				}
			}
		}
		return true
	}

	if _, ok := accessControllerEntity(r); ok {
		a.out.AccessController = true
	}
	return true
}

func (*ReservedInstructions) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*ReservedInstructions) Requirement() bool { return true }

func (a *ReservedInstructions) Output() any { return a.out }
