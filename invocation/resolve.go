package invocation

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/value"
)

// Resolve determines the invocation receiver for a grouped instruction,
// along with the method/function name and its argument Value. It returns
// ok == false for non-invocation instructions, and also for a CallFunction
// against a named package address (unresolvable to a concrete blueprint).
// It returns a non-nil error only when a method call's address is a named
// address that was never allocated earlier in the traversal — a fatal
// condition per the traversal's error taxonomy.
func Resolve(g instr.GroupedInstruction, store *address.NamedAddressStore) (receiver Receiver, name string, args value.Value, ok bool, err error) {
	switch ins := g.Instruction.(type) {
	case instr.CallFunction:
		if ins.Package.IsNamed() {
			return Receiver{}, "", nil, false, nil
		}
		bp := address.NewBlueprintId(ins.Package, ins.Blueprint)
		return Receiver{Kind: ReceiverBlueprintFunction, BlueprintFunction: bp}, ins.Function, ins.Args, true, nil

	case instr.CallDirectVaultMethod:
		return Receiver{Kind: ReceiverDirectAccess, DirectAccess: ins.Address}, ins.Method, ins.Args, true, nil

	case instr.CallMethod:
		return resolveGlobalMethod(ins.Address, ins.Method, ins.Args, ModuleMain, store)

	case instr.CallMetadataMethod:
		return resolveGlobalMethod(ins.Address, ins.Method, ins.Args, ModuleMetadata, store)

	case instr.CallRoleAssignmentMethod:
		return resolveGlobalMethod(ins.Address, ins.Method, ins.Args, ModuleRoleAssignment, store)

	case instr.CallRoyaltyMethod:
		return resolveGlobalMethod(ins.Address, ins.Method, ins.Args, ModuleRoyalty, store)

	default:
		return Receiver{}, "", nil, false, nil
	}
}

func resolveGlobalMethod(addr value.Address, method string, args value.Value, module ModuleId, store *address.NamedAddressStore) (Receiver, string, value.Value, bool, error) {
	resolved, err := store.Resolve(addr)
	if err != nil {
		return Receiver{}, "", nil, false, err
	}
	receiver := Receiver{Kind: ReceiverGlobalMethod, GlobalMethod: resolved, Module: module}
	return receiver, method, args, true, nil
}
