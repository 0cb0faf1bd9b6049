package invocation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/value"
)

func TestResolveCallMethodOnStaticAddress(t *testing.T) {
	store := address.NewNamedAddressStore()
	addr := staticAddress(byte(address.EntityTypeGlobalAccount))
	args := value.Tuple{Fields: []value.Value{dec("1")}}
	grouped := instr.NewGroupedInstruction(instr.CallMethod{Address: addr, Method: "lock_fee", Args: args})

	receiver, name, resolvedArgs, ok, err := invocation.Resolve(grouped, store)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "lock_fee", name)
	require.Equal(t, args, resolvedArgs)
	require.Equal(t, invocation.ReceiverGlobalMethod, receiver.Kind)
	require.Equal(t, invocation.ModuleMain, receiver.Module)
}

func TestResolveCallMethodOnUnallocatedNamedAddressIsFatal(t *testing.T) {
	store := address.NewNamedAddressStore()
	addr := value.Address{AddressKind: value.AddressNamed, NamedID: 42}
	grouped := instr.NewGroupedInstruction(instr.CallMethod{Address: addr, Method: "lock_fee", Args: value.Tuple{}})

	_, _, _, ok, err := invocation.Resolve(grouped, store)
	require.False(t, ok)
	require.Error(t, err)

	var notAllocated *address.ErrInvalidNamedAddress
	require.ErrorAs(t, err, &notAllocated)
}

func TestResolveCallMethodOnAllocatedNamedAddress(t *testing.T) {
	store := address.NewNamedAddressStore()
	pkg := staticAddress(byte(address.EntityTypeGlobalPackage))
	bp := address.NewBlueprintId(pkg, address.AccountBlueprint)
	store.Insert(0, bp)

	addr := value.Address{AddressKind: value.AddressNamed, NamedID: 0}
	grouped := instr.NewGroupedInstruction(instr.CallMethod{Address: addr, Method: "lock_fee", Args: value.Tuple{}})

	receiver, _, _, ok, err := invocation.Resolve(grouped, store)
	require.NoError(t, err)
	require.True(t, ok)

	entityType, ok := receiver.EntityType()
	require.True(t, ok)
	require.True(t, entityType.IsAccount())
}

func TestResolveCallFunctionWithStaticPackage(t *testing.T) {
	store := address.NewNamedAddressStore()
	pkg := staticAddress(byte(address.EntityTypeGlobalPackage))
	args := value.Tuple{Fields: []value.Value{}}
	grouped := instr.NewGroupedInstruction(instr.CallFunction{
		Package: pkg, Blueprint: "Proxy", Function: "instantiate", Args: args,
	})

	receiver, name, _, ok, err := invocation.Resolve(grouped, store)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "instantiate", name)
	require.Equal(t, invocation.ReceiverBlueprintFunction, receiver.Kind)
	require.Equal(t, "Proxy", receiver.BlueprintFunction.Blueprint)
}

func TestResolveCallFunctionWithNamedPackageIsUnresolvable(t *testing.T) {
	store := address.NewNamedAddressStore()
	pkg := value.Address{AddressKind: value.AddressNamed, NamedID: 7}
	grouped := instr.NewGroupedInstruction(instr.CallFunction{
		Package: pkg, Blueprint: "Proxy", Function: "instantiate", Args: value.Tuple{},
	})

	_, _, _, ok, err := invocation.Resolve(grouped, store)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolveNonInvocationInstructionIsNotResolvable(t *testing.T) {
	store := address.NewNamedAddressStore()
	grouped := instr.NewGroupedInstruction(instr.PopFromAuthZone{})

	_, _, _, ok, err := invocation.Resolve(grouped, store)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolveCallDirectVaultMethod(t *testing.T) {
	store := address.NewNamedAddressStore()
	addr := staticAddress(byte(address.EntityTypeInternalFungibleVault))
	grouped := instr.NewGroupedInstruction(instr.CallDirectVaultMethod{Address: addr, Method: "recall", Args: value.Tuple{}})

	receiver, name, _, ok, err := invocation.Resolve(grouped, store)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "recall", name)
	require.Equal(t, invocation.ReceiverDirectAccess, receiver.Kind)
	require.Equal(t, addr, receiver.DirectAccess)
}
