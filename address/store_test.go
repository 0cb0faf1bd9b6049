package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/value"
)

func staticAddress(entityType address.EntityType) value.Address {
	var node [30]byte
	node[0] = entityType.Byte()
	return value.Address{AddressKind: value.AddressStatic, NodeID: node}
}

func TestResolveStaticAddressEntityType(t *testing.T) {
	store := address.NewNamedAddressStore()
	resolved, err := store.Resolve(staticAddress(address.EntityTypeGlobalAccount))
	require.NoError(t, err)

	grouped, ok := resolved.EntityType()
	require.True(t, ok)
	require.True(t, grouped.IsAccount())
}

func TestResolveNamedAddressRequiresPriorAllocation(t *testing.T) {
	store := address.NewNamedAddressStore()
	named := value.Address{AddressKind: value.AddressNamed, NamedID: 0}

	_, err := store.Resolve(named)
	require.Error(t, err)

	var invalidErr *address.ErrInvalidNamedAddress
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, uint32(0), invalidErr.NamedID)
}

func TestResolveNamedAddressAfterAllocation(t *testing.T) {
	store := address.NewNamedAddressStore()
	pkg := staticAddress(address.EntityTypeGlobalPackage)
	store.Insert(0, address.NewBlueprintId(pkg, address.AccountBlueprint))

	named := value.Address{AddressKind: value.AddressNamed, NamedID: 0}
	resolved, err := store.Resolve(named)
	require.NoError(t, err)

	grouped, ok := resolved.EntityType()
	require.True(t, ok)
	require.True(t, grouped.IsAccount())
}

func TestGroupEntityTypeCategories(t *testing.T) {
	require.True(t, address.GroupEntityType(address.EntityTypeGlobalIdentity).IsIdentity())
	require.True(t, address.GroupEntityType(address.EntityTypeGlobalOneResourcePool).IsPool())
	require.True(t, address.GroupEntityType(address.EntityTypeGlobalValidator).IsValidator())
	require.True(t, address.GroupEntityType(address.EntityTypeGlobalAccessController).IsAccessController())
}

func TestNamedAddressStorePreservesInsertionOrder(t *testing.T) {
	store := address.NewNamedAddressStore()
	pkg := staticAddress(address.EntityTypeGlobalPackage)
	store.Insert(0, address.NewBlueprintId(pkg, address.AccountBlueprint))
	store.Insert(1, address.NewBlueprintId(pkg, address.IdentityBlueprint))

	require.Equal(t, 2, store.Len())

	bp, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, address.IdentityBlueprint, bp.Blueprint)
}
