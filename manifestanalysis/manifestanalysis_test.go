package manifestanalysis_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/manifestanalysis"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

func staticAddress(et address.EntityType, marker byte) value.Address {
	var nodeID [30]byte
	nodeID[0] = et.Byte()
	nodeID[1] = marker
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

func xrdResource() value.Address {
	return address.XRDResourceAddress
}

func accountA() value.Address { return staticAddress(address.EntityTypeGlobalAccount, 1) }
func accountB() value.Address { return staticAddress(address.EntityTypeGlobalAccount, 2) }

func decimalArg(n int64) value.Value { return value.NewDecimal(decimal.NewFromInt(n)) }

func withdrawCall(account, resource value.Address, amount int64) instr.CallMethod {
	return instr.CallMethod{
		Address: account,
		Method:  "withdraw",
		Args:    value.Tuple{Fields: []value.Value{resource, decimalArg(amount)}},
	}
}

func depositCall(account value.Address, bucketID uint32) instr.CallMethod {
	return instr.CallMethod{
		Address: account,
		Method:  "deposit",
		Args:    value.Tuple{Fields: []value.Value{value.Bucket{ID: bucketID}}},
	}
}

func lockFeeCall(account value.Address, amount int64) instr.CallMethod {
	return instr.CallMethod{
		Address: account,
		Method:  "lock_fee",
		Args:    value.Tuple{Fields: []value.Value{decimalArg(amount)}},
	}
}

// S1: a plain XRD transfer classifies as Transfer and SimpleTransfer, the
// sending account requires auth, and no reserved instruction fires.
func TestS1SimpleTransfer(t *testing.T) {
	resource := xrdResource()
	instructions := []instr.Instruction{
		withdrawCall(accountA(), resource, 10),
		instr.TakeFromWorktop{Resource: resource, Amount: value.NewDecimal(decimal.NewFromInt(10))},
		depositCall(accountB(), 1),
	}

	static, dynamic, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{})
	require.NoError(t, err)
	require.Nil(t, dynamic)
	require.Contains(t, static.Classifications, "transfer")
	require.Contains(t, static.Classifications, "simple_transfer")

	require.NotNil(t, static.EntitiesRequiringAuth)
	require.Equal(t, []value.Address{accountA()}, static.EntitiesRequiringAuth.Entities)

	require.NotNil(t, static.ReservedInstructions)
	require.False(t, static.ReservedInstructions.AccountLockFee)
	require.False(t, static.ReservedInstructions.AccessController)
}

// S2: prepending lock_fee still classifies as Transfer/SimpleTransfer but
// flags the reserved account_lock_fee instruction.
func TestS2TransferWithLockFee(t *testing.T) {
	resource := xrdResource()
	instructions := []instr.Instruction{
		lockFeeCall(accountA(), 1),
		withdrawCall(accountA(), resource, 10),
		instr.TakeFromWorktop{Resource: resource, Amount: value.NewDecimal(decimal.NewFromInt(10))},
		depositCall(accountB(), 2),
	}

	static, _, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{})
	require.NoError(t, err)
	require.Contains(t, static.Classifications, "transfer")
	require.True(t, static.ReservedInstructions.AccountLockFee)
}

// S3: an access-controller create_proof call flags the reserved
// access_controller instruction.
func TestS3AccessControllerCreateProof(t *testing.T) {
	accessController := staticAddress(address.EntityTypeGlobalAccessController, 1)
	instructions := []instr.Instruction{
		instr.CallMethod{Address: accessController, Method: "create_proof", Args: value.Tuple{}},
	}

	static, _, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{})
	require.NoError(t, err)
	require.True(t, static.ReservedInstructions.AccessController)
}

// S5: a withdraw with no matching deposit never classifies as Transfer.
func TestS5WithdrawWithoutDeposit(t *testing.T) {
	resource := xrdResource()
	instructions := []instr.Instruction{
		withdrawCall(accountA(), resource, 10),
		instr.TakeFromWorktop{Resource: resource, Amount: value.NewDecimal(decimal.NewFromInt(10))},
	}

	static, _, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{})
	require.NoError(t, err)
	require.NotContains(t, static.Classifications, "transfer")
	require.NotContains(t, static.Classifications, "simple_transfer")
}

func poolAddress() value.Address { return staticAddress(address.EntityTypeGlobalOneResourcePool, 1) }

func takeCall(resource value.Address, amount int64) instr.TakeFromWorktop {
	return instr.TakeFromWorktop{Resource: resource, Amount: value.NewDecimal(decimal.NewFromInt(amount))}
}

func contributeCall(pool value.Address, bucketID uint32) instr.CallMethod {
	return instr.CallMethod{
		Address: pool,
		Method:  "contribute",
		Args:    value.Tuple{Fields: []value.Value{value.Bucket{ID: bucketID}}},
	}
}

// S4: a genuine pool contribution alongside a stray transfer (a second
// resource withdrawn but deposited straight to an account rather than
// routed through the pool) still classifies coarsely as pool_contribution,
// but the detailed dynamic payload is withheld since it cannot be trusted.
func TestS4PoolContributionWithStrayTransfer(t *testing.T) {
	pool := poolAddress()
	resourceX := xrdResource()
	resourceY := staticAddress(address.EntityTypeGlobalFungibleResourceManager, 2)

	instructions := []instr.Instruction{
		// Stray transfer first: the worktop is still tracked here, so the
		// bucket this deposit consumes is known and the IO index records
		// it. A pool contribution's output is never statically bounded, so
		// the worktop interpreter goes untracked once it sees one — put
		// anything after the contribute call below and its bucket would be
		// unknown, making the stray transfer unobservable.
		withdrawCall(accountA(), resourceY, 5), // idx 0
		takeCall(resourceY, 5),                 // idx 1 -> bucket 1
		depositCall(accountB(), 1),             // idx 2: never routed through the pool

		withdrawCall(accountA(), resourceX, 10), // idx 3
		takeCall(resourceX, 10),                 // idx 4 -> bucket 4
		contributeCall(pool, 4),                 // idx 5
	}

	static, dynamic, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{Trace: trace.Trace{}})
	require.NoError(t, err)
	require.Contains(t, static.Classifications, "pool_contribution")

	require.NotNil(t, dynamic)
	require.Nil(t, dynamic.PoolContribution)
}
