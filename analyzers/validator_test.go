package analyzers_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/analyzers"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/ioindex"
	"github.com/radixdlt/manifest-analyzer/value"
)

func validatorReceiver(marker byte) invocation.Receiver {
	return invocation.Receiver{
		Kind:         invocation.ReceiverGlobalMethod,
		GlobalMethod: address.ResolvedAddress{Address: staticAddr(address.EntityTypeGlobalValidator, marker)},
	}
}

func withdrawOf(resource value.Address, amount int64) analysis.Context {
	return analysis.Context{
		Index: 0, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: accountReceiver(1),
			Typed:    invocation.AccountInvocation{Method: native.AccountWithdraw{ResourceAddress: resource, Amount: value.Decimal{Value: decimal.NewFromInt(amount)}}},
		},
	}
}

func stakeCall() analysis.Context {
	return analysis.Context{
		Index: 1, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: validatorReceiver(1),
			Typed:    invocation.ValidatorInvocation{Method: native.ValidatorStake{}},
		},
	}
}

func TestValidatorStakeRejectsBareStakeWithNoWithdraw(t *testing.T) {
	vs := analyzers.NewValidatorStake()
	require.True(t, vs.Visit(stakeCall()))
	require.False(t, vs.Requirement(), "a stake call with no account withdraw at all must not classify")
}

func TestValidatorStakeRejectsNonXRDWithdraw(t *testing.T) {
	vs := analyzers.NewValidatorStake()
	other := staticAddr(address.EntityTypeGlobalFungibleResourceManager, 7)
	require.True(t, vs.Visit(withdrawOf(other, 10)))
	require.True(t, vs.Visit(stakeCall()))
	require.False(t, vs.Requirement(), "a withdraw of a resource other than XRD must disqualify the stake classifier")
}

func TestValidatorStakeSatisfiedByXRDWithdrawThenStake(t *testing.T) {
	vs := analyzers.NewValidatorStake()
	require.True(t, vs.Visit(withdrawOf(address.XRDResourceAddress, 10)))
	require.True(t, vs.Visit(stakeCall()))
	require.True(t, vs.Requirement())

	out, ok := vs.Output().(analyzers.ValidatorStakeOutput)
	require.True(t, ok)
	require.Len(t, out.Validators, 1)
}

func TestValidatorStakeRejectsDisallowedInvocation(t *testing.T) {
	vs := analyzers.NewValidatorStake()
	require.True(t, vs.Visit(withdrawOf(address.XRDResourceAddress, 10)))

	ctx := analysis.Context{
		Index: 1, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: accountReceiver(2),
			Typed:    invocation.AccountInvocation{Method: native.AccountSecurify{}},
		},
	}
	require.False(t, vs.Visit(ctx), "an account method outside the permitted set must break permission")
}

func TestValidatorClaimXrdRejectsBareClaimWithNoWithdraw(t *testing.T) {
	vc := analyzers.NewValidatorClaimXrd()
	ctx := analysis.Context{
		Index: 0, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: validatorReceiver(1),
			Typed:    invocation.ValidatorInvocation{Method: native.ValidatorClaimXrd{}},
		},
	}
	require.True(t, vc.Visit(ctx))
	require.False(t, vc.Requirement(), "a claim_xrd call with no claim-NFT withdraw must not classify")
}

func TestValidatorClaimXrdSatisfiedByWithdrawNonFungiblesThenClaim(t *testing.T) {
	vc := analyzers.NewValidatorClaimXrd()
	withdrawCtx := analysis.Context{
		Index: 0, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: accountReceiver(1),
			Typed:    invocation.AccountInvocation{Method: native.AccountWithdrawNonFungibles{}},
		},
	}
	require.True(t, vc.Visit(withdrawCtx))

	claimCtx := analysis.Context{
		Index: 1, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: validatorReceiver(1),
			Typed:    invocation.ValidatorInvocation{Method: native.ValidatorClaimXrd{}},
		},
	}
	require.True(t, vc.Visit(claimCtx))
	require.True(t, vc.Requirement())
}

func TestValidatorUnstakeBalancesAgainstOnlyTheLSUResource(t *testing.T) {
	vu := analyzers.NewValidatorUnstake()
	lsu := staticAddr(address.EntityTypeGlobalFungibleResourceManager, 9)
	other := staticAddr(address.EntityTypeGlobalFungibleResourceManager, 2)

	// An unrelated withdraw that happens before the unstake call must not
	// enter the balance at all: at this point the analyzer hasn't learned
	// which resource is the LSU yet.
	require.True(t, vu.Visit(withdrawOf(other, 3)))

	unstakeCtx := analysis.Context{
		Index: 1, Grouped: instr.GroupedInstruction{Group: instr.GroupInvocationMethod}, IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: validatorReceiver(1),
			Typed:    invocation.ValidatorInvocation{Method: native.ValidatorUnstake{}},
			IO: map[value.Address]ioindex.Record{
				lsu: {Kind: ioindex.KindStatic, Static: ioindex.Movement{Out: decimal.NewFromInt(5)}},
			},
		},
	}
	require.True(t, vu.Visit(unstakeCtx))
	require.False(t, vu.Requirement(), "the LSU consumed by unstake was never withdrawn, balance must not net to zero")

	require.True(t, vu.Visit(withdrawOf(lsu, 5)))
	require.True(t, vu.Requirement())
}
