package analyzers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/analyzers"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

func staticAddr(et address.EntityType, marker byte) value.Address {
	var nodeID [30]byte
	nodeID[0] = et.Byte()
	nodeID[1] = marker
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

func accountReceiver(marker byte) invocation.Receiver {
	return invocation.Receiver{
		Kind:         invocation.ReceiverGlobalMethod,
		GlobalMethod: address.ResolvedAddress{Address: staticAddr(address.EntityTypeGlobalAccount, marker)},
	}
}

func withdrawContext(idx int) analysis.Context {
	return analysis.Context{
		Index:        idx,
		Grouped:      instr.GroupedInstruction{Group: instr.GroupInvocationMethod},
		IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: accountReceiver(1),
			Typed:    invocation.AccountInvocation{Method: native.AccountWithdraw{}},
		},
	}
}

func TestTransferRequiresBothWithdrawAndDeposit(t *testing.T) {
	xfer := analyzers.NewTransfer()

	require.True(t, xfer.Visit(withdrawContext(0)))
	require.False(t, xfer.Requirement(), "a withdraw with no deposit must not satisfy Transfer")
}

func TestTransferDisqualifiesOnRefundableDeposit(t *testing.T) {
	xfer := analyzers.NewTransfer()
	require.True(t, xfer.Visit(withdrawContext(0)))

	ctx := analysis.Context{
		Index:        1,
		Grouped:      instr.GroupedInstruction{Group: instr.GroupInvocationMethod},
		IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: accountReceiver(2),
			Typed:    invocation.AccountInvocation{Method: native.AccountTryDepositOrRefund{}},
		},
	}
	require.False(t, xfer.Visit(ctx), "a refundable deposit must break Transfer's permission")
}

func TestTransferSatisfiedByWithdrawThenDeposit(t *testing.T) {
	xfer := analyzers.NewTransfer()
	require.True(t, xfer.Visit(withdrawContext(0)))

	depositCtx := analysis.Context{
		Index:        1,
		Grouped:      instr.GroupedInstruction{Group: instr.GroupInvocationMethod},
		IsInvocation: true,
		Invocation: analysis.InvocationContext{
			Receiver: accountReceiver(2),
			Typed:    invocation.AccountInvocation{Method: native.AccountDeposit{}},
		},
	}
	require.True(t, xfer.Visit(depositCtx))
	require.True(t, xfer.Requirement())

	out, ok := xfer.Output().(analyzers.TransferOutput)
	require.True(t, ok)
	require.Equal(t, 1, out.WithdrawCount)
	require.Equal(t, 1, out.DepositCount)
}
