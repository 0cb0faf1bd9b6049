package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
)

// TransferOutput records that the manifest is a pure resource transfer:
// some number of account withdraws feeding, via the worktop, some number
// of account deposits.
type TransferOutput struct {
	WithdrawCount int
	DepositCount  int
}

// Transfer permits only account withdraws, account deposits (including the
// try_deposit_or_abort variants), a plain account lock_fee, an
// access-controller create_proof, worktop takes/returns, and assertions;
// it requires at least one withdraw and one deposit, and forbids the
// refund-shaped deposit variants (a refundable
// deposit means the manifest is hedging, which disqualifies the plain
// Transfer classification).
type Transfer struct {
	withdraws int
	deposits  int
}

func NewTransfer() analysis.Analyzer { return &Transfer{} }

func (*Transfer) Name() string { return "transfer" }

func (t *Transfer) Visit(ctx analysis.Context) bool {
	switch ctx.Grouped.Group {
	case instr.GroupTakeFromWorktopByAmount, instr.GroupTakeFromWorktopByIds, instr.GroupTakeAllFromWorktop,
		instr.GroupReturnToWorktop, instr.GroupAssertion:
		return true
	}

	if !ctx.IsInvocation {
		return false
	}
	if _, ok := accessControllerEntity(ctx.Invocation.Receiver); ok {
		acInv, ok := ctx.Invocation.Typed.(invocation.AccessControllerInvocation)
		if !ok {
			return false
		}
		_, ok = acInv.Method.(native.AccessControllerCreateProof)
		return ok
	}
	if _, ok := accountEntity(ctx.Invocation.Receiver); !ok {
		return false
	}
	accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
	if !ok {
		return false
	}
	switch m := accountInv.Method.(type) {
	case native.AccountWithdraw, native.AccountWithdrawNonFungibles:
		t.withdraws++
		return true
	case native.AccountDeposit, native.AccountDepositBatch,
		native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort:
		t.deposits++
		return true
	case native.AccountLockFee:
		return true
	case native.AccountTryDepositOrRefund, native.AccountTryDepositBatchOrRefund:
		_ = m
		return false
	default:
		return false
	}
}

func (*Transfer) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (t *Transfer) Requirement() bool { return t.withdraws > 0 && t.deposits > 0 }

func (t *Transfer) Output() any {
	return TransferOutput{WithdrawCount: t.withdraws, DepositCount: t.deposits}
}
