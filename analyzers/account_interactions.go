package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// AccountInteractionsOutput partitions the accounts a manifest touched by
// the kind of interaction observed.
type AccountInteractionsOutput struct {
	RequiringAuth []value.Address
	WithdrawnFrom []value.Address
	DepositedInto []value.Address
}

// AccountInteractions is pure data retrieval: permission always holds, and
// it has no requirement.
type AccountInteractions struct {
	requiringAuth *OrderedSet
	withdrawnFrom *OrderedSet
	depositedInto *OrderedSet
}

func NewAccountInteractions() analysis.Analyzer {
	return &AccountInteractions{
		requiringAuth: NewOrderedSet(),
		withdrawnFrom: NewOrderedSet(),
		depositedInto: NewOrderedSet(),
	}
}

func (a *AccountInteractions) Name() string { return "account_interactions" }

func (a *AccountInteractions) Visit(ctx analysis.Context) bool {
	if !ctx.IsInvocation {
		return true
	}
	acct, ok := accountEntity(ctx.Invocation.Receiver)
	if !ok {
		return true
	}
	typed, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
	if !ok {
		return true
	}

	if accountMethodRequiresAuth(typed.Method) {
		a.requiringAuth.Add(acct)
	}
	switch typed.Method.(type) {
	case native.AccountWithdraw, native.AccountWithdrawNonFungibles,
		native.AccountLockFeeAndWithdraw, native.AccountLockFeeAndWithdrawNonFungibles:
		a.withdrawnFrom.Add(acct)
	case native.AccountDeposit, native.AccountDepositBatch,
		native.AccountTryDepositOrRefund, native.AccountTryDepositBatchOrRefund,
		native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort:
		a.depositedInto.Add(acct)
	}
	return true
}

func (*AccountInteractions) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*AccountInteractions) Requirement() bool { return true }

func (a *AccountInteractions) Output() any {
	return AccountInteractionsOutput{
		RequiringAuth: a.requiringAuth.Items(),
		WithdrawnFrom: a.withdrawnFrom.Items(),
		DepositedInto: a.depositedInto.Items(),
	}
}
