package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// PoolRedemptionOutput records which pools the manifest redeemed from.
// ConsistentWithPool mirrors PoolContributionOutput's field: it is false
// when some resource the manifest withdrew from an account was deposited
// back into an account directly without passing through a redeem call —
// a stray transfer alongside a genuine redemption.
type PoolRedemptionOutput struct {
	Pools              []value.Address
	ConsistentWithPool bool
}

type PoolRedemption struct {
	pools           *OrderedSet
	withdrawn       map[value.Address]struct{}
	touchedByPool   map[value.Address]struct{}
	depositedDirect map[value.Address]struct{}
}

func NewPoolRedemption() analysis.Analyzer {
	return &PoolRedemption{
		pools:           NewOrderedSet(),
		withdrawn:       make(map[value.Address]struct{}),
		touchedByPool:   make(map[value.Address]struct{}),
		depositedDirect: make(map[value.Address]struct{}),
	}
}

func (*PoolRedemption) Name() string { return "pool_redemption" }

func (p *PoolRedemption) Visit(ctx analysis.Context) bool {
	if !ctx.IsInvocation {
		return true
	}

	if accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation); ok {
		switch accountInv.Method.(type) {
		case native.AccountWithdraw, native.AccountWithdrawNonFungibles:
			for resource := range ctx.Invocation.IO {
				p.withdrawn[resource] = struct{}{}
			}
		case native.AccountDeposit, native.AccountDepositBatch,
			native.AccountTryDepositOrRefund, native.AccountTryDepositBatchOrRefund,
			native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort:
			for resource := range ctx.Invocation.IO {
				p.depositedDirect[resource] = struct{}{}
			}
		}
		return true
	}

	if ctx.Invocation.Receiver.Kind != invocation.ReceiverGlobalMethod {
		return true
	}
	et, ok := ctx.Invocation.Receiver.EntityType()
	if !ok || !et.IsPool() {
		return true
	}
	poolInv, ok := ctx.Invocation.Typed.(invocation.PoolInvocation)
	if !ok {
		return true
	}
	if _, ok := poolInv.Method.(native.PoolRedeem); ok {
		p.pools.Add(ctx.Invocation.Receiver.GlobalMethod.Address)
		for resource := range ctx.Invocation.IO {
			p.touchedByPool[resource] = struct{}{}
		}
	}
	return true
}

func (*PoolRedemption) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (p *PoolRedemption) Requirement() bool { return p.pools.Len() > 0 }

func (p *PoolRedemption) Output() any {
	consistent := true
	for resource := range p.withdrawn {
		if _, deposited := p.depositedDirect[resource]; !deposited {
			continue
		}
		if _, touched := p.touchedByPool[resource]; !touched {
			consistent = false
			break
		}
	}
	return PoolRedemptionOutput{Pools: p.pools.Items(), ConsistentWithPool: consistent}
}
