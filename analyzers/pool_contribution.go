package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// PoolContributionOutput records which pools the manifest contributed to.
// ConsistentWithPool is false when some resource the manifest withdrew
// from an account was deposited back into an account directly rather than
// being routed through one of the Pools calls — a stray transfer
// alongside a genuine contribution. The manifest still classifies as
// PoolContribution in that case; only the detailed classification (which
// needs this field to be trustworthy) is withheld.
type PoolContributionOutput struct {
	Pools              []value.Address
	ConsistentWithPool bool
}

// PoolContribution requires at least one invocation of a pool blueprint's
// contribute method. It also tracks, purely from the statically-derived
// invocation IO index (withdraw/deposit amounts are always statically
// known; no execution trace is needed for this particular check), whether
// every withdrawn resource that reappears in a direct account deposit was
// first routed through a contribute call.
type PoolContribution struct {
	pools           *OrderedSet
	withdrawn       map[value.Address]struct{}
	suppliedToPool  map[value.Address]struct{}
	depositedDirect map[value.Address]struct{}
}

func NewPoolContribution() analysis.Analyzer {
	return &PoolContribution{
		pools:           NewOrderedSet(),
		withdrawn:       make(map[value.Address]struct{}),
		suppliedToPool:  make(map[value.Address]struct{}),
		depositedDirect: make(map[value.Address]struct{}),
	}
}

func (*PoolContribution) Name() string { return "pool_contribution" }

func (p *PoolContribution) Visit(ctx analysis.Context) bool {
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
	if _, ok := poolInv.Method.(native.PoolContribute); ok {
		p.pools.Add(ctx.Invocation.Receiver.GlobalMethod.Address)
		for resource := range ctx.Invocation.IO {
			p.suppliedToPool[resource] = struct{}{}
		}
	}
	return true
}

func (*PoolContribution) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (p *PoolContribution) Requirement() bool { return p.pools.Len() > 0 }

func (p *PoolContribution) Output() any {
	consistent := true
	for resource := range p.withdrawn {
		if _, deposited := p.depositedDirect[resource]; !deposited {
			continue
		}
		if _, supplied := p.suppliedToPool[resource]; !supplied {
			consistent = false
			break
		}
	}
	return PoolContributionOutput{Pools: p.pools.Items(), ConsistentWithPool: consistent}
}
