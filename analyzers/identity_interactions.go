package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// IdentityInteractionsOutput is identity-interactions' mirror of
// AccountInteractionsOutput: identities have no withdraw/deposit methods,
// only auth-requiring ones.
type IdentityInteractionsOutput struct {
	RequiringAuth []value.Address
}

type IdentityInteractions struct {
	requiringAuth *OrderedSet
}

func NewIdentityInteractions() analysis.Analyzer {
	return &IdentityInteractions{requiringAuth: NewOrderedSet()}
}

func (a *IdentityInteractions) Name() string { return "identity_interactions" }

func (a *IdentityInteractions) Visit(ctx analysis.Context) bool {
	if !ctx.IsInvocation {
		return true
	}
	entity, ok := identityEntity(ctx.Invocation.Receiver)
	if !ok {
		return true
	}
	if _, ok := ctx.Invocation.Typed.(invocation.IdentityInvocation); ok {
		a.requiringAuth.Add(entity)
	}
	return true
}

func (*IdentityInteractions) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*IdentityInteractions) Requirement() bool { return true }

func (a *IdentityInteractions) Output() any {
	return IdentityInteractionsOutput{RequiringAuth: a.requiringAuth.Items()}
}
