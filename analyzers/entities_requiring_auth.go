package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// EntitiesRequiringAuthOutput is the union of accounts and identities whose
// non-public methods were invoked.
type EntitiesRequiringAuthOutput struct {
	Entities []value.Address
}

type EntitiesRequiringAuth struct {
	entities *OrderedSet
}

func NewEntitiesRequiringAuth() analysis.Analyzer {
	return &EntitiesRequiringAuth{entities: NewOrderedSet()}
}

func (*EntitiesRequiringAuth) Name() string { return "entities_requiring_auth" }

func (a *EntitiesRequiringAuth) Visit(ctx analysis.Context) bool {
	if !ctx.IsInvocation {
		return true
	}
	if acct, ok := accountEntity(ctx.Invocation.Receiver); ok {
		if accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation); ok && accountMethodRequiresAuth(accountInv.Method) {
			a.entities.Add(acct)
		}
		return true
	}
	if ident, ok := identityEntity(ctx.Invocation.Receiver); ok {
		if identityInv, ok := ctx.Invocation.Typed.(invocation.IdentityInvocation); ok && identityMethodRequiresAuth(identityInv.Method) {
			a.entities.Add(ident)
		}
	}
	return true
}

func (*EntitiesRequiringAuth) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*EntitiesRequiringAuth) Requirement() bool { return true }

func (a *EntitiesRequiringAuth) Output() any {
	return EntitiesRequiringAuthOutput{Entities: a.entities.Items()}
}
