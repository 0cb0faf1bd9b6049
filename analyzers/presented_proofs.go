package analyzers

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// PresentedProof is one create_proof_of_* call on an account.
type PresentedProof struct {
	ResourceAddress value.Address
	Amount          *value.Decimal              // set iff the proof was of-amount
	Ids             []value.NonFungibleLocalId  // set iff the proof was of-non-fungibles
}

// PresentedProofsOutput is the account → ordered proof sequence multimap.
type PresentedProofsOutput struct {
	ByAccount *orderedmap.OrderedMap[value.Address, []PresentedProof]
}

type PresentedProofs struct {
	byAccount *orderedmap.OrderedMap[value.Address, []PresentedProof]
}

func NewPresentedProofs() analysis.Analyzer {
	return &PresentedProofs{byAccount: orderedmap.New[value.Address, []PresentedProof]()}
}

func (*PresentedProofs) Name() string { return "presented_proofs" }

func (p *PresentedProofs) Visit(ctx analysis.Context) bool {
	if !ctx.IsInvocation {
		return true
	}
	acct, ok := accountEntity(ctx.Invocation.Receiver)
	if !ok {
		return true
	}
	accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
	if !ok {
		return true
	}

	var proof PresentedProof
	switch m := accountInv.Method.(type) {
	case native.AccountCreateProofOfAmount:
		amt := m.Amount
		proof = PresentedProof{ResourceAddress: m.ResourceAddress, Amount: &amt}
	case native.AccountCreateProofOfNonFungibles:
		proof = PresentedProof{ResourceAddress: m.ResourceAddress, Ids: m.Ids}
	default:
		return true
	}

	existing, _ := p.byAccount.Get(acct)
	p.byAccount.Set(acct, append(existing, proof))
	return true
}

func (*PresentedProofs) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*PresentedProofs) Requirement() bool { return true }

func (p *PresentedProofs) Output() any {
	return PresentedProofsOutput{ByAccount: p.byAccount}
}
