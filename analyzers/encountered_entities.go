package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// EncounteredEntitiesOutput is the set of static addresses read from each
// instruction's own address, package or resource field plus the resolved
// global-method receiver, in first-observation order. Named addresses are
// skipped, addresses nested inside invocation arguments are not collected,
// and a direct-vault call's vault address is collected although a vault is
// an internal node.
type EncounteredEntitiesOutput struct {
	Entities []value.Address
}

type EncounteredEntities struct {
	entities *OrderedSet
}

func NewEncounteredEntities() analysis.Analyzer {
	return &EncounteredEntities{entities: NewOrderedSet()}
}

func (*EncounteredEntities) Name() string { return "encountered_entities" }

func (a *EncounteredEntities) Visit(ctx analysis.Context) bool {
	switch ins := ctx.Grouped.Instruction.(type) {
	case instr.CallMethod:
		a.addIfStatic(ins.Address)
	case instr.CallMetadataMethod:
		a.addIfStatic(ins.Address)
	case instr.CallRoleAssignmentMethod:
		a.addIfStatic(ins.Address)
	case instr.CallRoyaltyMethod:
		a.addIfStatic(ins.Address)
	case instr.CallDirectVaultMethod:
		a.addIfStatic(ins.Address)
	case instr.CallFunction:
		a.addIfStatic(ins.Package)
	case instr.AllocateGlobalAddress:
		a.addIfStatic(ins.Package)
	case instr.TakeFromWorktop:
		a.addIfStatic(ins.Resource)
	case instr.TakeNonFungiblesFromWorktop:
		a.addIfStatic(ins.Resource)
	case instr.TakeAllFromWorktop:
		a.addIfStatic(ins.Resource)
	case instr.AssertWorktopContains:
		a.addIfStatic(ins.Resource)
	case instr.AssertWorktopContainsNonFungibles:
		a.addIfStatic(ins.Resource)
	case instr.CreateProofFromAuthZoneOfAmount:
		a.addIfStatic(ins.Resource)
	case instr.CreateProofFromAuthZoneOfNonFungibles:
		a.addIfStatic(ins.Resource)
	}
	if ctx.IsInvocation && ctx.Invocation.Receiver.Kind == invocation.ReceiverGlobalMethod {
		a.addIfStatic(ctx.Invocation.Receiver.GlobalMethod.Address)
	}
	return true
}

func (a *EncounteredEntities) addIfStatic(addr value.Address) {
	if addr.IsNamed() {
		return
	}
	a.entities.Add(addr)
}

func (*EncounteredEntities) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*EncounteredEntities) Requirement() bool { return true }

func (a *EncounteredEntities) Output() any {
	return EncounteredEntitiesOutput{Entities: a.entities.Items()}
}
