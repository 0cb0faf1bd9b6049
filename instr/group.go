package instr

import "fmt"

// Group is the coarse classification of an Instruction produced by C2.
// Downstream components pattern-match on Group rather than on the raw
// Instruction variant.
type Group uint8

const (
	GroupTakeFromWorktopByAmount Group = iota
	GroupTakeFromWorktopByIds
	GroupTakeAllFromWorktop
	GroupReturnToWorktop
	GroupAssertion
	GroupProof
	GroupAddressAllocation
	GroupBurnResource
	GroupSubintent
	GroupInvocationFunction
	GroupInvocationMethod
	GroupInvocationDirectVault
	GroupInvocationMetadata
	GroupInvocationRoleAssignment
	GroupInvocationRoyalty

	groupSentinel
)

var groupNames = [groupSentinel]string{
	GroupTakeFromWorktopByAmount:  "TakeFromWorktopByAmount",
	GroupTakeFromWorktopByIds:     "TakeFromWorktopByIds",
	GroupTakeAllFromWorktop:       "TakeAllFromWorktop",
	GroupReturnToWorktop:          "ReturnToWorktop",
	GroupAssertion:                "Assertion",
	GroupProof:                    "Proof",
	GroupAddressAllocation:        "AddressAllocation",
	GroupBurnResource:             "BurnResource",
	GroupSubintent:                "Subintent",
	GroupInvocationFunction:       "InvocationFunction",
	GroupInvocationMethod:         "InvocationMethod",
	GroupInvocationDirectVault:    "InvocationDirectVault",
	GroupInvocationMetadata:       "InvocationMetadata",
	GroupInvocationRoleAssignment: "InvocationRoleAssignment",
	GroupInvocationRoyalty:        "InvocationRoyalty",
}

func (g Group) String() string {
	if g >= groupSentinel {
		return "Unknown"
	}
	return groupNames[g]
}

// IsInvocation reports whether g is one of the six invocation sub-kinds.
func (g Group) IsInvocation() bool {
	return g >= GroupInvocationFunction && g <= GroupInvocationRoyalty
}

// GroupedInstruction pairs an Instruction with its C2 classification. The
// grouping is a pure function of the instruction; constructing one always
// succeeds since every Instruction variant maps to exactly one Group.
type GroupedInstruction struct {
	Group       Group
	Instruction Instruction
}

// classify classifies i into its coarse group.
func classify(i Instruction) Group {
	switch i.(type) {
	case TakeFromWorktop:
		return GroupTakeFromWorktopByAmount
	case TakeNonFungiblesFromWorktop:
		return GroupTakeFromWorktopByIds
	case TakeAllFromWorktop:
		return GroupTakeAllFromWorktop
	case ReturnToWorktop:
		return GroupReturnToWorktop
	case AssertWorktopContains, AssertWorktopContainsNonFungibles, AssertWorktopContainsAny:
		return GroupAssertion
	case PopFromAuthZone, PushToAuthZone,
		CreateProofFromAuthZoneOfAmount, CreateProofFromAuthZoneOfNonFungibles, CreateProofFromAuthZoneOfAll,
		CreateProofFromBucketOfAmount, CreateProofFromBucketOfNonFungibles, CreateProofFromBucketOfAll,
		DropProof, DropAuthZoneProofs, DropAuthZoneSignatureProofs, DropAllProofs, CloneProof:
		return GroupProof
	case AllocateGlobalAddress:
		return GroupAddressAllocation
	case BurnResource:
		return GroupBurnResource
	case YieldToParent, YieldToChild, VerifyParent:
		return GroupSubintent
	case CallFunction:
		return GroupInvocationFunction
	case CallMethod:
		return GroupInvocationMethod
	case CallDirectVaultMethod:
		return GroupInvocationDirectVault
	case CallMetadataMethod:
		return GroupInvocationMetadata
	case CallRoleAssignmentMethod:
		return GroupInvocationRoleAssignment
	case CallRoyaltyMethod:
		return GroupInvocationRoyalty
	default:
		panic(fmt.Sprintf("instr: classify: unhandled instruction kind %s", i.Kind()))
	}
}

// NewGroupedInstruction classifies i and pairs it with its Group.
func NewGroupedInstruction(i Instruction) GroupedInstruction {
	return GroupedInstruction{Group: classify(i), Instruction: i}
}
