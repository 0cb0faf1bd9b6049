package instr_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/value"
)

func TestClassifyWorktopTakeVariants(t *testing.T) {
	resource := value.Address{}

	g := instr.NewGroupedInstruction(instr.TakeFromWorktop{
		Resource: resource,
		Amount:   value.NewDecimal(decimal.NewFromInt(10)),
	})
	require.Equal(t, instr.GroupTakeFromWorktopByAmount, g.Group)

	g = instr.NewGroupedInstruction(instr.TakeNonFungiblesFromWorktop{Resource: resource})
	require.Equal(t, instr.GroupTakeFromWorktopByIds, g.Group)

	g = instr.NewGroupedInstruction(instr.TakeAllFromWorktop{Resource: resource})
	require.Equal(t, instr.GroupTakeAllFromWorktop, g.Group)
}

func TestClassifyInvocationVariants(t *testing.T) {
	cases := []struct {
		instr instr.Instruction
		want  instr.Group
	}{
		{instr.CallFunction{}, instr.GroupInvocationFunction},
		{instr.CallMethod{}, instr.GroupInvocationMethod},
		{instr.CallDirectVaultMethod{}, instr.GroupInvocationDirectVault},
		{instr.CallMetadataMethod{}, instr.GroupInvocationMetadata},
		{instr.CallRoleAssignmentMethod{}, instr.GroupInvocationRoleAssignment},
		{instr.CallRoyaltyMethod{}, instr.GroupInvocationRoyalty},
	}
	for _, c := range cases {
		g := instr.NewGroupedInstruction(c.instr)
		require.Equal(t, c.want, g.Group)
		require.True(t, g.Group.IsInvocation())
	}
}

func TestClassifyProofVariants(t *testing.T) {
	nonInvocation := []instr.Instruction{
		instr.PopFromAuthZone{},
		instr.DropAllProofs{},
		instr.CloneProof{},
		instr.CreateProofFromBucketOfAll{},
	}
	for _, i := range nonInvocation {
		g := instr.NewGroupedInstruction(i)
		require.Equal(t, instr.GroupProof, g.Group)
		require.False(t, g.Group.IsInvocation())
	}
}

func TestClassifySubintentAndAddressAllocation(t *testing.T) {
	require.Equal(t, instr.GroupSubintent, instr.NewGroupedInstruction(instr.YieldToParent{}).Group)
	require.Equal(t, instr.GroupSubintent, instr.NewGroupedInstruction(instr.YieldToChild{}).Group)
	require.Equal(t, instr.GroupSubintent, instr.NewGroupedInstruction(instr.VerifyParent{}).Group)
	require.Equal(t, instr.GroupAddressAllocation, instr.NewGroupedInstruction(instr.AllocateGlobalAddress{}).Group)
	require.Equal(t, instr.GroupBurnResource, instr.NewGroupedInstruction(instr.BurnResource{}).Group)
}

func TestGroupStringUnknown(t *testing.T) {
	var beyond instr.Group = 255
	require.Equal(t, "Unknown", beyond.String())
}
