package analysis_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// typedProbe records the Typed invocation seen for every instruction it
// visits, so tests can assert on whether the resolver decoded it.
type typedProbe struct {
	seen []invocation.Invocation
}

func newTypedProbe() analysis.Analyzer { return &typedProbe{} }

func (*typedProbe) Name() string { return "typed_probe" }

func (p *typedProbe) Visit(ctx analysis.Context) bool {
	if ctx.IsInvocation {
		p.seen = append(p.seen, ctx.Invocation.Typed)
	}
	return true
}

func (*typedProbe) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (*typedProbe) Requirement() bool { return true }

func (p *typedProbe) Output() any { return p.seen }

func staticAccount(marker byte) value.Address {
	var nodeID [30]byte
	nodeID[0] = address.EntityTypeGlobalAccount.Byte()
	nodeID[1] = marker
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

// A CallMethod against a statically-addressed account (the common case —
// real ledger accounts are never named within the manifest that spends
// from them) must still resolve to a typed AccountInvocation, since its
// EntityType is derivable from the node id's leading byte alone.
func TestStaticAddressInvocationDecodesTyped(t *testing.T) {
	account := staticAccount(1)
	resource := staticAccount(9) // any static address works as a resource stand-in here

	instructions := []instr.Instruction{
		instr.CallMethod{
			Address: account,
			Method:  "withdraw",
			Args: value.Tuple{Fields: []value.Value{
				resource,
				value.NewDecimal(decimal.NewFromInt(10)),
			}},
		},
	}

	engine := analysis.NewEngine([]analysis.Factory{newTypedProbe}, nil, nil, nil)
	result, err := engine.Run(instructions, false, nil)
	require.NoError(t, err)

	probe, ok := result.Outputs["typed_probe"].([]invocation.Invocation)
	require.True(t, ok)
	require.Len(t, probe, 1)
	require.NotNil(t, probe[0])

	_, ok = probe[0].(invocation.AccountInvocation)
	require.True(t, ok, "expected a static-address withdraw call to decode as AccountInvocation")
}
