package ioindex_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/ioindex"
	"github.com/radixdlt/manifest-analyzer/value"
)

func xrd() value.Address {
	var nodeID [30]byte
	nodeID[0] = 1
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

func TestSetStaticOnlyYieldsKindStatic(t *testing.T) {
	idx := ioindex.New()
	idx.SetStatic(0, xrd(), ioindex.Movement{Out: decimal.NewFromInt(10)})

	rec, ok := idx.Lookup(0, xrd())
	require.True(t, ok)
	require.Equal(t, ioindex.KindStatic, rec.Kind)
}

func TestSetStaticThenDynamicCombines(t *testing.T) {
	idx := ioindex.New()
	idx.SetStatic(0, xrd(), ioindex.Movement{Out: decimal.NewFromInt(10)})
	idx.SetDynamic(0, xrd(), ioindex.Movement{Out: decimal.NewFromInt(10)})

	rec, ok := idx.Lookup(0, xrd())
	require.True(t, ok)
	require.Equal(t, ioindex.KindStaticAndDynamic, rec.Kind)
	require.True(t, rec.Static.Out.Equal(decimal.NewFromInt(10)))
	require.True(t, rec.Dynamic.Out.Equal(decimal.NewFromInt(10)))
}

func TestLookupAbsentKeyIsNoInteraction(t *testing.T) {
	idx := ioindex.New()
	_, ok := idx.Lookup(5, xrd())
	require.False(t, ok)
}

func TestForInstructionFiltersByIndex(t *testing.T) {
	idx := ioindex.New()
	idx.SetStatic(0, xrd(), ioindex.Movement{Out: decimal.NewFromInt(1)})
	idx.SetStatic(1, xrd(), ioindex.Movement{Out: decimal.NewFromInt(2)})

	byResource := idx.ForInstruction(0)
	require.Len(t, byResource, 1)
	require.Equal(t, 2, idx.Len())
}
