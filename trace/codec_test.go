package trace_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

func xrd() value.Address {
	var nodeID [30]byte
	nodeID[0] = 1
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

func TestCodecRoundTrip(t *testing.T) {
	t1 := trace.Trace{
		2: trace.WorktopChanges{Deltas: []trace.ResourceDelta{
			{Resource: xrd(), Amount: decimal.NewFromInt(-10)},
		}},
		5: trace.WorktopChanges{Deltas: []trace.ResourceDelta{
			{Resource: xrd(), Amount: decimal.NewFromInt(10)},
		}},
	}

	data, err := trace.Encode(t1)
	require.NoError(t, err)

	got, err := trace.Decode(data)
	require.NoError(t, err)

	require.Len(t, got, 2)
	changes, ok := got.At(2)
	require.True(t, ok)
	require.Len(t, changes.Deltas, 1)
	require.Equal(t, xrd(), changes.Deltas[0].Resource)
	require.True(t, changes.Deltas[0].Amount.Equal(decimal.NewFromInt(-10)))
}

func TestCodecEmptyTrace(t *testing.T) {
	data, err := trace.Encode(nil)
	require.NoError(t, err)
	got, err := trace.Decode(data)
	require.NoError(t, err)
	require.Len(t, got, 0)
}
