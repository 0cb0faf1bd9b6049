package instr_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/value"
)

func xrd() value.Address {
	var nodeID [30]byte
	nodeID[0] = 1
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

func roundTrip(t *testing.T, ins instr.Instruction) instr.Instruction {
	t.Helper()
	data, err := instr.Encode(ins)
	require.NoError(t, err)
	out, err := instr.Decode(data)
	require.NoError(t, err)
	return out
}

func TestCodecRoundTripTakeFromWorktop(t *testing.T) {
	ins := instr.TakeFromWorktop{Resource: xrd(), Amount: value.NewDecimal(decimal.NewFromInt(10))}
	got := roundTrip(t, ins)
	withdraw, ok := got.(instr.TakeFromWorktop)
	require.True(t, ok)
	require.Equal(t, ins.Resource, withdraw.Resource)
	require.True(t, ins.Amount.Value.Equal(withdraw.Amount.Value))
}

func TestCodecRoundTripCallMethod(t *testing.T) {
	ins := instr.CallMethod{
		Address: xrd(),
		Method:  "withdraw",
		Args:    value.Tuple{Fields: []value.Value{value.String{Value: "x"}}},
	}
	got := roundTrip(t, ins)
	call, ok := got.(instr.CallMethod)
	require.True(t, ok)
	require.Equal(t, ins.Address, call.Address)
	require.Equal(t, ins.Method, call.Method)
	require.Equal(t, ins.Args, call.Args)
}

func TestCodecRoundTripReturnToWorktop(t *testing.T) {
	ins := instr.ReturnToWorktop{Bucket: value.Bucket{ID: 3}}
	got := roundTrip(t, ins)
	require.Equal(t, ins, got)
}

func TestCodecStreamRoundTrip(t *testing.T) {
	stream := []instr.Instruction{
		instr.TakeAllFromWorktop{Resource: xrd()},
		instr.ReturnToWorktop{Bucket: value.Bucket{ID: 0}},
		instr.DropAllProofs{},
	}
	data, err := instr.EncodeStream(stream)
	require.NoError(t, err)
	got, err := instr.DecodeStream(data)
	require.NoError(t, err)
	require.Equal(t, stream, got)
}

func TestDecodeUnrecognizedKind(t *testing.T) {
	_, err := instr.Decode([]byte(`{"kind":"NotARealInstruction"}`))
	require.Error(t, err)
}
