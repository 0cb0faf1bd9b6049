package value_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/value"
)

func roundTrip(t *testing.T, v value.Value) value.Value {
	t.Helper()
	data, err := value.Encode(v)
	require.NoError(t, err)
	out, err := value.Decode(data)
	require.NoError(t, err)
	return out
}

func TestCodecRoundTripScalars(t *testing.T) {
	cases := []value.Value{
		value.Bool{Value: true},
		value.U8{Value: 7},
		value.U64{Value: 1 << 40},
		value.U128{Value: uint256.NewInt(123456789)},
		value.I32{Value: -42},
		value.I128{Value: uint256.NewInt(99)},
		value.String{Value: "hello manifest"},
	}
	for _, c := range cases {
		got := roundTrip(t, c)
		require.Equal(t, c, got)
	}
}

func TestCodecRoundTripDecimal(t *testing.T) {
	d := value.NewDecimal(decimal.RequireFromString("123.456"))
	got := roundTrip(t, d)
	gotDecimal, ok := got.(value.Decimal)
	require.True(t, ok)
	require.True(t, d.Value.Equal(gotDecimal.Value))
}

func TestCodecRoundTripPreciseDecimal(t *testing.T) {
	pd := value.NewPreciseDecimal(decimal.RequireFromString("0.000000000000000001"))
	got := roundTrip(t, pd)
	gotPD, ok := got.(value.PreciseDecimal)
	require.True(t, ok)
	require.True(t, pd.Value.Equal(gotPD.Value))
}

func TestCodecRoundTripNestedTupleArrayDecimalString(t *testing.T) {
	arr, err := value.NewArray(value.KindString, []value.Value{
		value.String{Value: "a"},
		value.String{Value: "b"},
	})
	require.NoError(t, err)

	tup := value.Tuple{Fields: []value.Value{
		arr,
		value.NewDecimal(decimal.RequireFromString("10.5")),
		value.U32{Value: 99},
	}}

	got := roundTrip(t, tup)
	gotTup, ok := got.(value.Tuple)
	require.True(t, ok)
	require.Len(t, gotTup.Fields, 3)

	gotArr, ok := gotTup.Fields[0].(value.Array)
	require.True(t, ok)
	require.Equal(t, value.KindString, gotArr.ElementKind)
	require.Len(t, gotArr.Elements, 2)

	gotDec, ok := gotTup.Fields[1].(value.Decimal)
	require.True(t, ok)
	require.Equal(t, "10.5", gotDec.Value.String())
}

func TestCodecRoundTripMapPreservesOrder(t *testing.T) {
	m, err := value.NewMap(value.KindString, value.KindU8, []value.MapEntry{
		{Key: value.String{Value: "z"}, Value: value.U8{Value: 1}},
		{Key: value.String{Value: "a"}, Value: value.U8{Value: 2}},
	})
	require.NoError(t, err)

	got := roundTrip(t, m)
	gotMap, ok := got.(value.Map)
	require.True(t, ok)
	require.Len(t, gotMap.Entries, 2)
	require.Equal(t, "z", gotMap.Entries[0].Key.(value.String).Value)
	require.Equal(t, "a", gotMap.Entries[1].Key.(value.String).Value)
}

func TestCodecRoundTripAddressStaticAndNamed(t *testing.T) {
	var node [30]byte
	node[0] = 0xAB
	static := value.Address{AddressKind: value.AddressStatic, NodeID: node}
	got := roundTrip(t, static)
	gotAddr, ok := got.(value.Address)
	require.True(t, ok)
	require.False(t, gotAddr.IsNamed())
	require.Equal(t, node, gotAddr.NodeID)

	named := value.Address{AddressKind: value.AddressNamed, NamedID: 7}
	got = roundTrip(t, named)
	gotAddr, ok = got.(value.Address)
	require.True(t, ok)
	require.True(t, gotAddr.IsNamed())
	require.Equal(t, uint32(7), gotAddr.NamedID)
}

func TestCodecRoundTripNonFungibleLocalIdVariants(t *testing.T) {
	cases := []value.NonFungibleLocalId{
		{LocalIDKind: value.NFLocalIDString, StringValue: "my-id"},
		{LocalIDKind: value.NFLocalIDInteger, IntValue: uint256.NewInt(42)},
		{LocalIDKind: value.NFLocalIDBytes, BytesValue: []byte{1, 2, 3}},
	}
	for _, c := range cases {
		got := roundTrip(t, c)
		gotID, ok := got.(value.NonFungibleLocalId)
		require.True(t, ok)
		require.Equal(t, c.LocalIDKind, gotID.LocalIDKind)
		switch c.LocalIDKind {
		case value.NFLocalIDString:
			require.Equal(t, c.StringValue, gotID.StringValue)
		case value.NFLocalIDInteger:
			require.Equal(t, c.IntValue.String(), gotID.IntValue.String())
		case value.NFLocalIDBytes:
			require.Equal(t, c.BytesValue, gotID.BytesValue)
		}
	}

	var ruid [32]byte
	ruid[31] = 0xFF
	withRUID := value.NonFungibleLocalId{LocalIDKind: value.NFLocalIDRUID, RUIDValue: ruid}
	got := roundTrip(t, withRUID)
	gotID, ok := got.(value.NonFungibleLocalId)
	require.True(t, ok)
	require.Equal(t, ruid, gotID.RUIDValue)
}

func TestCodecRoundTripBucketProofBlobExpressionReservation(t *testing.T) {
	require.Equal(t, value.Bucket{ID: 5}, roundTrip(t, value.Bucket{ID: 5}))
	require.Equal(t, value.Proof{ID: 9}, roundTrip(t, value.Proof{ID: 9}))
	require.Equal(t, value.AddressReservation{ID: 2}, roundTrip(t, value.AddressReservation{ID: 2}))

	var hash [32]byte
	hash[0] = 1
	require.Equal(t, value.Blob{Hash: hash}, roundTrip(t, value.Blob{Hash: hash}))

	require.Equal(t,
		value.Expression{ExpressionKind: value.ExpressionEntireWorktop},
		roundTrip(t, value.Expression{ExpressionKind: value.ExpressionEntireWorktop}))
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := value.Decode([]byte(`{"type":"NotAKind"}`))
	require.Error(t, err)

	_, err = value.Decode([]byte(`not json at all`))
	require.Error(t, err)

	_, err = value.Decode([]byte(`{"type":"Bool"}`))
	require.Error(t, err)
}

func TestCodecRoundTripEnum(t *testing.T) {
	e := value.Enum{Discriminator: 1, Fields: []value.Value{value.U8{Value: 3}}}
	got := roundTrip(t, e)
	gotEnum, ok := got.(value.Enum)
	require.True(t, ok)
	require.Equal(t, uint8(1), gotEnum.Discriminator)
	require.Len(t, gotEnum.Fields, 1)
}
