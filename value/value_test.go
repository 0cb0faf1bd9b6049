package value_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/value"
)

func TestNewArrayRejectsHeterogeneousKind(t *testing.T) {
	_, err := value.NewArray(value.KindU8, []value.Value{
		value.U8{Value: 1},
		value.String{Value: "oops"},
	})
	require.Error(t, err)
}

func TestNewArrayAcceptsHomogeneousKind(t *testing.T) {
	arr, err := value.NewArray(value.KindU8, []value.Value{
		value.U8{Value: 1},
		value.U8{Value: 2},
	})
	require.NoError(t, err)
	require.Equal(t, value.KindArray, arr.Kind())
	require.Len(t, arr.Elements, 2)
}

func TestNewMapRejectsMismatchedValueKind(t *testing.T) {
	_, err := value.NewMap(value.KindString, value.KindU64, []value.MapEntry{
		{Key: value.String{Value: "a"}, Value: value.U64{Value: 1}},
		{Key: value.String{Value: "b"}, Value: value.String{Value: "not a u64"}},
	})
	require.Error(t, err)
}

func TestDecimalTruncatesToPrecision(t *testing.T) {
	raw := decimal.RequireFromString("1.1234567890123456789")
	d := value.NewDecimal(raw)
	require.Equal(t, "1.123456789012345678", d.Value.String())
}

func TestPreciseDecimalTruncatesToPrecision(t *testing.T) {
	raw := decimal.RequireFromString("1.1").Div(decimal.RequireFromString("3")).Truncate(80)
	pd := value.NewPreciseDecimal(raw)
	require.LessOrEqual(t, len(pd.Value.String())-2, 64+1)
}

func TestAddressIsNamed(t *testing.T) {
	named := value.Address{AddressKind: value.AddressNamed, NamedID: 3}
	require.True(t, named.IsNamed())

	static := value.Address{AddressKind: value.AddressStatic}
	require.False(t, static.IsNamed())
}

func TestKindStringNamesAllDefinedKinds(t *testing.T) {
	for k := value.Kind(0); k.Valid(); k++ {
		require.NotEqual(t, "Unknown", k.String(), "kind %d should have a name", k)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var beyond value.Kind = 255
	require.Equal(t, "Unknown", beyond.String())
	require.False(t, beyond.Valid())
}

func u256(v uint64) *uint256.Int { return uint256.NewInt(v) }
