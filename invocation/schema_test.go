package invocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/invocation"
)

type countingRegistry struct {
	calls int
	known bool
	err   error
}

func (r *countingRegistry) Lookup(blueprint, module, method string) (bool, error) {
	r.calls++
	if r.err != nil {
		return false, r.err
	}
	return r.known, nil
}

func TestCachedSchemaRegistryOnlyQueriesOnce(t *testing.T) {
	inner := &countingRegistry{known: true}
	cached, err := invocation.NewCachedSchemaRegistry(inner, 16)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		known, err := cached.Lookup("Account", "Main", "withdraw")
		require.NoError(t, err)
		require.True(t, known)
	}
	require.Equal(t, 1, inner.calls)
}

func TestCachedSchemaRegistryDistinguishesKeys(t *testing.T) {
	inner := &countingRegistry{known: true}
	cached, err := invocation.NewCachedSchemaRegistry(inner, 16)
	require.NoError(t, err)

	_, err = cached.Lookup("Account", "Main", "withdraw")
	require.NoError(t, err)
	_, err = cached.Lookup("Account", "Main", "deposit")
	require.NoError(t, err)
	require.Equal(t, 2, inner.calls)
}

func TestRetryingSchemaRegistryEventuallyFails(t *testing.T) {
	inner := &countingRegistry{err: errors.New("upstream unavailable")}
	retrying := invocation.NewRetryingSchemaRegistry(context.Background(), inner)

	_, err := retrying.Lookup("Account", "Main", "withdraw")
	require.Error(t, err)
	require.Greater(t, inner.calls, 1)
}

func TestRetryingSchemaRegistrySucceeds(t *testing.T) {
	inner := &countingRegistry{known: true}
	retrying := invocation.NewRetryingSchemaRegistry(context.Background(), inner)

	known, err := retrying.Lookup("Account", "Main", "withdraw")
	require.NoError(t, err)
	require.True(t, known)
	require.Equal(t, 1, inner.calls)
}
