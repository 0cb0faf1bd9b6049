package invocation

import (
	"context"
	"fmt"
	"sync"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

// SchemaRegistry answers whether a (blueprint, module, method) triple is a
// known entry point, so Decode can skip attempting a built-in shape match
// against a method it has never heard of on a blueprint it does recognize
// (e.g. a future Account method this package has not been taught yet).
// A nil SchemaRegistry disables this check entirely.
type SchemaRegistry interface {
	Lookup(blueprint, module, method string) (bool, error)
}

type schemaKey struct {
	blueprint, module, method string
}

// StaticSchemaRegistry answers Lookup from a fixed, in-memory set seeded at
// construction time. Useful for tests and for environments with no live
// schema source.
type StaticSchemaRegistry struct {
	mu    sync.RWMutex
	known map[schemaKey]struct{}
}

func NewStaticSchemaRegistry() *StaticSchemaRegistry {
	return &StaticSchemaRegistry{known: make(map[schemaKey]struct{})}
}

func (r *StaticSchemaRegistry) Add(blueprint, module, method string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.known[schemaKey{blueprint, module, method}] = struct{}{}
}

func (r *StaticSchemaRegistry) Lookup(blueprint, module, method string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.known[schemaKey{blueprint, module, method}]
	return ok, nil
}

// CachedSchemaRegistry wraps a SchemaRegistry with an LRU cache of prior
// lookups, so a remote-backed registry isn't re-queried for the same
// (blueprint, module, method) triple across every instruction of a
// manifest.
type CachedSchemaRegistry struct {
	next  SchemaRegistry
	cache *lru.Cache[schemaKey, bool]
}

func NewCachedSchemaRegistry(next SchemaRegistry, size int) (*CachedSchemaRegistry, error) {
	cache, err := lru.New[schemaKey, bool](size)
	if err != nil {
		return nil, fmt.Errorf("invocation: new schema cache: %w", err)
	}
	return &CachedSchemaRegistry{next: next, cache: cache}, nil
}

func (r *CachedSchemaRegistry) Lookup(blueprint, module, method string) (bool, error) {
	key := schemaKey{blueprint, module, method}
	if known, ok := r.cache.Get(key); ok {
		return known, nil
	}
	known, err := r.next.Lookup(blueprint, module, method)
	if err != nil {
		return false, err
	}
	r.cache.Add(key, known)
	return known, nil
}

// RetryingSchemaRegistry wraps a SchemaRegistry that may hit a flaky
// upstream (a remote schema service) with an exponential backoff retry,
// bounded by ctx.
type RetryingSchemaRegistry struct {
	next SchemaRegistry
	ctx  context.Context
	newBackoff func() backoff.BackOff
}

func NewRetryingSchemaRegistry(ctx context.Context, next SchemaRegistry) *RetryingSchemaRegistry {
	return &RetryingSchemaRegistry{
		next: next,
		ctx:  ctx,
		newBackoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = 0
			return backoff.WithMaxRetries(b, 3)
		},
	}
}

func (r *RetryingSchemaRegistry) Lookup(blueprint, module, method string) (bool, error) {
	var known bool
	op := func() error {
		var err error
		known, err = r.next.Lookup(blueprint, module, method)
		return err
	}
	err := backoff.Retry(op, backoff.WithContext(r.newBackoff(), r.ctx))
	if err != nil {
		return false, fmt.Errorf("invocation: schema lookup for %s.%s: %w", blueprint, method, err)
	}
	return known, nil
}
