package native

import "github.com/radixdlt/manifest-analyzer/value"

// PoolMethodKind tags which pool blueprint method was invoked. The same
// method set is shared by OneResourcePool, TwoResourcePool, and
// MultiResourcePool; the blueprint name itself (carried by the receiver)
// distinguishes which shape of pool it is.
type PoolMethodKind uint8

const (
	PoolMethodContribute PoolMethodKind = iota
	PoolMethodRedeem
	PoolMethodProtectedDeposit
	PoolMethodProtectedWithdraw
)

type PoolMethod interface {
	PoolMethodKind() PoolMethodKind
}

// PoolContribute supplies one bucket per resource the pool accepts; a
// OneResourcePool contribution carries a single bucket, Two/Multi carry
// more.
type PoolContribute struct {
	Buckets []value.Bucket
}

func (PoolContribute) PoolMethodKind() PoolMethodKind { return PoolMethodContribute }

// PoolRedeem exchanges a pool-unit bucket for a proportional share of the
// pool's underlying resources.
type PoolRedeem struct {
	PoolUnitBucket value.Bucket
}

func (PoolRedeem) PoolMethodKind() PoolMethodKind { return PoolMethodRedeem }

type PoolProtectedDeposit struct {
	Bucket value.Bucket
}

func (PoolProtectedDeposit) PoolMethodKind() PoolMethodKind { return PoolMethodProtectedDeposit }

type PoolProtectedWithdraw struct {
	ResourceAddress value.Address
	Amount          value.Decimal
}

func (PoolProtectedWithdraw) PoolMethodKind() PoolMethodKind { return PoolMethodProtectedWithdraw }
