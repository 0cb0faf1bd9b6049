// Package analyzers implements the concrete classifiers driven by the
// analysis engine: data-retrieval analyzers that summarize what a manifest
// touched, and classifiers that tag a manifest with a small vocabulary of
// high-level intents (Transfer, PoolContribution, ValidatorStake, ...).
package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

// accountEntity returns the Account entity address a Context's invocation
// targets, and ok=false if the receiver is not a resolved global method on
// an account.
func accountEntity(r invocation.Receiver) (value.Address, bool) {
	if r.Kind != invocation.ReceiverGlobalMethod {
		return value.Address{}, false
	}
	et, ok := r.EntityType()
	if !ok || !et.IsAccount() {
		return value.Address{}, false
	}
	return r.GlobalMethod.Address, true
}

func identityEntity(r invocation.Receiver) (value.Address, bool) {
	if r.Kind != invocation.ReceiverGlobalMethod {
		return value.Address{}, false
	}
	et, ok := r.EntityType()
	if !ok || !et.IsIdentity() {
		return value.Address{}, false
	}
	return r.GlobalMethod.Address, true
}

func accessControllerEntity(r invocation.Receiver) (value.Address, bool) {
	if r.Kind != invocation.ReceiverGlobalMethod {
		return value.Address{}, false
	}
	et, ok := r.EntityType()
	if !ok || !et.IsAccessController() {
		return value.Address{}, false
	}
	return r.GlobalMethod.Address, true
}

func validatorEntity(r invocation.Receiver) (value.Address, bool) {
	if r.Kind != invocation.ReceiverGlobalMethod {
		return value.Address{}, false
	}
	et, ok := r.EntityType()
	if !ok || !et.IsValidator() {
		return value.Address{}, false
	}
	return r.GlobalMethod.Address, true
}

// accountMethodRequiresAuth reports whether an Account method requires the
// owner's authorization rather than being a public method any caller may
// invoke.
func accountMethodRequiresAuth(m native.AccountMethod) bool {
	switch m.(type) {
	case native.AccountWithdraw, native.AccountWithdrawNonFungibles,
		native.AccountLockFee, native.AccountLockContingentFee,
		native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort,
		native.AccountCreateProofOfAmount, native.AccountCreateProofOfNonFungibles,
		native.AccountSecurify, native.AccountSetDefaultDepositRule,
		native.AccountSetResourcePreference, native.AccountRemoveResourcePreference,
		native.AccountAddAuthorizedDepositor, native.AccountRemoveAuthorizedDepositor,
		native.AccountBurn, native.AccountBurnNonFungibles,
		native.AccountLockFeeAndWithdraw, native.AccountLockFeeAndWithdrawNonFungibles:
		return true
	default:
		// deposit, deposit_batch, try_deposit_or_refund, try_deposit_batch_or_refund:
		// public methods any caller may invoke without the owner's auth.
		return false
	}
}

func identityMethodRequiresAuth(native.IdentityMethod) bool {
	// securify is the only identity method modeled, and it always
	// requires the owner's auth.
	return true
}

// OrderedSet is an insertion-order-preserving set of addresses, the shape
// every analyzer uses for "entities encountered/withdrawn-from/..." output
// fields.
type OrderedSet struct {
	order []value.Address
	seen  map[value.Address]struct{}
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[value.Address]struct{})}
}

func (s *OrderedSet) Add(a value.Address) {
	if _, ok := s.seen[a]; ok {
		return
	}
	s.seen[a] = struct{}{}
	s.order = append(s.order, a)
}

func (s *OrderedSet) Contains(a value.Address) bool {
	_, ok := s.seen[a]
	return ok
}

func (s *OrderedSet) Items() []value.Address { return s.order }

func (s *OrderedSet) Len() int { return len(s.order) }
