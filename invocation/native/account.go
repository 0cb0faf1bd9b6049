// Package native holds the decoded argument structs for native blueprint
// methods a manifest may invoke: account, identity, the pool blueprints,
// validator, and access controller. Each method is a concrete Go type
// rather than a single struct with optional fields, mirroring the Value
// variant style used throughout this module.
package native

import "github.com/radixdlt/manifest-analyzer/value"

// AccountMethodKind tags which Account blueprint method was invoked.
type AccountMethodKind uint8

const (
	AccountMethodWithdraw AccountMethodKind = iota
	AccountMethodWithdrawNonFungibles
	AccountMethodLockFee
	AccountMethodLockContingentFee
	AccountMethodDeposit
	AccountMethodDepositBatch
	AccountMethodTryDepositOrRefund
	AccountMethodTryDepositBatchOrRefund
	AccountMethodTryDepositOrAbort
	AccountMethodTryDepositBatchOrAbort
	AccountMethodCreateProofOfAmount
	AccountMethodCreateProofOfNonFungibles
	AccountMethodSecurify
	AccountMethodSetDefaultDepositRule
	AccountMethodSetResourcePreference
	AccountMethodRemoveResourcePreference
	AccountMethodAddAuthorizedDepositor
	AccountMethodRemoveAuthorizedDepositor
	AccountMethodBurn
	AccountMethodBurnNonFungibles
	AccountMethodLockFeeAndWithdraw
	AccountMethodLockFeeAndWithdrawNonFungibles
)

// AccountMethod is the tagged sum type over decoded Account blueprint
// method invocations.
type AccountMethod interface {
	AccountMethodKind() AccountMethodKind
}

type AccountWithdraw struct {
	ResourceAddress value.Address
	Amount          value.Decimal
}

func (AccountWithdraw) AccountMethodKind() AccountMethodKind { return AccountMethodWithdraw }

type AccountWithdrawNonFungibles struct {
	ResourceAddress value.Address
	Ids             []value.NonFungibleLocalId
}

func (AccountWithdrawNonFungibles) AccountMethodKind() AccountMethodKind {
	return AccountMethodWithdrawNonFungibles
}

type AccountLockFee struct {
	Amount value.Decimal
}

func (AccountLockFee) AccountMethodKind() AccountMethodKind { return AccountMethodLockFee }

type AccountLockContingentFee struct {
	Amount value.Decimal
}

func (AccountLockContingentFee) AccountMethodKind() AccountMethodKind {
	return AccountMethodLockContingentFee
}

type AccountDeposit struct {
	Bucket value.Bucket
}

func (AccountDeposit) AccountMethodKind() AccountMethodKind { return AccountMethodDeposit }

type AccountDepositBatch struct {
	Buckets []value.Bucket
}

func (AccountDepositBatch) AccountMethodKind() AccountMethodKind { return AccountMethodDepositBatch }

type AccountTryDepositOrRefund struct {
	Bucket                  value.Bucket
	AuthorizedDepositorBadge value.Value // optional; nil if not supplied
}

func (AccountTryDepositOrRefund) AccountMethodKind() AccountMethodKind {
	return AccountMethodTryDepositOrRefund
}

type AccountTryDepositBatchOrRefund struct {
	Buckets                  []value.Bucket
	AuthorizedDepositorBadge value.Value
}

func (AccountTryDepositBatchOrRefund) AccountMethodKind() AccountMethodKind {
	return AccountMethodTryDepositBatchOrRefund
}

type AccountTryDepositOrAbort struct {
	Bucket                   value.Bucket
	AuthorizedDepositorBadge value.Value
}

func (AccountTryDepositOrAbort) AccountMethodKind() AccountMethodKind {
	return AccountMethodTryDepositOrAbort
}

type AccountTryDepositBatchOrAbort struct {
	Buckets                  []value.Bucket
	AuthorizedDepositorBadge value.Value
}

func (AccountTryDepositBatchOrAbort) AccountMethodKind() AccountMethodKind {
	return AccountMethodTryDepositBatchOrAbort
}

type AccountCreateProofOfAmount struct {
	ResourceAddress value.Address
	Amount          value.Decimal
}

func (AccountCreateProofOfAmount) AccountMethodKind() AccountMethodKind {
	return AccountMethodCreateProofOfAmount
}

type AccountCreateProofOfNonFungibles struct {
	ResourceAddress value.Address
	Ids             []value.NonFungibleLocalId
}

func (AccountCreateProofOfNonFungibles) AccountMethodKind() AccountMethodKind {
	return AccountMethodCreateProofOfNonFungibles
}

type AccountSecurify struct{}

func (AccountSecurify) AccountMethodKind() AccountMethodKind { return AccountMethodSecurify }

// DefaultDepositRule mirrors the ledger's three-way default deposit policy.
type DefaultDepositRule uint8

const (
	DefaultDepositRuleAccept DefaultDepositRule = iota
	DefaultDepositRuleReject
	DefaultDepositRuleAllowExisting
)

type AccountSetDefaultDepositRule struct {
	Default DefaultDepositRule
}

func (AccountSetDefaultDepositRule) AccountMethodKind() AccountMethodKind {
	return AccountMethodSetDefaultDepositRule
}

// ResourcePreference mirrors the ledger's per-resource allow/disallow
// override of the account's default deposit rule.
type ResourcePreference uint8

const (
	ResourcePreferenceAllowed ResourcePreference = iota
	ResourcePreferenceDisallowed
)

type AccountSetResourcePreference struct {
	ResourceAddress    value.Address
	ResourcePreference ResourcePreference
}

func (AccountSetResourcePreference) AccountMethodKind() AccountMethodKind {
	return AccountMethodSetResourcePreference
}

type AccountRemoveResourcePreference struct {
	ResourceAddress value.Address
}

func (AccountRemoveResourcePreference) AccountMethodKind() AccountMethodKind {
	return AccountMethodRemoveResourcePreference
}

type AccountAddAuthorizedDepositor struct {
	Badge value.Value
}

func (AccountAddAuthorizedDepositor) AccountMethodKind() AccountMethodKind {
	return AccountMethodAddAuthorizedDepositor
}

type AccountRemoveAuthorizedDepositor struct {
	Badge value.Value
}

func (AccountRemoveAuthorizedDepositor) AccountMethodKind() AccountMethodKind {
	return AccountMethodRemoveAuthorizedDepositor
}

type AccountBurn struct {
	Amount value.Decimal
}

func (AccountBurn) AccountMethodKind() AccountMethodKind { return AccountMethodBurn }

type AccountBurnNonFungibles struct {
	Ids []value.NonFungibleLocalId
}

func (AccountBurnNonFungibles) AccountMethodKind() AccountMethodKind { return AccountMethodBurnNonFungibles }

type AccountLockFeeAndWithdraw struct {
	AmountToLock    value.Decimal
	ResourceAddress value.Address
	Amount          value.Decimal
}

func (AccountLockFeeAndWithdraw) AccountMethodKind() AccountMethodKind {
	return AccountMethodLockFeeAndWithdraw
}

type AccountLockFeeAndWithdrawNonFungibles struct {
	AmountToLock    value.Decimal
	ResourceAddress value.Address
	Ids             []value.NonFungibleLocalId
}

func (AccountLockFeeAndWithdrawNonFungibles) AccountMethodKind() AccountMethodKind {
	return AccountMethodLockFeeAndWithdrawNonFungibles
}
