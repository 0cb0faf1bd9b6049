package analyzers

import (
	"github.com/shopspring/decimal"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
)

// permitWorktopHousekeeping reports whether an instruction is one of the
// worktop-movement/assertion/proof groups every validator classifier
// permits regardless of what else it's watching for.
func permitWorktopHousekeeping(g instr.Group) bool {
	switch g {
	case instr.GroupTakeFromWorktopByAmount, instr.GroupTakeFromWorktopByIds, instr.GroupTakeAllFromWorktop,
		instr.GroupReturnToWorktop, instr.GroupAssertion, instr.GroupProof:
		return true
	}
	return false
}

// ValidatorStakeOutput records the validators staked to.
type ValidatorStakeOutput struct {
	Validators []value.Address
}

// ValidatorStake permits only account withdraws/deposits/fee-locks/proofs,
// an access-controller create_proof, worktop movement, and the validator
// stake call itself; it requires that
// every account withdraw feeding the stake withdrew XRD and nothing else,
// and that a stake call was actually seen, per the ground truth's
// AccountOnlyXrdWithdraws + ValidatorStakeInstructionPresent requirement
// pair.
type ValidatorStake struct {
	validators  *OrderedSet
	onlyXRD     bool
	sawWithdraw bool
	sawStake    bool
}

func NewValidatorStake() analysis.Analyzer {
	return &ValidatorStake{validators: NewOrderedSet(), onlyXRD: true}
}

func (*ValidatorStake) Name() string { return "validator_stake" }

func (v *ValidatorStake) Visit(ctx analysis.Context) bool {
	if permitWorktopHousekeeping(ctx.Grouped.Group) {
		return true
	}
	if !ctx.IsInvocation {
		return false
	}

	if _, ok := accountEntity(ctx.Invocation.Receiver); ok {
		accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
		if !ok {
			return false
		}
		switch m := accountInv.Method.(type) {
		case native.AccountWithdraw:
			v.sawWithdraw = true
			v.onlyXRD = v.onlyXRD && m.ResourceAddress == address.XRDResourceAddress
			return true
		case native.AccountLockFeeAndWithdraw:
			v.sawWithdraw = true
			v.onlyXRD = v.onlyXRD && m.ResourceAddress == address.XRDResourceAddress
			return true
		case native.AccountDeposit, native.AccountDepositBatch,
			native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort,
			native.AccountLockFee, native.AccountLockContingentFee,
			native.AccountCreateProofOfAmount, native.AccountCreateProofOfNonFungibles:
			return true
		default:
			return false
		}
	}

	if _, ok := accessControllerEntity(ctx.Invocation.Receiver); ok {
		acInv, ok := ctx.Invocation.Typed.(invocation.AccessControllerInvocation)
		if !ok {
			return false
		}
		_, ok = acInv.Method.(native.AccessControllerCreateProof)
		return ok
	}

	if _, ok := validatorEntity(ctx.Invocation.Receiver); ok {
		validatorInv, ok := ctx.Invocation.Typed.(invocation.ValidatorInvocation)
		if !ok {
			return false
		}
		if _, ok := validatorInv.Method.(native.ValidatorStake); !ok {
			return false
		}
		v.sawStake = true
		v.validators.Add(ctx.Invocation.Receiver.GlobalMethod.Address)
		return true
	}

	return false
}

func (*ValidatorStake) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

// Requirement demands a validator stake call, backed by at least one
// account withdraw, with every withdraw seen along the way exactly XRD —
// a bare stake call with no matching withdraw is not enough, guarding
// against the false-positive classification of a manifest that merely
// mentions validator.stake with unrelated funding.
func (v *ValidatorStake) Requirement() bool { return v.sawStake && v.sawWithdraw && v.onlyXRD }

func (v *ValidatorStake) Output() any { return ValidatorStakeOutput{Validators: v.validators.Items()} }

// ValidatorUnstakeOutput records the validators unstaked from.
type ValidatorUnstakeOutput struct {
	Validators []value.Address
	// Balanced is true when the running liquid-stake-unit accumulator
	// (account-withdrawn minus validator-consumed, restricted to the one
	// resource the unstake call itself consumed) is zero at end of
	// traversal, as the dynamic requirement demands.
	Balanced bool
}

// ValidatorUnstake tracks how much of the specific liquid-stake-unit
// resource an unstake call consumed, versus how much account withdraws
// put on the worktop for that same resource; the classification's dynamic
// requirement is that this nets to zero (every withdrawn LSU was routed
// into an unstake call, none left over, none borrowed from elsewhere).
// Permitted instructions mirror ValidatorStake's set, substituting the
// unstake method for stake.
type ValidatorUnstake struct {
	validators  *OrderedSet
	lsuResource value.Address
	haveLSU     bool
	balance     decimal.Decimal
	sawUnstake  bool
}

func NewValidatorUnstake() analysis.Analyzer {
	return &ValidatorUnstake{validators: NewOrderedSet()}
}

func (*ValidatorUnstake) Name() string { return "validator_unstake" }

func (v *ValidatorUnstake) Visit(ctx analysis.Context) bool {
	if permitWorktopHousekeeping(ctx.Grouped.Group) {
		return true
	}
	if !ctx.IsInvocation {
		return false
	}

	if _, ok := accountEntity(ctx.Invocation.Receiver); ok {
		accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
		if !ok {
			return false
		}
		switch m := accountInv.Method.(type) {
		case native.AccountWithdraw:
			if v.haveLSU && m.ResourceAddress == v.lsuResource {
				v.balance = v.balance.Add(m.Amount.Value)
			}
			return true
		case native.AccountDeposit, native.AccountDepositBatch,
			native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort,
			native.AccountLockFee, native.AccountLockContingentFee,
			native.AccountCreateProofOfAmount, native.AccountCreateProofOfNonFungibles:
			return true
		default:
			return false
		}
	}

	if _, ok := accessControllerEntity(ctx.Invocation.Receiver); ok {
		acInv, ok := ctx.Invocation.Typed.(invocation.AccessControllerInvocation)
		if !ok {
			return false
		}
		_, ok = acInv.Method.(native.AccessControllerCreateProof)
		return ok
	}

	if _, ok := validatorEntity(ctx.Invocation.Receiver); ok {
		validatorInv, ok := ctx.Invocation.Typed.(invocation.ValidatorInvocation)
		if !ok {
			return false
		}
		if _, ok := validatorInv.Method.(native.ValidatorUnstake); !ok {
			return false
		}
		v.sawUnstake = true
		v.validators.Add(ctx.Invocation.Receiver.GlobalMethod.Address)
		for resource, rec := range ctx.Invocation.IO {
			if rec.Static.Out.IsZero() && len(rec.Static.OutIds) == 0 {
				continue
			}
			v.lsuResource = resource
			v.haveLSU = true
			v.balance = v.balance.Sub(rec.Static.Out)
		}
		return true
	}

	return false
}

func (v *ValidatorUnstake) VisitDynamic(ctx analysis.Context, changes trace.WorktopChanges) {
	if !v.haveLSU {
		return
	}
	for _, d := range changes.Deltas {
		if d.Resource != v.lsuResource {
			continue
		}
		v.balance = v.balance.Add(d.Amount)
	}
}

func (v *ValidatorUnstake) Requirement() bool {
	return v.sawUnstake && v.haveLSU && v.balance.IsZero()
}

func (v *ValidatorUnstake) Output() any {
	return ValidatorUnstakeOutput{Validators: v.validators.Items(), Balanced: v.Requirement()}
}

// ValidatorClaimXrdOutput records the validators claimed from.
type ValidatorClaimXrdOutput struct {
	Validators []value.Address
}

// ValidatorClaimXrd mirrors ValidatorStake's permission shape: it requires
// that a claim NFT was withdrawn from an account (the only resource kind a
// claim call consumes) and that a claim_xrd call was actually seen.
type ValidatorClaimXrd struct {
	validators    *OrderedSet
	sawWithdrawNF bool
	sawClaim      bool
}

func NewValidatorClaimXrd() analysis.Analyzer {
	return &ValidatorClaimXrd{validators: NewOrderedSet()}
}

func (*ValidatorClaimXrd) Name() string { return "validator_claim_xrd" }

func (v *ValidatorClaimXrd) Visit(ctx analysis.Context) bool {
	if permitWorktopHousekeeping(ctx.Grouped.Group) {
		return true
	}
	if !ctx.IsInvocation {
		return false
	}

	if _, ok := accountEntity(ctx.Invocation.Receiver); ok {
		accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
		if !ok {
			return false
		}
		switch accountInv.Method.(type) {
		case native.AccountWithdrawNonFungibles:
			v.sawWithdrawNF = true
			return true
		case native.AccountDeposit, native.AccountDepositBatch,
			native.AccountTryDepositOrAbort, native.AccountTryDepositBatchOrAbort,
			native.AccountLockFee, native.AccountLockContingentFee,
			native.AccountCreateProofOfAmount, native.AccountCreateProofOfNonFungibles:
			return true
		default:
			return false
		}
	}

	if _, ok := accessControllerEntity(ctx.Invocation.Receiver); ok {
		acInv, ok := ctx.Invocation.Typed.(invocation.AccessControllerInvocation)
		if !ok {
			return false
		}
		_, ok = acInv.Method.(native.AccessControllerCreateProof)
		return ok
	}

	if _, ok := validatorEntity(ctx.Invocation.Receiver); ok {
		validatorInv, ok := ctx.Invocation.Typed.(invocation.ValidatorInvocation)
		if !ok {
			return false
		}
		if _, ok := validatorInv.Method.(native.ValidatorClaimXrd); !ok {
			return false
		}
		v.sawClaim = true
		v.validators.Add(ctx.Invocation.Receiver.GlobalMethod.Address)
		return true
	}

	return false
}

func (*ValidatorClaimXrd) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (v *ValidatorClaimXrd) Requirement() bool { return v.sawClaim && v.sawWithdrawNF }

func (v *ValidatorClaimXrd) Output() any {
	return ValidatorClaimXrdOutput{Validators: v.validators.Items()}
}
