package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/trace"
)

type simpleTransferStep uint8

const (
	stepStart simpleTransferStep = iota
	stepAfterAccessControllerProof
	stepAfterLockFee
	stepAfterWithdraw
	stepAfterTake
	stepDone
)

// SimpleTransferOutput records whether the manifest matched the strict
// single-resource, single-sender, single-recipient shape.
type SimpleTransferOutput struct {
	OneToOne bool
}

// SimpleTransfer is a stricter finite-state machine than Transfer: at most
// one optional access-controller create_proof, then an optional lock_fee
// (plain or combined with the withdraw), exactly one withdraw, exactly one
// take-from-worktop, and exactly one deposit — in that order, with nothing
// else interleaved.
type SimpleTransfer struct {
	step simpleTransferStep
}

func NewSimpleTransfer() analysis.Analyzer { return &SimpleTransfer{} }

func (*SimpleTransfer) Name() string { return "simple_transfer" }

func (s *SimpleTransfer) Visit(ctx analysis.Context) bool {
	if ctx.IsInvocation {
		if _, ok := accessControllerEntity(ctx.Invocation.Receiver); ok {
			acInv, ok := ctx.Invocation.Typed.(invocation.AccessControllerInvocation)
			if !ok {
				return false
			}
			if _, ok := acInv.Method.(native.AccessControllerCreateProof); !ok || s.step != stepStart {
				return false
			}
			s.step = stepAfterAccessControllerProof
			return true
		}

		if _, ok := accountEntity(ctx.Invocation.Receiver); ok {
			accountInv, ok := ctx.Invocation.Typed.(invocation.AccountInvocation)
			if !ok {
				return false
			}
			switch accountInv.Method.(type) {
			case native.AccountLockFee:
				if s.step != stepStart && s.step != stepAfterAccessControllerProof {
					return false
				}
				s.step = stepAfterLockFee
				return true
			case native.AccountLockFeeAndWithdraw, native.AccountLockFeeAndWithdrawNonFungibles:
				if s.step != stepStart && s.step != stepAfterAccessControllerProof {
					return false
				}
				s.step = stepAfterWithdraw
				return true
			case native.AccountWithdraw, native.AccountWithdrawNonFungibles:
				if s.step != stepStart && s.step != stepAfterAccessControllerProof && s.step != stepAfterLockFee {
					return false
				}
				s.step = stepAfterWithdraw
				return true
			case native.AccountDeposit:
				if s.step != stepAfterTake {
					return false
				}
				s.step = stepDone
				return true
			default:
				return false
			}
		}
		return false
	}

	switch ctx.Grouped.Group {
	case instr.GroupTakeFromWorktopByAmount, instr.GroupTakeFromWorktopByIds, instr.GroupTakeAllFromWorktop:
		if s.step != stepAfterWithdraw {
			return false
		}
		s.step = stepAfterTake
		return true
	default:
		return false
	}
}

func (*SimpleTransfer) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (s *SimpleTransfer) Requirement() bool { return s.step == stepDone }

func (s *SimpleTransfer) Output() any { return SimpleTransferOutput{OneToOne: s.step == stepDone} }
