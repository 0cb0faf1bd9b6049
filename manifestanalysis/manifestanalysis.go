// Package manifestanalysis is the top-level entry point: it wires the
// analysis engine together with the full analyzer catalogue and shapes the
// engine's raw per-analyzer output map into the StaticAnalysis/
// DynamicAnalysis structs external callers consume.
package manifestanalysis

import (
	"go.uber.org/zap"

	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/analyzers"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/metrics"
	"github.com/radixdlt/manifest-analyzer/trace"
)

// StaticAnalysis is always produced, from the instruction stream alone.
type StaticAnalysis struct {
	AccountInteractions  *analyzers.AccountInteractionsOutput
	IdentityInteractions *analyzers.IdentityInteractionsOutput
	PresentedProofs      *analyzers.PresentedProofsOutput
	EntitiesRequiringAuth *analyzers.EntitiesRequiringAuthOutput
	ReservedInstructions *analyzers.ReservedInstructionsOutput
	EncounteredEntities  *analyzers.EncounteredEntitiesOutput
	Classifications      []string
}

// DynamicAnalysis is only produced when an execution trace was supplied.
// It embeds StaticAnalysis (every static field is reproduced) plus the
// detailed, classifier-specific data that needs runtime observation.
type DynamicAnalysis struct {
	StaticAnalysis
	Transfer             *analyzers.TransferOutput
	SimpleTransfer       *analyzers.SimpleTransferOutput
	PoolContribution     *analyzers.PoolContributionOutput
	PoolRedemption       *analyzers.PoolRedemptionOutput
	ValidatorStake       *analyzers.ValidatorStakeOutput
	ValidatorUnstake     *analyzers.ValidatorUnstakeOutput
	ValidatorClaimXrd    *analyzers.ValidatorClaimXrdOutput
	AccountSettingsUpdate *analyzers.AccountSettingsUpdateOutput
}

// catalogue returns a fresh factory list covering every analyzer in the
// spec's §4.7 catalogue, choosing General vs. GeneralSubintent based on
// isSubintent.
func catalogue(isSubintent bool) []analysis.Factory {
	general := analyzers.NewGeneral
	if isSubintent {
		general = analyzers.NewGeneralSubintent
	}
	return []analysis.Factory{
		analyzers.NewAccountInteractions,
		analyzers.NewIdentityInteractions,
		analyzers.NewPresentedProofs,
		analyzers.NewEntitiesRequiringAuth,
		analyzers.NewReservedInstructions,
		analyzers.NewEncounteredEntities,
		analyzers.NewTransfer,
		analyzers.NewSimpleTransfer,
		analyzers.NewPoolContribution,
		analyzers.NewPoolRedemption,
		analyzers.NewValidatorStake,
		analyzers.NewValidatorUnstake,
		analyzers.NewValidatorClaimXrd,
		analyzers.NewAccountSettingsUpdate,
		general,
	}
}

// Options configures one call to Analyze.
type Options struct {
	IsSubintent bool
	Trace       trace.Trace
	Registry    invocation.SchemaRegistry
	Logger      *zap.Logger
	Metrics     *metrics.Engine
}

// Analyze runs the full analyzer catalogue over instructions once and
// shapes the result into StaticAnalysis, or DynamicAnalysis when
// opts.Trace is non-nil.
func Analyze(instructions []instr.Instruction, opts Options) (StaticAnalysis, *DynamicAnalysis, error) {
	engine := analysis.NewEngine(catalogue(opts.IsSubintent), opts.Registry, opts.Logger, opts.Metrics)
	result, err := engine.Run(instructions, opts.IsSubintent, opts.Trace)
	if err != nil {
		return StaticAnalysis{}, nil, err
	}

	static := buildStatic(result, opts.IsSubintent)
	if opts.Trace == nil {
		return static, nil, nil
	}
	dynamic := buildDynamic(static, result)
	return static, &dynamic, nil
}

func buildStatic(result analysis.Result, isSubintent bool) StaticAnalysis {
	var s StaticAnalysis

	if v, ok := result.Outputs["account_interactions"].(analyzers.AccountInteractionsOutput); ok {
		s.AccountInteractions = &v
	}
	if v, ok := result.Outputs["identity_interactions"].(analyzers.IdentityInteractionsOutput); ok {
		s.IdentityInteractions = &v
	}
	if v, ok := result.Outputs["presented_proofs"].(analyzers.PresentedProofsOutput); ok {
		s.PresentedProofs = &v
	}
	if v, ok := result.Outputs["entities_requiring_auth"].(analyzers.EntitiesRequiringAuthOutput); ok {
		s.EntitiesRequiringAuth = &v
	}
	if v, ok := result.Outputs["reserved_instructions"].(analyzers.ReservedInstructionsOutput); ok {
		s.ReservedInstructions = &v
	}
	if v, ok := result.Outputs["encountered_entities"].(analyzers.EncounteredEntitiesOutput); ok {
		s.EncounteredEntities = &v
	}

	generalName := "general"
	if isSubintent {
		generalName = "general_subintent"
	}
	classifications := make([]string, 0, 8)
	for _, name := range []string{
		"transfer", "simple_transfer", "pool_contribution", "pool_redemption",
		"validator_stake", "validator_unstake", "validator_claim_xrd",
		"account_settings_update", generalName,
	} {
		if _, ok := result.Outputs[name]; ok {
			classifications = append(classifications, name)
		}
	}
	s.Classifications = classifications
	return s
}

func buildDynamic(static StaticAnalysis, result analysis.Result) DynamicAnalysis {
	d := DynamicAnalysis{StaticAnalysis: static}
	if v, ok := result.Outputs["transfer"].(analyzers.TransferOutput); ok {
		d.Transfer = &v
	}
	if v, ok := result.Outputs["simple_transfer"].(analyzers.SimpleTransferOutput); ok {
		d.SimpleTransfer = &v
	}
	if v, ok := result.Outputs["pool_contribution"].(analyzers.PoolContributionOutput); ok && v.ConsistentWithPool {
		d.PoolContribution = &v
	}
	if v, ok := result.Outputs["pool_redemption"].(analyzers.PoolRedemptionOutput); ok && v.ConsistentWithPool {
		d.PoolRedemption = &v
	}
	if v, ok := result.Outputs["validator_stake"].(analyzers.ValidatorStakeOutput); ok {
		d.ValidatorStake = &v
	}
	if v, ok := result.Outputs["validator_unstake"].(analyzers.ValidatorUnstakeOutput); ok {
		d.ValidatorUnstake = &v
	}
	if v, ok := result.Outputs["validator_claim_xrd"].(analyzers.ValidatorClaimXrdOutput); ok {
		d.ValidatorClaimXrd = &v
	}
	if v, ok := result.Outputs["account_settings_update"].(analyzers.AccountSettingsUpdateOutput); ok {
		d.AccountSettingsUpdate = &v
	}
	return d
}
