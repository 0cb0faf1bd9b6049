package analyzers

import (
	"github.com/radixdlt/manifest-analyzer/analysis"
	"github.com/radixdlt/manifest-analyzer/trace"
)

// GeneralOutput reports that the manifest did some non-trivial work,
// without narrowing to any of the more specific classifiers.
type GeneralOutput struct {
	InstructionCount int
}

// General (and GeneralSubintent, its identical subintent-mode twin) is the
// residual classifier: permission never breaks, and its requirement is
// simply having seen at least one instruction.
type General struct {
	count int
}

func NewGeneral() analysis.Analyzer { return &General{} }

func (*General) Name() string { return "general" }

func (g *General) Visit(analysis.Context) bool {
	g.count++
	return true
}

func (*General) VisitDynamic(analysis.Context, trace.WorktopChanges) {}

func (g *General) Requirement() bool { return g.count > 0 }

func (g *General) Output() any { return GeneralOutput{InstructionCount: g.count} }

// GeneralSubintent is General's subintent-mode variant; the orchestrator
// selects between the two based on the is-subintent flag rather than
// running both.
type GeneralSubintent struct {
	General
}

func NewGeneralSubintent() analysis.Analyzer { return &GeneralSubintent{} }

func (*GeneralSubintent) Name() string { return "general_subintent" }
