// Package analysis drives a single pass over an instruction stream,
// resolving each instruction into the (grouped instruction, typed
// invocation, invocation I/O) triple every analyzer consults, and composes
// the analyzers' permission/requirement/processing behavior per spec.
package analysis

import (
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/ioindex"
	"github.com/radixdlt/manifest-analyzer/value"
)

// InvocationContext is populated on Context when the instruction is one of
// the six invocation groups.
type InvocationContext struct {
	Receiver invocation.Receiver
	Name     string
	Args     value.Value
	// Typed is nil when the invocation is not a recognized native
	// blueprint method — analyzers that require typed invocations simply
	// do not advance for this instruction.
	Typed invocation.Invocation
	// IO maps resource address to what is known about that resource's
	// movement through this invocation; absent entries mean "no
	// interaction on this resource."
	IO map[value.Address]ioindex.Record
}

// Context is the per-instruction view every analyzer is handed.
type Context struct {
	Index        int
	Grouped      instr.GroupedInstruction
	IsInvocation bool
	Invocation   InvocationContext
}
