package analysis

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/ioindex"
	"github.com/radixdlt/manifest-analyzer/metrics"
	"github.com/radixdlt/manifest-analyzer/trace"
	"github.com/radixdlt/manifest-analyzer/value"
	"github.com/radixdlt/manifest-analyzer/worktop"
)

// Engine drives one or more Analyzer instances across a single instruction
// stream. An Engine is safe to reuse across unrelated traversals; it holds
// no state of its own besides configuration.
type Engine struct {
	factories []Factory
	registry  invocation.SchemaRegistry
	logger    *zap.Logger
	metrics   *metrics.Engine
}

// NewEngine builds an Engine over the given analyzer factories. registry
// and logger may be nil; metrics may be nil to disable reporting.
func NewEngine(factories []Factory, registry invocation.SchemaRegistry, logger *zap.Logger, m *metrics.Engine) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{factories: factories, registry: registry, logger: logger, metrics: m}
}

// Result is the raw per-analyzer outcome of a traversal, keyed by analyzer
// name. Resolving this into the spec's StaticAnalysis/DynamicAnalysis
// shape is manifestanalysis's job; Engine only knows about Analyzer, not
// about specific analyzer output types.
type Result struct {
	Outputs map[string]any
}

// Run executes a single pass over instructions. isSubintent is threaded
// through for diagnostics only — the worktop interpreter always begins
// Tracked regardless, since "known empty" is itself a known state. trc may
// be nil to run static-only.
func (e *Engine) Run(instructions []instr.Instruction, isSubintent bool, trc trace.Trace) (Result, error) {
	runID := uuid.New()
	log := e.logger.With(zap.String("traversal_id", runID.String()), zap.Bool("is_subintent", isSubintent))
	log.Debug("traversal started", zap.Int("instruction_count", len(instructions)))
	if e.metrics != nil {
		e.metrics.Traversals.Inc()
	}

	analyzers := make([]Analyzer, len(e.factories))
	alive := make([]bool, len(e.factories))
	for i, f := range e.factories {
		analyzers[i] = f()
		alive[i] = true
	}

	store := address.NewNamedAddressStore()
	wt := worktop.New()
	ioIdx := ioindex.New()

	for idx, ins := range instructions {
		if e.metrics != nil {
			e.metrics.Instructions.Inc()
		}
		grouped := instr.NewGroupedInstruction(ins)

		ctx, err := buildContext(idx, grouped, store, e.registry)
		if err != nil {
			log.Warn("traversal aborted", zap.Error(err), zap.Int("instruction_index", idx))
			if e.metrics != nil {
				e.metrics.FatalErrors.WithLabelValues(fatalErrorKind(err)).Inc()
			}
			return Result{}, err
		}

		applyWorktopEffects(wt, ioIdx, store, idx, grouped, ctx)

		if changes, ok := trc.At(idx); ok && grouped.Group.IsInvocation() {
			recordDynamicIO(ioIdx, idx, changes)
		}
		if ctx.IsInvocation {
			ctx.Invocation.IO = ioIdx.ForInstruction(idx)
		}

		anyAlive := false
		for i, a := range analyzers {
			if !alive[i] {
				continue
			}
			if !a.Visit(ctx) {
				alive[i] = false
				if e.metrics != nil {
					e.metrics.Disqualified.WithLabelValues(a.Name()).Inc()
				}
				continue
			}
			anyAlive = true
			if changes, ok := trc.At(idx); ok {
				a.VisitDynamic(ctx, changes)
			}
		}
		if !anyAlive {
			log.Debug("all analyzers disqualified, stopping early", zap.Int("instruction_index", idx))
			break
		}
	}

	outputs := make(map[string]any)
	for i, a := range analyzers {
		if alive[i] && a.Requirement() {
			outputs[a.Name()] = a.Output()
		}
	}
	log.Debug("traversal finished", zap.Int("qualified_analyzers", len(outputs)))
	return Result{Outputs: outputs}, nil
}

func fatalErrorKind(err error) string {
	switch err.(type) {
	case *address.ErrInvalidNamedAddress:
		return "invalid_named_address"
	case *invocation.ErrTypedInvocationDecode:
		return "typed_invocation_decode"
	default:
		return "unknown"
	}
}

// recordDynamicIO folds one instruction's observed execution-trace deltas
// into the IO index as Dynamic (or StaticAndDynamic, if a static record
// already exists at that key) entries. A positive delta is resource
// flowing onto the worktop (In, from this invocation's perspective); a
// negative delta is resource the invocation consumed (Out).
func recordDynamicIO(ioIdx *ioindex.Index, idx int, changes trace.WorktopChanges) {
	for _, d := range changes.Deltas {
		m := ioindex.Movement{}
		switch {
		case d.Amount.IsPositive():
			m.In = d.Amount
		case d.Amount.IsNegative():
			m.Out = d.Amount.Neg()
		}
		m.InIds = d.AddedIds
		m.OutIds = d.RemovedIds
		ioIdx.SetDynamic(idx, d.Resource, m)
	}
}

// applyWorktopEffects advances the worktop interpreter, the named address
// store, and the static half of the invocation IO index for one
// instruction. Take*/Return/AllocateGlobalAddress are a pure function of
// the raw instruction; invocation groups additionally consult ctx's
// resolved typed invocation (when one was decoded) to determine which
// buckets were consumed and which resources, if any, were placed onto the
// worktop by statically known bounds.
func applyWorktopEffects(wt *worktop.State, ioIdx *ioindex.Index, store *address.NamedAddressStore, idx int, g instr.GroupedInstruction, ctx Context) {
	switch ins := g.Instruction.(type) {
	case instr.TakeFromWorktop:
		wt.TakeByAmount(bucketIDFromIndex(idx), ins.Resource, ins.Amount.Value)
	case instr.TakeNonFungiblesFromWorktop:
		wt.TakeByIds(bucketIDFromIndex(idx), ins.Resource, ins.Ids)
	case instr.TakeAllFromWorktop:
		wt.TakeAll(bucketIDFromIndex(idx), ins.Resource)
	case instr.ReturnToWorktop:
		wt.ReturnToWorktop(bucketID(ins.Bucket))
	case instr.CallDirectVaultMethod:
		wt.GoUntracked()
	case instr.AllocateGlobalAddress:
		// Named address ids are allocated in manifest order starting at 0;
		// the traversal records the (package, blueprint) the reservation
		// will instantiate so later CallMethod resolution can recover it.
		store.Insert(nextNamedID(store), address.NewBlueprintId(ins.Package, ins.Blueprint))
	default:
		if g.Group.IsInvocation() {
			applyInvocationWorktopEffects(wt, ioIdx, idx, ctx)
		}
	}
}

// applyInvocationWorktopEffects is the invocation half of the worktop
// interpreter's transition table (spec.md §4.4's "Invocation outputs"
// row): known native methods with statically bounded effects update the
// worktop and the IO index directly; everything else — an unrecognized
// method, or a recognized one whose output size isn't determinable without
// an execution trace — forces the worktop untracked, since this component
// can no longer state exactly which resources moved.
func applyInvocationWorktopEffects(wt *worktop.State, ioIdx *ioindex.Index, idx int, ctx Context) {
	// Metadata/role-assignment/royalty module calls never touch resources.
	if ctx.Invocation.Receiver.Kind == invocation.ReceiverGlobalMethod && ctx.Invocation.Receiver.Module != invocation.ModuleMain {
		return
	}

	switch inv := ctx.Invocation.Typed.(type) {
	case invocation.AccountInvocation:
		applyAccountInvocationEffects(wt, ioIdx, idx, inv.Method)
	case invocation.PoolInvocation:
		applyPoolInvocationEffects(wt, ioIdx, idx, inv.Method)
	case invocation.ValidatorInvocation:
		applyValidatorInvocationEffects(wt, ioIdx, idx, inv.Method)
	case invocation.IdentityInvocation, invocation.AccessControllerInvocation:
		// Neither blueprint's modeled methods (securify, create_proof)
		// touch the worktop.
	default:
		// Unrecognized invocation (nil Typed, or a blueprint this package
		// doesn't decode): conservatively assume it may have produced or
		// consumed worktop resources we cannot see.
		wt.GoUntracked()
	}
}

func applyAccountInvocationEffects(wt *worktop.State, ioIdx *ioindex.Index, idx int, m native.AccountMethod) {
	switch m := m.(type) {
	case native.AccountWithdraw:
		produceKnown(wt, ioIdx, idx, m.ResourceAddress, m.Amount.Value, nil)
	case native.AccountWithdrawNonFungibles:
		produceKnown(wt, ioIdx, idx, m.ResourceAddress, decimal.Zero, m.Ids)
	case native.AccountLockFeeAndWithdraw:
		produceKnown(wt, ioIdx, idx, m.ResourceAddress, m.Amount.Value, nil)
	case native.AccountLockFeeAndWithdrawNonFungibles:
		produceKnown(wt, ioIdx, idx, m.ResourceAddress, decimal.Zero, m.Ids)
	case native.AccountDeposit:
		consumeBucket(wt, ioIdx, idx, m.Bucket.ID)
	case native.AccountDepositBatch:
		for _, b := range m.Buckets {
			consumeBucket(wt, ioIdx, idx, b.ID)
		}
	case native.AccountTryDepositOrRefund:
		consumeBucket(wt, ioIdx, idx, m.Bucket.ID)
	case native.AccountTryDepositBatchOrRefund:
		for _, b := range m.Buckets {
			consumeBucket(wt, ioIdx, idx, b.ID)
		}
	case native.AccountTryDepositOrAbort:
		consumeBucket(wt, ioIdx, idx, m.Bucket.ID)
	case native.AccountTryDepositBatchOrAbort:
		for _, b := range m.Buckets {
			consumeBucket(wt, ioIdx, idx, b.ID)
		}
	default:
		// lock_fee, lock_contingent_fee, create_proof_of_*, securify,
		// settings methods, burn*: these act on the account's own vaults
		// or auth zone directly, never on the worktop.
	}
}

func applyPoolInvocationEffects(wt *worktop.State, ioIdx *ioindex.Index, idx int, m native.PoolMethod) {
	switch m := m.(type) {
	case native.PoolContribute:
		for _, b := range m.Buckets {
			consumeBucket(wt, ioIdx, idx, b.ID)
		}
		// Pool-unit amount minted is a function of pool state this
		// component does not model; only an execution trace can bound it.
		wt.GoUntracked()
	case native.PoolRedeem:
		consumeBucket(wt, ioIdx, idx, m.PoolUnitBucket.ID)
		wt.GoUntracked()
	case native.PoolProtectedDeposit:
		consumeBucket(wt, ioIdx, idx, m.Bucket.ID)
	case native.PoolProtectedWithdraw:
		produceKnown(wt, ioIdx, idx, m.ResourceAddress, m.Amount.Value, nil)
	}
}

func applyValidatorInvocationEffects(wt *worktop.State, ioIdx *ioindex.Index, idx int, m native.ValidatorMethod) {
	switch m := m.(type) {
	case native.ValidatorStake:
		consumeBucket(wt, ioIdx, idx, m.StakeBucket.ID)
		// Liquid-stake-unit amount minted depends on the validator's
		// current exchange rate; not statically bounded.
		wt.GoUntracked()
	case native.ValidatorUnstake:
		consumeBucket(wt, ioIdx, idx, m.LiquidStakeUnitBucket.ID)
		// The claim NFT's id and redemption amount are validator state.
		wt.GoUntracked()
	case native.ValidatorClaimXrd:
		consumeBucket(wt, ioIdx, idx, m.ClaimNftBucket.ID)
		// The unbonded XRD amount was fixed at unstake time, not here.
		wt.GoUntracked()
	}
}

// produceKnown records a statically bounded invocation output: the
// resource is added to the worktop's known contents and the IO index gets
// a Static In-movement entry.
func produceKnown(wt *worktop.State, ioIdx *ioindex.Index, idx int, resource value.Address, amount decimal.Decimal, ids []value.NonFungibleLocalId) {
	wt.ApplyKnownInvocationOutput(resource, amount, ids)
	ioIdx.SetStatic(idx, resource, ioindex.Movement{In: amount, InIds: ids})
}

// consumeBucket records a statically bounded invocation input: when the
// consumed bucket's contents are known, the IO index gets a Static
// Out-movement entry for that resource. An unknown bucket contributes
// nothing — its unknown-ness already forced the worktop untracked when it
// was created, per the worktop/bucket duality in spec.md §3.
func consumeBucket(wt *worktop.State, ioIdx *ioindex.Index, idx int, bucketID uint32) {
	b, ok := wt.Buckets[bucketID]
	if !ok || !b.Known {
		return
	}
	ids := make([]value.NonFungibleLocalId, 0, len(b.Contents.Ids))
	for _, id := range b.Contents.Ids {
		ids = append(ids, id)
	}
	ioIdx.SetStatic(idx, b.Resource, ioindex.Movement{Out: b.Contents.Amount, OutIds: ids})
}

// bucketIDFromIndex derives a synthetic bucket id for Take* instructions
// that produce a new bucket; this module does not decode the manifest's
// own bucket-id allocator, so it mints one keyed by instruction index,
// which is unique per traversal and is all ReturnToWorktop/invocation
// lookups within this package need.
func bucketIDFromIndex(idx int) uint32 { return uint32(idx) }

func bucketID(b value.Bucket) uint32 { return b.ID }

func nextNamedID(store *address.NamedAddressStore) uint32 { return uint32(store.Len()) }

// buildContext resolves the grouped instruction into the Context an
// analyzer consults, including receiver/typed-invocation resolution for
// invocation groups. The IO field is filled in by the caller once
// applyWorktopEffects has run for this instruction.
func buildContext(idx int, g instr.GroupedInstruction, store *address.NamedAddressStore, registry invocation.SchemaRegistry) (Context, error) {
	ctx := Context{Index: idx, Grouped: g}
	if !g.Group.IsInvocation() {
		return ctx, nil
	}

	receiver, name, args, ok, err := invocation.Resolve(g, store)
	if err != nil {
		return Context{}, err
	}
	if !ok {
		return ctx, nil
	}

	ctx.IsInvocation = true
	ctx.Invocation.Receiver = receiver
	ctx.Invocation.Name = name
	ctx.Invocation.Args = args

	blueprint := invocationBlueprintName(receiver)
	if blueprint == "" {
		return ctx, nil
	}
	typed, ok, err := invocation.Decode(blueprint, receiver.Module, name, args, registry)
	if err != nil {
		return Context{}, err
	}
	if ok {
		ctx.Invocation.Typed = typed
	}
	return ctx, nil
}

func invocationBlueprintName(r invocation.Receiver) string {
	switch r.Kind {
	case invocation.ReceiverBlueprintFunction:
		return r.BlueprintFunction.Blueprint
	case invocation.ReceiverGlobalMethod:
		if r.GlobalMethod.Address.IsNamed() {
			return r.GlobalMethod.Blueprint.Blueprint
		}
		et, ok := address.EntityTypeFromNodeIDByte(r.GlobalMethod.Address.NodeID[0])
		if !ok {
			return ""
		}
		name, ok := address.NativeBlueprintName(et)
		if !ok {
			return ""
		}
		return name
	default:
		return ""
	}
}
