// Package instr defines the raw Instruction variants a transaction manifest
// is made of, and their classification into coarse groups (GroupedInstruction)
// that downstream components pattern-match on instead of the raw variants.
package instr

import "github.com/radixdlt/manifest-analyzer/value"

// Kind tags which concrete Instruction variant a value carries.
type Kind uint8

const (
	KindTakeFromWorktop Kind = iota
	KindTakeNonFungiblesFromWorktop
	KindTakeAllFromWorktop
	KindReturnToWorktop
	KindAssertWorktopContains
	KindAssertWorktopContainsNonFungibles
	KindAssertWorktopContainsAny
	KindPopFromAuthZone
	KindPushToAuthZone
	KindCreateProofFromAuthZoneOfAmount
	KindCreateProofFromAuthZoneOfNonFungibles
	KindCreateProofFromAuthZoneOfAll
	KindCreateProofFromBucketOfAmount
	KindCreateProofFromBucketOfNonFungibles
	KindCreateProofFromBucketOfAll
	KindDropProof
	KindDropAuthZoneProofs
	KindDropAuthZoneSignatureProofs
	KindDropAllProofs
	KindCloneProof
	KindBurnResource
	KindCallFunction
	KindCallMethod
	KindCallDirectVaultMethod
	KindCallMetadataMethod
	KindCallRoleAssignmentMethod
	KindCallRoyaltyMethod
	KindAllocateGlobalAddress
	KindYieldToParent
	KindYieldToChild
	KindVerifyParent

	kindSentinel
)

var kindNames = [kindSentinel]string{
	KindTakeFromWorktop:                       "TakeFromWorktop",
	KindTakeNonFungiblesFromWorktop:            "TakeNonFungiblesFromWorktop",
	KindTakeAllFromWorktop:                     "TakeAllFromWorktop",
	KindReturnToWorktop:                        "ReturnToWorktop",
	KindAssertWorktopContains:                  "AssertWorktopContains",
	KindAssertWorktopContainsNonFungibles:      "AssertWorktopContainsNonFungibles",
	KindAssertWorktopContainsAny:               "AssertWorktopContainsAny",
	KindPopFromAuthZone:                        "PopFromAuthZone",
	KindPushToAuthZone:                         "PushToAuthZone",
	KindCreateProofFromAuthZoneOfAmount:        "CreateProofFromAuthZoneOfAmount",
	KindCreateProofFromAuthZoneOfNonFungibles:  "CreateProofFromAuthZoneOfNonFungibles",
	KindCreateProofFromAuthZoneOfAll:           "CreateProofFromAuthZoneOfAll",
	KindCreateProofFromBucketOfAmount:          "CreateProofFromBucketOfAmount",
	KindCreateProofFromBucketOfNonFungibles:    "CreateProofFromBucketOfNonFungibles",
	KindCreateProofFromBucketOfAll:             "CreateProofFromBucketOfAll",
	KindDropProof:                              "DropProof",
	KindDropAuthZoneProofs:                     "DropAuthZoneProofs",
	KindDropAuthZoneSignatureProofs:            "DropAuthZoneSignatureProofs",
	KindDropAllProofs:                          "DropAllProofs",
	KindCloneProof:                             "CloneProof",
	KindBurnResource:                           "BurnResource",
	KindCallFunction:                           "CallFunction",
	KindCallMethod:                             "CallMethod",
	KindCallDirectVaultMethod:                  "CallDirectVaultMethod",
	KindCallMetadataMethod:                     "CallMetadataMethod",
	KindCallRoleAssignmentMethod:               "CallRoleAssignmentMethod",
	KindCallRoyaltyMethod:                      "CallRoyaltyMethod",
	KindAllocateGlobalAddress:                  "AllocateGlobalAddress",
	KindYieldToParent:                          "YieldToParent",
	KindYieldToChild:                           "YieldToChild",
	KindVerifyParent:                           "VerifyParent",
}

func (k Kind) String() string {
	if k >= kindSentinel {
		return "Unknown"
	}
	return kindNames[k]
}

// Instruction is the tagged sum type over every manifest instruction
// variant. Every concrete variant below implements it.
type Instruction interface {
	Kind() Kind
}

// TakeFromWorktop extracts amount of resource from the worktop into a new
// bucket, identified by the position of this instruction in the stream.
type TakeFromWorktop struct {
	Resource value.Address
	Amount   value.Decimal
}

func (TakeFromWorktop) Kind() Kind { return KindTakeFromWorktop }

// TakeNonFungiblesFromWorktop extracts a specific id set of a non-fungible
// resource from the worktop.
type TakeNonFungiblesFromWorktop struct {
	Resource value.Address
	Ids      []value.NonFungibleLocalId
}

func (TakeNonFungiblesFromWorktop) Kind() Kind { return KindTakeNonFungiblesFromWorktop }

// TakeAllFromWorktop extracts every unit of resource currently on the
// worktop into a new bucket.
type TakeAllFromWorktop struct {
	Resource value.Address
}

func (TakeAllFromWorktop) Kind() Kind { return KindTakeAllFromWorktop }

// ReturnToWorktop returns a bucket's contents to the worktop, consuming the
// bucket.
type ReturnToWorktop struct {
	Bucket value.Bucket
}

func (ReturnToWorktop) Kind() Kind { return KindReturnToWorktop }

// AssertWorktopContains asserts the worktop holds at least amount of
// resource; it does not move resources.
type AssertWorktopContains struct {
	Resource value.Address
	Amount   value.Decimal
}

func (AssertWorktopContains) Kind() Kind { return KindAssertWorktopContains }

// AssertWorktopContainsNonFungibles asserts the worktop holds at least the
// given non-fungible ids of resource.
type AssertWorktopContainsNonFungibles struct {
	Resource value.Address
	Ids      []value.NonFungibleLocalId
}

func (AssertWorktopContainsNonFungibles) Kind() Kind {
	return KindAssertWorktopContainsNonFungibles
}

// AssertWorktopContainsAny asserts the worktop holds a nonzero amount of
// resource, regardless of quantity.
type AssertWorktopContainsAny struct {
	Resource value.Address
}

func (AssertWorktopContainsAny) Kind() Kind { return KindAssertWorktopContainsAny }

// PopFromAuthZone moves the top proof of the auth zone onto the operand
// stack.
type PopFromAuthZone struct{}

func (PopFromAuthZone) Kind() Kind { return KindPopFromAuthZone }

// PushToAuthZone pushes a proof onto the auth zone, consuming it.
type PushToAuthZone struct {
	Proof value.Proof
}

func (PushToAuthZone) Kind() Kind { return KindPushToAuthZone }

// CreateProofFromAuthZoneOfAmount derives a proof of amount of resource from
// the auth zone without consuming any bucket.
type CreateProofFromAuthZoneOfAmount struct {
	Resource value.Address
	Amount   value.Decimal
}

func (CreateProofFromAuthZoneOfAmount) Kind() Kind {
	return KindCreateProofFromAuthZoneOfAmount
}

// CreateProofFromAuthZoneOfNonFungibles derives a proof of specific
// non-fungible ids from the auth zone.
type CreateProofFromAuthZoneOfNonFungibles struct {
	Resource value.Address
	Ids      []value.NonFungibleLocalId
}

func (CreateProofFromAuthZoneOfNonFungibles) Kind() Kind {
	return KindCreateProofFromAuthZoneOfNonFungibles
}

// CreateProofFromAuthZoneOfAll derives a proof of every unit of resource
// present in the auth zone.
type CreateProofFromAuthZoneOfAll struct {
	Resource value.Address
}

func (CreateProofFromAuthZoneOfAll) Kind() Kind { return KindCreateProofFromAuthZoneOfAll }

// CreateProofFromBucketOfAmount derives a proof of amount of a bucket's
// contents without consuming the bucket.
type CreateProofFromBucketOfAmount struct {
	Bucket value.Bucket
	Amount value.Decimal
}

func (CreateProofFromBucketOfAmount) Kind() Kind { return KindCreateProofFromBucketOfAmount }

// CreateProofFromBucketOfNonFungibles derives a proof of specific ids from a
// bucket.
type CreateProofFromBucketOfNonFungibles struct {
	Bucket value.Bucket
	Ids    []value.NonFungibleLocalId
}

func (CreateProofFromBucketOfNonFungibles) Kind() Kind {
	return KindCreateProofFromBucketOfNonFungibles
}

// CreateProofFromBucketOfAll derives a proof of a bucket's entire contents.
type CreateProofFromBucketOfAll struct {
	Bucket value.Bucket
}

func (CreateProofFromBucketOfAll) Kind() Kind { return KindCreateProofFromBucketOfAll }

// DropProof discards a single proof.
type DropProof struct {
	Proof value.Proof
}

func (DropProof) Kind() Kind { return KindDropProof }

// DropAuthZoneProofs discards every proof in the auth zone.
type DropAuthZoneProofs struct{}

func (DropAuthZoneProofs) Kind() Kind { return KindDropAuthZoneProofs }

// DropAuthZoneSignatureProofs discards only the signature-derived proofs in
// the auth zone.
type DropAuthZoneSignatureProofs struct{}

func (DropAuthZoneSignatureProofs) Kind() Kind { return KindDropAuthZoneSignatureProofs }

// DropAllProofs discards every proof, in the auth zone and on the operand
// stack.
type DropAllProofs struct{}

func (DropAllProofs) Kind() Kind { return KindDropAllProofs }

// CloneProof duplicates a proof without consuming the original.
type CloneProof struct {
	Proof value.Proof
}

func (CloneProof) Kind() Kind { return KindCloneProof }

// BurnResource destroys a bucket's contents permanently.
type BurnResource struct {
	Bucket value.Bucket
}

func (BurnResource) Kind() Kind { return KindBurnResource }

// CallFunction invokes a package blueprint's function; it has no receiver
// instance, only a (package, blueprint, function) triple.
type CallFunction struct {
	Package   value.Address
	Blueprint string
	Function  string
	Args      value.Value
}

func (CallFunction) Kind() Kind { return KindCallFunction }

// CallMethod invokes a main-module method on an addressed component.
type CallMethod struct {
	Address value.Address
	Method  string
	Args    value.Value
}

func (CallMethod) Kind() Kind { return KindCallMethod }

// CallDirectVaultMethod invokes a method directly on an internal vault,
// bypassing its owning component's access rules.
type CallDirectVaultMethod struct {
	Address value.Address
	Method  string
	Args    value.Value
}

func (CallDirectVaultMethod) Kind() Kind { return KindCallDirectVaultMethod }

// CallMetadataMethod invokes a method on a component's metadata module.
type CallMetadataMethod struct {
	Address value.Address
	Method  string
	Args    value.Value
}

func (CallMetadataMethod) Kind() Kind { return KindCallMetadataMethod }

// CallRoleAssignmentMethod invokes a method on a component's
// role-assignment module.
type CallRoleAssignmentMethod struct {
	Address value.Address
	Method  string
	Args    value.Value
}

func (CallRoleAssignmentMethod) Kind() Kind { return KindCallRoleAssignmentMethod }

// CallRoyaltyMethod invokes a method on a component's royalty module.
type CallRoyaltyMethod struct {
	Address value.Address
	Method  string
	Args    value.Value
}

func (CallRoyaltyMethod) Kind() Kind { return KindCallRoyaltyMethod }

// AllocateGlobalAddress reserves a symbolic address for a future
// (package, blueprint) instantiation; the named-address store records the
// mapping once this instruction is processed.
type AllocateGlobalAddress struct {
	Package   value.Address
	Blueprint string
}

func (AllocateGlobalAddress) Kind() Kind { return KindAllocateGlobalAddress }

// YieldToParent hands control (and an argument Value) from a subintent back
// to its parent.
type YieldToParent struct {
	Args value.Value
}

func (YieldToParent) Kind() Kind { return KindYieldToParent }

// YieldToChild hands control to a nested subintent by index, passing it an
// argument Value.
type YieldToChild struct {
	ChildIndex uint32
	Args       value.Value
}

func (YieldToChild) Kind() Kind { return KindYieldToChild }

// VerifyParent asserts a condition on the parent intent's access rule.
type VerifyParent struct {
	Access value.Value
}

func (VerifyParent) Kind() Kind { return KindVerifyParent }
