// Package address resolves manifest Address values (static or symbolic
// named) into blueprint identities and entity-type categories, and hosts
// the append-only named-address store a traversal builds up as it
// processes AllocateGlobalAddress instructions.
package address

// EntityType tags the category of node a global or internal address
// refers to. It is read from the first byte of a static address's node id;
// for named addresses it is derived from the blueprint recorded at
// allocation time.
type EntityType uint8

const (
	EntityTypeGlobalPackage EntityType = iota
	EntityTypeGlobalFungibleResourceManager
	EntityTypeGlobalNonFungibleResourceManager
	EntityTypeGlobalConsensusManager
	EntityTypeGlobalValidator
	EntityTypeGlobalAccessController
	EntityTypeGlobalAccount
	EntityTypeGlobalIdentity
	EntityTypeGlobalGenericComponent
	EntityTypeGlobalOneResourcePool
	EntityTypeGlobalTwoResourcePool
	EntityTypeGlobalMultiResourcePool
	EntityTypeGlobalAccountLocker
	EntityTypeGlobalTransactionTracker
	EntityTypeInternalFungibleVault
	EntityTypeInternalNonFungibleVault
	EntityTypeInternalGenericComponent
	EntityTypeInternalKeyValueStore

	entityTypeSentinel
)

// EntityTypeFromNodeIDByte recovers the EntityType tagged by a static
// address's leading node-id byte. The second return is false if the byte
// does not correspond to a known entity type.
func EntityTypeFromNodeIDByte(b byte) (EntityType, bool) {
	et := EntityType(b)
	if et >= entityTypeSentinel {
		return 0, false
	}
	return et, true
}

// Byte is the inverse of EntityTypeFromNodeIDByte, used when constructing
// synthetic static addresses (e.g. in tests).
func (e EntityType) Byte() byte { return byte(e) }

// GroupedEntityType buckets the fine-grained EntityType values into the
// coarse categories the analyzers reason about.
type GroupedEntityType uint8

const (
	GroupedEntityAccount GroupedEntityType = iota
	GroupedEntityIdentity
	GroupedEntityPool
	GroupedEntityValidator
	GroupedEntityAccessController
	GroupedEntityAccountLocker
	GroupedEntityInternal
	GroupedEntitySystem
	GroupedEntityResourceManager
	GroupedEntityPackage
	GroupedEntityGenericComponent

	groupedEntitySentinel
)

// GroupEntityType maps a fine-grained EntityType to its GroupedEntityType
// category.
func GroupEntityType(e EntityType) GroupedEntityType {
	switch e {
	case EntityTypeGlobalAccount:
		return GroupedEntityAccount
	case EntityTypeGlobalIdentity:
		return GroupedEntityIdentity
	case EntityTypeGlobalOneResourcePool, EntityTypeGlobalTwoResourcePool, EntityTypeGlobalMultiResourcePool:
		return GroupedEntityPool
	case EntityTypeGlobalValidator:
		return GroupedEntityValidator
	case EntityTypeGlobalAccessController:
		return GroupedEntityAccessController
	case EntityTypeGlobalAccountLocker:
		return GroupedEntityAccountLocker
	case EntityTypeInternalFungibleVault, EntityTypeInternalNonFungibleVault,
		EntityTypeInternalGenericComponent, EntityTypeInternalKeyValueStore:
		return GroupedEntityInternal
	case EntityTypeGlobalConsensusManager, EntityTypeGlobalTransactionTracker:
		return GroupedEntitySystem
	case EntityTypeGlobalFungibleResourceManager, EntityTypeGlobalNonFungibleResourceManager:
		return GroupedEntityResourceManager
	case EntityTypeGlobalPackage:
		return GroupedEntityPackage
	default:
		return GroupedEntityGenericComponent
	}
}

func (g GroupedEntityType) IsAccount() bool          { return g == GroupedEntityAccount }
func (g GroupedEntityType) IsIdentity() bool         { return g == GroupedEntityIdentity }
func (g GroupedEntityType) IsPool() bool             { return g == GroupedEntityPool }
func (g GroupedEntityType) IsValidator() bool        { return g == GroupedEntityValidator }
func (g GroupedEntityType) IsAccessController() bool { return g == GroupedEntityAccessController }
