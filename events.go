package stylish

// -----------------------------------------------------------------------------
// Lifecycle Payloads
// -----------------------------------------------------------------------------

// StartupEvent is the payload of the host's startup trigger. It exposes the registries that are
// only valid while the registration window is open.
type StartupEvent struct {
	// ItemComponentRegistry accepts custom item components. May be nil.
	ItemComponentRegistry ComponentRegistry

	// BlockComponentRegistry accepts custom block components. May be nil.
	BlockComponentRegistry ComponentRegistry

	// CustomCommandRegistry accepts custom commands and their enums. May be nil.
	CustomCommandRegistry CommandRegistry
}

// WorldLoadEvent is the payload of the host's world-loaded trigger.
type WorldLoadEvent struct {
	// WorldName is the name of the loaded world, if the host reports one.
	WorldName string
}

// -----------------------------------------------------------------------------
// Generic Payloads
// -----------------------------------------------------------------------------

// BeforeItemUseEvent is the payload of [EventBeforeItemUse], fired before an item is used.
// Handlers may set Cancel to ask the host to stop the use.
type BeforeItemUseEvent struct {
	// Source identifies the entity using the item.
	Source string

	// ItemTypeID is the namespaced type of the item stack, e.g. "demo:wand".
	ItemTypeID string

	// Cancel can be set by handlers to cancel the use.
	Cancel bool
}
