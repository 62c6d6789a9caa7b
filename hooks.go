package stylish

// -----------------------------------------------------------------------------
// Registration Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks observe the registration engine. They are notified after handlers are bound, events
// are wired, and components, commands and enums are forwarded to the host. To use hooks:
//
//  1. Implement the desired hook interface(s)
//  2. Register with hooks.Registry
//  3. Pass the registry to the registrars via WithHooks (shim.New does this for you)
//
// Example:
//
//	type AuditHook struct {
//	    logger *slog.Logger
//	}
//
//	func (h *AuditHook) OnComponentRegistered(e ComponentRegisteredEvent) {
//	    h.logger.Info("component registered", "kind", e.Kind, "id", e.ID)
//	}
//
//	registry := hooks.NewRegistry()
//	registry.Register(&AuditHook{logger: slog.Default()})
//
// # Hook Execution Order
//
// Hooks are called synchronously in registration order.
//
// # Error Handling
//
// Hooks do not return errors. A panicking hook propagates to the registration call that
// triggered it.
// -----------------------------------------------------------------------------

// HandlerBoundEvent is emitted once per method bound from an instance.
type HandlerBoundEvent struct {
	// Event is the event the method was bound to.
	Event EventName

	// Type is the Go type name of the instance.
	Type string

	// Method is the annotated method or field name.
	Method string
}

// EventWiredEvent is emitted when a generic event is subscribed on the host.
type EventWiredEvent struct {
	Event EventName
}

// ComponentRegisteredEvent is emitted after a component is accepted by the host.
type ComponentRegisteredEvent struct {
	// Kind is "item" or "block".
	Kind string

	// ID is the component id.
	ID string

	// Type is the Go type name of the component.
	Type string
}

// CommandRegisteredEvent is emitted after a command is accepted by the host.
type CommandRegisteredEvent struct {
	// Name is the declared command name.
	Name string

	// Type is the Go type name of the command.
	Type string

	// StaticRun is true when the run handler came from the collection options rather than
	// the instance.
	StaticRun bool
}

// EnumRegisteredEvent is emitted for every enum registration attempt.
type EnumRegisteredEvent struct {
	Name   string
	Values []string

	// Err is the host error if the registration failed. Failures never abort registration.
	Err error
}

// HandlerBoundHook is implemented by hooks that want to observe instance binding.
type HandlerBoundHook interface {
	OnHandlerBound(event HandlerBoundEvent)
}

// EventWiredHook is implemented by hooks that want to observe host subscriptions.
type EventWiredHook interface {
	OnEventWired(event EventWiredEvent)
}

// ComponentRegisteredHook is implemented by hooks that want to observe component registration.
type ComponentRegisteredHook interface {
	OnComponentRegistered(event ComponentRegisteredEvent)
}

// CommandRegisteredHook is implemented by hooks that want to observe command registration.
type CommandRegisteredHook interface {
	OnCommandRegistered(event CommandRegisteredEvent)
}

// EnumRegisteredHook is implemented by hooks that want to observe enum registration.
type EnumRegisteredHook interface {
	OnEnumRegistered(event EnumRegisteredEvent)
}
