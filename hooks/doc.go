// Package hooks provides a registry for observing the registration engine.
//
// Hooks are notified after the engine does something observable: binds an instance method,
// wires a host signal, or forwards a component, command or enum to the host. Each hook
// interface corresponds to one of these actions - implement only the interfaces you need.
//
// # Hook Interfaces
//
//   - [stylish.HandlerBoundHook] - an annotated method was bound from a new instance
//   - [stylish.EventWiredHook] - a generic event was subscribed on the host
//   - [stylish.ComponentRegisteredHook] - an item or block component was registered
//   - [stylish.CommandRegisteredHook] - a custom command was registered
//   - [stylish.EnumRegisteredHook] - an enum registration was attempted
//
// # Creating a Hook
//
//	type CountingHook struct{ components int }
//
//	func (h *CountingHook) OnComponentRegistered(e stylish.ComponentRegisteredEvent) {
//	    h.components++
//	}
//
//	// Compile-time check
//	var _ stylish.ComponentRegisteredHook = (*CountingHook)(nil)
//
// # Registering Hooks
//
//	registry := hooks.NewRegistry().Register(&CountingHook{})
//	s := shim.New().WithHooks(registry)
//
// A nil *Registry is valid and fires nothing, so components can hold one unconditionally.
package hooks
