package hooks

import (
	"github.com/rickchristie/stylish"
)

// Registry manages a collection of hooks and dispatches registration events to them.
//
// Hooks can implement any combination of hook interfaces - they only receive events for the
// interfaces they implement. Hooks are called in the order they are registered.
//
// # Thread Safety
//
// Registry is NOT thread-safe. Register all hooks before the host starts up.
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook to the registry.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireHandlerBound dispatches a HandlerBoundEvent to all HandlerBoundHook implementations.
func (r *Registry) FireHandlerBound(event stylish.HandlerBoundEvent) {
	if r == nil {
		return
	}
	for _, h := range r.hooks {
		if hook, ok := h.(stylish.HandlerBoundHook); ok {
			hook.OnHandlerBound(event)
		}
	}
}

// FireEventWired dispatches an EventWiredEvent to all EventWiredHook implementations.
func (r *Registry) FireEventWired(event stylish.EventWiredEvent) {
	if r == nil {
		return
	}
	for _, h := range r.hooks {
		if hook, ok := h.(stylish.EventWiredHook); ok {
			hook.OnEventWired(event)
		}
	}
}

// FireComponentRegistered dispatches a ComponentRegisteredEvent to all
// ComponentRegisteredHook implementations.
func (r *Registry) FireComponentRegistered(event stylish.ComponentRegisteredEvent) {
	if r == nil {
		return
	}
	for _, h := range r.hooks {
		if hook, ok := h.(stylish.ComponentRegisteredHook); ok {
			hook.OnComponentRegistered(event)
		}
	}
}

// FireCommandRegistered dispatches a CommandRegisteredEvent to all CommandRegisteredHook
// implementations.
func (r *Registry) FireCommandRegistered(event stylish.CommandRegisteredEvent) {
	if r == nil {
		return
	}
	for _, h := range r.hooks {
		if hook, ok := h.(stylish.CommandRegisteredHook); ok {
			hook.OnCommandRegistered(event)
		}
	}
}

// FireEnumRegistered dispatches an EnumRegisteredEvent to all EnumRegisteredHook
// implementations.
func (r *Registry) FireEnumRegistered(event stylish.EnumRegisteredEvent) {
	if r == nil {
		return
	}
	for _, h := range r.hooks {
		if hook, ok := h.(stylish.EnumRegisteredHook); ok {
			hook.OnEnumRegistered(event)
		}
	}
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.hooks)
}

// Clear removes all registered hooks.
func (r *Registry) Clear() {
	r.hooks = make([]any, 0)
}
