package events

import (
	"log/slog"
	"reflect"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/hooks"
)

// Registry owns the event-name to handler-list table and the host subscription lifecycle.
//
// # Thread Safety
//
// Registry is NOT thread-safe. Populate it and trigger host events from a single goroutine.
type Registry struct {
	handlers map[stylish.EventName][]stylish.Handler
	order    []stylish.EventName // events in first-registration order
	wired    map[stylish.EventName]bool
	ready    bool

	methods map[reflect.Type]*methodTable

	signals stylish.SignalSource
	hooks   *hooks.Registry
	logger  *slog.Logger
	debug   bool
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[stylish.EventName][]stylish.Handler),
		wired:    make(map[stylish.EventName]bool),
		methods:  make(map[reflect.Type]*methodTable),
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger used for warnings, recovered panics and debug tracing.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// WithHooks sets the hook registry notified of bindings and wirings.
func (r *Registry) WithHooks(h *hooks.Registry) *Registry {
	r.hooks = h
	return r
}

// SetDebugLogging enables or disables debug tracing of registration and dispatch.
func (r *Registry) SetDebugLogging(enabled bool) *Registry {
	r.debug = enabled
	return r
}

// SetSignalSource attaches the host that provides signals for generic events. Events that
// became wireable before a source was attached are wired on the next check.
func (r *Registry) SetSignalSource(src stylish.SignalSource) *Registry {
	r.signals = src
	r.maybeWireAll()
	return r
}

// On appends handler to the list for event and wires the event if it is already wireable.
// A nil handler is ignored.
func (r *Registry) On(event stylish.EventName, handler stylish.Handler) *Registry {
	if handler == nil {
		return r
	}
	r.dbg("register:function", "event", event)
	r.append(event, handler)
	r.maybeWire(event)
	return r
}

// On appends a typed handler for event. Payloads that are not a T are reported as a failed
// handler invocation; a nil payload is passed as the zero T.
func On[T any](r *Registry, event stylish.EventName, fn func(T)) *Registry {
	if fn == nil {
		return r
	}
	return r.On(event, func(payload any) {
		if payload == nil {
			var zero T
			fn(zero)
			return
		}
		v, ok := payload.(T)
		if !ok {
			panic(&PayloadError{Event: event, Payload: payload, Want: reflect.TypeFor[T]()})
		}
		fn(v)
	})
}

// Dispatch invokes every handler registered for event, in insertion order, with payload.
// The list is read once at the start of the call.
func (r *Registry) Dispatch(event stylish.EventName, payload any) {
	list := r.handlers[event]
	r.dbg("dispatch", "event", event, "count", len(list))
	for i, h := range list {
		r.invoke(event, i, h, payload)
	}
}

// TriggerStartup marks the host as ready, wires every generic event that has handlers, then
// dispatches the startup handlers. The ready flag is set once; dispatch happens on every call.
func (r *Registry) TriggerStartup(e *stylish.StartupEvent) {
	r.ready = true
	r.maybeWireAll()
	r.dbg("triggerStartup", "count", len(r.handlers[stylish.EventStartup]))
	r.Dispatch(stylish.EventStartup, e)
}

// TriggerWorldLoad dispatches the world-load handlers. It does not depend on startup.
func (r *Registry) TriggerWorldLoad(e *stylish.WorldLoadEvent) {
	r.dbg("triggerWorldLoad", "count", len(r.handlers[stylish.EventWorldLoad]))
	r.Dispatch(stylish.EventWorldLoad, e)
}

// Ready reports whether startup has been triggered.
func (r *Registry) Ready() bool {
	return r.ready
}

// IsWired reports whether event has been subscribed on the host.
func (r *Registry) IsWired(event stylish.EventName) bool {
	return r.wired[event]
}

// Len returns the number of handlers registered for event.
func (r *Registry) Len(event stylish.EventName) int {
	return len(r.handlers[event])
}

// Events returns the events that have at least one handler, in first-registration order.
func (r *Registry) Events() []stylish.EventName {
	out := make([]stylish.EventName, len(r.order))
	copy(out, r.order)
	return out
}

// Reset clears every handler list, annotation, wiring flag and the ready flag. Logger, hooks,
// debug setting and signal source are kept. Meant for test harnesses.
func (r *Registry) Reset() {
	r.handlers = make(map[stylish.EventName][]stylish.Handler)
	r.order = nil
	r.wired = make(map[stylish.EventName]bool)
	r.ready = false
	r.methods = make(map[reflect.Type]*methodTable)
}

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

func (r *Registry) append(event stylish.EventName, h stylish.Handler) {
	if _, seen := r.handlers[event]; !seen {
		r.order = append(r.order, event)
	}
	r.handlers[event] = append(r.handlers[event], h)
}

func (r *Registry) invoke(event stylish.EventName, index int, h stylish.Handler, payload any) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("event handler panicked",
				"component", "events",
				"event", event,
				"index", index,
				"panic", rec)
		}
	}()
	h(payload)
}

func (r *Registry) maybeWire(event stylish.EventName) {
	if !r.ready {
		return
	}
	if len(r.handlers[event]) > 0 {
		r.wire(event)
	}
}

func (r *Registry) maybeWireAll() {
	if !r.ready {
		return
	}
	for _, event := range r.order {
		if len(r.handlers[event]) > 0 {
			r.wire(event)
		}
	}
}

func (r *Registry) wire(event stylish.EventName) {
	if r.wired[event] {
		r.dbg("alreadyWired", "event", event)
		return
	}
	if event.IsLifecycle() {
		return
	}
	if r.signals == nil {
		r.dbg("wire:noSignalSource", "event", event)
		return
	}
	signal := r.signals.Signal(event)
	if signal == nil {
		r.dbg("wire:noSignal", "event", event)
		return
	}

	// Marked before subscribing so a host that fires synchronously from Subscribe
	// cannot cause a second subscription.
	r.wired[event] = true
	r.dbg("subscribe", "event", event)
	signal.Subscribe(func(payload any) {
		r.Dispatch(event, payload)
	})
	r.hooks.FireEventWired(stylish.EventWiredEvent{Event: event})
}

func (r *Registry) dbg(msg string, args ...any) {
	if !r.debug {
		return
	}
	r.logger.Debug(msg, append([]any{"component", "events"}, args...)...)
}
