package components

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/events"
	"github.com/rickchristie/stylish/hooks"
)

// Kind identifies which host component registry a Registrar feeds.
type Kind string

const (
	KindItem  Kind = "item"
	KindBlock Kind = "block"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// entry is one collected component type.
type entry struct {
	id       string
	typeName string
	build    func() any
}

// Registrar collects component constructors of one Kind.
//
// # Thread Safety
//
// Registrar is NOT thread-safe. Collect from init functions or main before the host starts.
type Registrar struct {
	kind    Kind
	events  *events.Registry
	entries []entry

	hooks  *hooks.Registry
	logger *slog.Logger
	debug  bool
}

// NewRegistrar creates a Registrar for kind whose instances are bound through ev.
// A nil ev disables instance binding.
func NewRegistrar(kind Kind, ev *events.Registry) *Registrar {
	return &Registrar{
		kind:   kind,
		events: ev,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for debug tracing.
func (r *Registrar) WithLogger(logger *slog.Logger) *Registrar {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// WithHooks sets the hook registry notified of each accepted component.
func (r *Registrar) WithHooks(h *hooks.Registry) *Registrar {
	r.hooks = h
	return r
}

// SetDebugLogging enables or disables debug tracing of collection and registration.
func (r *Registrar) SetDebugLogging(enabled bool) *Registrar {
	r.debug = enabled
	return r
}

// Kind returns the registrar's component kind.
func (r *Registrar) Kind() Kind {
	return r.kind
}

// Collect appends a component constructor under id. An empty id, or a nil constructor, is
// rejected immediately with a *stylish.StructuralError naming T; the registrar is unchanged.
func Collect[T any](r *Registrar, id string, ctor func() T) error {
	typeName := reflect.TypeFor[T]().String()
	if id == "" {
		return &stylish.StructuralError{
			Kind:   r.kind.String() + " component",
			Name:   typeName,
			Reason: "is missing a component id",
			Err:    stylish.ErrMissingComponentID,
		}
	}
	if ctor == nil {
		return &stylish.StructuralError{
			Kind:   r.kind.String() + " component",
			Name:   typeName,
			Reason: "has no constructor",
		}
	}

	r.entries = append(r.entries, entry{
		id:       id,
		typeName: typeName,
		build:    func() any { return ctor() },
	})
	r.dbg("collect", "id", id, "type", typeName)
	return nil
}

// MustCollect is like Collect but panics on error.
func MustCollect[T any](r *Registrar, id string, ctor func() T) {
	if err := Collect(r, id, ctor); err != nil {
		panic(err)
	}
}

// RegisterAll builds every collected component in collection order, binds its annotated
// methods and registers it with host. The first host error stops the pass.
func (r *Registrar) RegisterAll(host stylish.ComponentRegistry) error {
	if host == nil {
		return fmt.Errorf("%s component registry is nil", r.kind)
	}
	r.dbg("registerAll", "count", len(r.entries))

	for _, e := range r.entries {
		instance := e.build()
		if r.events != nil {
			r.events.BindInstance(instance)
		}
		if err := host.RegisterCustomComponent(e.id, instance); err != nil {
			return fmt.Errorf("register %s component %q: %w", r.kind, e.id, err)
		}
		r.dbg("registered", "id", e.id, "type", e.typeName)
		r.hooks.FireComponentRegistered(stylish.ComponentRegisteredEvent{
			Kind: r.kind.String(),
			ID:   e.id,
			Type: e.typeName,
		})
	}
	return nil
}

// IDs returns the collected ids in collection order.
func (r *Registrar) IDs() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	return ids
}

// Len returns the number of collected components.
func (r *Registrar) Len() int {
	return len(r.entries)
}

// Reset drops every collected constructor. Meant for test harnesses.
func (r *Registrar) Reset() {
	r.entries = nil
}

func (r *Registrar) dbg(msg string, args ...any) {
	if !r.debug {
		return
	}
	r.logger.Debug(msg, append([]any{"component", "components", "kind", string(r.kind)}, args...)...)
}
