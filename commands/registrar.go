package commands

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/events"
	"github.com/rickchristie/stylish/hooks"
)

// Option configures one collected command.
type Option func(*entry)

// WithRun supplies the command's run handler at collection time. It takes precedence over a
// Run method on the instance.
func WithRun(fn stylish.RunFunc) Option {
	return func(e *entry) {
		e.run = fn
	}
}

// Named overrides the type name reported in structural errors and hooks. Collectors that build
// many commands from one Go type use it to tell them apart.
func Named(name string) Option {
	return func(e *entry) {
		if name != "" {
			e.typeName = name
		}
	}
}

// entry is one collected command type.
type entry struct {
	typeName string
	build    func() stylish.Command
	run      stylish.RunFunc
}

// Registrar collects custom command constructors.
//
// # Thread Safety
//
// Registrar is NOT thread-safe. Collect from init functions or main before the host starts.
type Registrar struct {
	events  *events.Registry
	entries []entry

	hooks  *hooks.Registry
	logger *slog.Logger
	debug  bool
}

// NewRegistrar creates a Registrar whose instances are bound through ev.
// A nil ev disables instance binding.
func NewRegistrar(ev *events.Registry) *Registrar {
	return &Registrar{
		events: ev,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for enum warnings and debug tracing.
func (r *Registrar) WithLogger(logger *slog.Logger) *Registrar {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// WithHooks sets the hook registry notified of each command and enum registration.
func (r *Registrar) WithHooks(h *hooks.Registry) *Registrar {
	r.hooks = h
	return r
}

// SetDebugLogging enables or disables debug tracing of collection and registration.
func (r *Registrar) SetDebugLogging(enabled bool) *Registrar {
	r.debug = enabled
	return r
}

// Collect appends a command constructor. A nil constructor is an error.
func Collect[T stylish.Command](r *Registrar, ctor func() T, opts ...Option) error {
	typeName := reflect.TypeFor[T]().String()
	if ctor == nil {
		return &stylish.StructuralError{
			Kind:   "custom command",
			Name:   typeName,
			Reason: "has no constructor",
		}
	}

	e := entry{
		typeName: typeName,
		build:    func() stylish.Command { return ctor() },
	}
	for _, opt := range opts {
		opt(&e)
	}
	r.entries = append(r.entries, e)
	r.dbg("collect", "type", typeName, "staticRun", e.run != nil)
	return nil
}

// MustCollect is like Collect but panics on error.
func MustCollect[T stylish.Command](r *Registrar, ctor func() T, opts ...Option) {
	if err := Collect(r, ctor, opts...); err != nil {
		panic(err)
	}
}

// RegisterAll builds every collected command in collection order, binds its annotated
// methods, resolves its run handler, registers its enum parameters and registers the command
// with host. A missing run handler or a host command error stops the pass.
func (r *Registrar) RegisterAll(host stylish.CommandRegistry) error {
	if host == nil {
		return fmt.Errorf("custom command registry is nil")
	}
	r.dbg("registerAll", "count", len(r.entries))

	for _, e := range r.entries {
		instance := e.build()
		if r.events != nil {
			r.events.BindInstance(instance)
		}

		run, static := resolveRun(e, instance)
		if run == nil {
			return &stylish.StructuralError{
				Kind:   "custom command",
				Name:   e.typeName,
				Reason: "has no run handler: supply commands.WithRun or implement Run(origin, args...)",
				Err:    stylish.ErrMissingRunHandler,
			}
		}

		def := instance.Definition()
		if def == nil {
			return fmt.Errorf("custom command %s: Definition returned nil", e.typeName)
		}
		r.registerEnums(host, def)

		if err := host.RegisterCommand(instance, run); err != nil {
			return fmt.Errorf("register custom command %q: %w", def.Name, err)
		}
		r.dbg("registered", "name", def.Name, "type", e.typeName, "staticRun", static)
		r.hooks.FireCommandRegistered(stylish.CommandRegisteredEvent{
			Name:      def.Name,
			Type:      e.typeName,
			StaticRun: static,
		})
	}
	return nil
}

// Len returns the number of collected commands.
func (r *Registrar) Len() int {
	return len(r.entries)
}

// Reset drops every collected constructor. Meant for test harnesses.
func (r *Registrar) Reset() {
	r.entries = nil
}

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

// resolveRun picks the collection-time handler first, then the instance's Run method.
func resolveRun(e entry, instance stylish.Command) (stylish.RunFunc, bool) {
	if e.run != nil {
		return e.run, true
	}
	if runner, ok := instance.(stylish.CommandRunner); ok {
		return runner.Run, false
	}
	return nil, false
}

// registerEnums registers each distinct enum parameter of def, mandatory list first.
func (r *Registrar) registerEnums(host stylish.CommandRegistry, def *stylish.CustomCommand) {
	seen := make(map[string]bool)
	params := make([]stylish.CommandParameter, 0, len(def.MandatoryParameters)+len(def.OptionalParameters))
	params = append(params, def.MandatoryParameters...)
	params = append(params, def.OptionalParameters...)

	for _, p := range params {
		if p.Type != stylish.ParamEnum || len(p.Values) == 0 || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		err := r.registerEnum(host, p.Name, p.Values)
		if err != nil {
			r.logger.Warn("failed to register enum",
				"component", "commands",
				"command", def.Name,
				"enum", p.Name,
				"error", err)
		}
		r.hooks.FireEnumRegistered(stylish.EnumRegisteredEvent{
			Name:   p.Name,
			Values: p.Values,
			Err:    err,
		})
	}
}

// registerEnum calls the host and converts a panic into an error.
func (r *Registrar) registerEnum(host stylish.CommandRegistry, name string, values []string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("enum %q: %v", name, rec)
		}
	}()
	r.dbg("registerEnum", "enum", name, "values", values)
	return host.RegisterEnum(name, values)
}

func (r *Registrar) dbg(msg string, args ...any) {
	if !r.debug {
		return
	}
	r.logger.Debug(msg, append([]any{"component", "commands"}, args...)...)
}
