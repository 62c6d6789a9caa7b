// Package shim wires the registries together and attaches them to a host.
//
// A Shim owns one event registry, item and block component registrars and a command registrar,
// all sharing the same logger and hooks. Extensions normally use the process-wide instance:
//
//	s := shim.Default()
//	components.MustCollect(s.Items(), "demo:wand", NewWand)
//	...
//	s.Init(host)
//
// Init subscribes to the host's startup and world-load triggers. On startup the collected items,
// blocks and commands are registered in that order, and only then does the event registry mark
// the host ready and wire generic events.
package shim

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/commands"
	"github.com/rickchristie/stylish/components"
	"github.com/rickchristie/stylish/events"
	"github.com/rickchristie/stylish/hooks"
)

// Shim bundles the registries of one extension.
//
// # Thread Safety
//
// Shim is NOT thread-safe. Configure and collect before calling Init.
type Shim struct {
	events   *events.Registry
	items    *components.Registrar
	blocks   *components.Registrar
	commands *commands.Registrar

	hooks  *hooks.Registry
	logger *slog.Logger
	debug  bool

	inited map[stylish.Host]bool
}

// New creates a Shim with empty registries.
func New() *Shim {
	ev := events.NewRegistry()
	return &Shim{
		events:   ev,
		items:    components.NewRegistrar(components.KindItem, ev),
		blocks:   components.NewRegistrar(components.KindBlock, ev),
		commands: commands.NewRegistrar(ev),
		logger:   slog.Default(),
		inited:   make(map[stylish.Host]bool),
	}
}

var (
	defaultOnce sync.Once
	defaultShim *Shim
)

// Default returns the process-wide Shim.
func Default() *Shim {
	defaultOnce.Do(func() {
		defaultShim = New()
	})
	return defaultShim
}

// WithLogger sets the logger of the shim and every registry it owns.
func (s *Shim) WithLogger(logger *slog.Logger) *Shim {
	if logger == nil {
		return s
	}
	s.logger = logger
	s.events.WithLogger(logger)
	s.items.WithLogger(logger)
	s.blocks.WithLogger(logger)
	s.commands.WithLogger(logger)
	return s
}

// WithHooks sets the hook registry of every registry the shim owns.
func (s *Shim) WithHooks(h *hooks.Registry) *Shim {
	s.hooks = h
	s.events.WithHooks(h)
	s.items.WithHooks(h)
	s.blocks.WithHooks(h)
	s.commands.WithHooks(h)
	return s
}

// SetDebugLogging enables or disables debug tracing on the shim and every registry it owns.
func (s *Shim) SetDebugLogging(enabled bool) *Shim {
	s.debug = enabled
	s.events.SetDebugLogging(enabled)
	s.items.SetDebugLogging(enabled)
	s.blocks.SetDebugLogging(enabled)
	s.commands.SetDebugLogging(enabled)
	return s
}

// Events returns the event registry.
func (s *Shim) Events() *events.Registry { return s.events }

// Items returns the item component registrar.
func (s *Shim) Items() *components.Registrar { return s.items }

// Blocks returns the block component registrar.
func (s *Shim) Blocks() *components.Registrar { return s.blocks }

// Commands returns the custom command registrar.
func (s *Shim) Commands() *commands.Registrar { return s.commands }

// Hooks returns the hook registry, or nil.
func (s *Shim) Hooks() *hooks.Registry { return s.hooks }

// Init attaches host as the signal source and subscribes to its startup and world-load
// triggers. Calling Init again with the same host does nothing.
//
// Hosts are remembered by value, so repeat detection needs a comparable host type (pointer
// implementations are). A non-comparable host is attached on every call.
func (s *Shim) Init(host stylish.Host) {
	if host == nil {
		return
	}
	if reflect.TypeOf(host).Comparable() {
		if s.inited[host] {
			return
		}
		s.inited[host] = true
	} else {
		s.logger.Warn("host type is not comparable, repeated Init calls are not detected",
			"component", "shim",
			"host", fmt.Sprintf("%T", host))
	}
	s.dbg("init")

	s.events.SetSignalSource(host)
	host.SubscribeStartup(s.HandleStartup)
	host.SubscribeWorldLoad(s.events.TriggerWorldLoad)
}

// HandleStartup registers items, blocks and commands with the registries carried by e, then
// triggers startup on the event registry. A registry missing from e is skipped. The first error
// aborts the sequence before readiness is signalled.
func (s *Shim) HandleStartup(e *stylish.StartupEvent) error {
	if e == nil {
		e = &stylish.StartupEvent{}
	}
	s.dbg("startup",
		"items", s.items.Len(),
		"blocks", s.blocks.Len(),
		"commands", s.commands.Len())

	if err := s.RegisterAllComponents(e.ItemComponentRegistry, e.BlockComponentRegistry); err != nil {
		return err
	}
	if e.CustomCommandRegistry != nil {
		if err := s.commands.RegisterAll(e.CustomCommandRegistry); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}
	s.events.TriggerStartup(e)
	return nil
}

// RegisterAllComponents registers the collected item components with items, then the block
// components with blocks. A nil registry is skipped.
func (s *Shim) RegisterAllComponents(items, blocks stylish.ComponentRegistry) error {
	if items != nil {
		if err := s.items.RegisterAll(items); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}
	if blocks != nil {
		if err := s.blocks.RegisterAll(blocks); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}
	return nil
}

// Reset clears every collector and the event registry, and forgets which hosts were initialised.
// Logger, hooks and debug settings are kept. Meant for test harnesses.
func (s *Shim) Reset() {
	s.events.Reset()
	s.items.Reset()
	s.blocks.Reset()
	s.commands.Reset()
	s.inited = make(map[stylish.Host]bool)
}

func (s *Shim) dbg(msg string, args ...any) {
	if !s.debug {
		return
	}
	s.logger.Debug(msg, append([]any{"component", "shim"}, args...)...)
}
