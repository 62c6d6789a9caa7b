package simhost

import (
	"fmt"

	"github.com/rickchristie/stylish"
)

// Host is an in-memory stylish.Host.
type Host struct {
	signals   map[stylish.EventName]*Signal
	startup   []func(e *stylish.StartupEvent) error
	worldLoad []func(e *stylish.WorldLoadEvent)

	// Items, Blocks and Commands back the StartupEvent handed to startup callbacks.
	Items    *ComponentRegistry
	Blocks   *ComponentRegistry
	Commands *CommandRegistry
}

var _ stylish.Host = (*Host)(nil)

// New creates a host with one signal per given generic event. With no arguments, every known
// generic event gets a signal.
func New(events ...stylish.EventName) *Host {
	if len(events) == 0 {
		for _, e := range stylish.KnownEvents {
			if !e.IsLifecycle() {
				events = append(events, e)
			}
		}
	}
	h := &Host{
		signals:  make(map[stylish.EventName]*Signal, len(events)),
		Items:    NewComponentRegistry(),
		Blocks:   NewComponentRegistry(),
		Commands: NewCommandRegistry(),
	}
	for _, e := range events {
		h.signals[e] = &Signal{}
	}
	return h
}

// Signal implements stylish.SignalSource.
func (h *Host) Signal(event stylish.EventName) stylish.EventSignal {
	s, ok := h.signals[event]
	if !ok {
		return nil
	}
	return s
}

// SignalFor returns the concrete signal for event, or nil.
func (h *Host) SignalFor(event stylish.EventName) *Signal {
	return h.signals[event]
}

// SubscribeStartup implements stylish.Host.
func (h *Host) SubscribeStartup(callback func(e *stylish.StartupEvent) error) {
	h.startup = append(h.startup, callback)
}

// SubscribeWorldLoad implements stylish.Host.
func (h *Host) SubscribeWorldLoad(callback func(e *stylish.WorldLoadEvent)) {
	h.worldLoad = append(h.worldLoad, callback)
}

// StartupSubscribers returns the number of startup callbacks.
func (h *Host) StartupSubscribers() int {
	return len(h.startup)
}

// WorldLoadSubscribers returns the number of world-load callbacks.
func (h *Host) WorldLoadSubscribers() int {
	return len(h.worldLoad)
}

// StartupEvent builds the payload of the startup trigger.
func (h *Host) StartupEvent() *stylish.StartupEvent {
	return &stylish.StartupEvent{
		ItemComponentRegistry:  h.Items,
		BlockComponentRegistry: h.Blocks,
		CustomCommandRegistry:  h.Commands,
	}
}

// Startup fires the startup trigger. Every callback runs; the first error is returned.
func (h *Host) Startup() error {
	e := h.StartupEvent()
	var first error
	for _, cb := range h.startup {
		if err := cb(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// WorldLoad fires the world-loaded trigger.
func (h *Host) WorldLoad(worldName string) {
	e := &stylish.WorldLoadEvent{WorldName: worldName}
	for _, cb := range h.worldLoad {
		cb(e)
	}
}

// UseItem fires beforeItemUse and returns the payload so callers can inspect Cancel.
func (h *Host) UseItem(source, itemTypeID string) *stylish.BeforeItemUseEvent {
	e := &stylish.BeforeItemUseEvent{Source: source, ItemTypeID: itemTypeID}
	if s := h.signals[stylish.EventBeforeItemUse]; s != nil {
		s.Fire(e)
	}
	return e
}

// RunCommand invokes the run handler registered for name.
func (h *Host) RunCommand(
	name string,
	origin *stylish.CommandOrigin,
	args ...any,
) (*stylish.CommandResult, error) {
	call, ok := h.Commands.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	if origin == nil {
		origin = &stylish.CommandOrigin{SourceType: "server", SourceName: "simhost"}
	}
	return call.Run(origin, args...), nil
}

// -----------------------------------------------------------------------------
// Signal
// -----------------------------------------------------------------------------

// Signal is an in-memory stylish.EventSignal.
type Signal struct {
	callbacks []func(payload any)
}

// Subscribe implements stylish.EventSignal.
func (s *Signal) Subscribe(callback func(payload any)) {
	s.callbacks = append(s.callbacks, callback)
}

// Subscribers returns how many times Subscribe was called.
func (s *Signal) Subscribers() int {
	return len(s.callbacks)
}

// Fire delivers payload to every subscriber.
func (s *Signal) Fire(payload any) {
	for _, cb := range s.callbacks {
		cb(payload)
	}
}
