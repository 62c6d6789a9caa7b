package hooks

import (
	"maps"
	"sync"

	"github.com/rickchristie/stylish"
)

// KeyPrefix is the prefix of every standard stats key. Use your own prefix (e.g. "myext:")
// for custom counters.
const KeyPrefix = "stylish:"

// Handler binding and wiring keys.
const (
	KeyHandlersBound    = "stylish:handlers_bound"
	KeyHandlersBoundFor = "stylish:handlers_bound:" // + event name
	KeyEventsWired      = "stylish:events_wired"
)

// Registration keys.
const (
	KeyComponents     = "stylish:components"
	KeyComponentsFor  = "stylish:components:" // + kind
	KeyCommands       = "stylish:commands"
	KeyCommandsStatic = "stylish:commands_static_run"
	KeyEnums          = "stylish:enums"
	KeyEnumFailures   = "stylish:enum_failures"
)

// Stats is a hook that counts every registration event it observes.
//
// Counters only go up. Keys ending in ":" are families: the suffix names the event or kind,
// e.g. KeyComponentsFor + "item".
//
// # Thread Safety
//
// All methods are safe for concurrent use.
type Stats struct {
	mu       sync.RWMutex
	counters map[string]int64
}

var (
	_ stylish.HandlerBoundHook        = (*Stats)(nil)
	_ stylish.EventWiredHook          = (*Stats)(nil)
	_ stylish.ComponentRegisteredHook = (*Stats)(nil)
	_ stylish.CommandRegisteredHook   = (*Stats)(nil)
	_ stylish.EnumRegisteredHook      = (*Stats)(nil)
)

// NewStats creates a Stats with every counter at zero.
func NewStats() *Stats {
	return &Stats{counters: make(map[string]int64)}
}

// IncrCounter increments key by delta. Panics if delta is negative.
func (s *Stats) IncrCounter(key string, delta int64) {
	if delta < 0 {
		panic("stylish: IncrCounter called with negative delta")
	}
	s.mu.Lock()
	s.counters[key] += delta
	s.mu.Unlock()
}

// GetCounter returns the value of key, or 0 if it was never incremented.
func (s *Stats) GetCounter(key string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[key]
}

// Counters returns a copy of every counter.
func (s *Stats) Counters() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.counters)
}

// Reset sets every counter back to zero.
func (s *Stats) Reset() {
	s.mu.Lock()
	s.counters = make(map[string]int64)
	s.mu.Unlock()
}

// OnHandlerBound implements stylish.HandlerBoundHook.
func (s *Stats) OnHandlerBound(e stylish.HandlerBoundEvent) {
	s.IncrCounter(KeyHandlersBound, 1)
	s.IncrCounter(KeyHandlersBoundFor+e.Event.String(), 1)
}

// OnEventWired implements stylish.EventWiredHook.
func (s *Stats) OnEventWired(stylish.EventWiredEvent) {
	s.IncrCounter(KeyEventsWired, 1)
}

// OnComponentRegistered implements stylish.ComponentRegisteredHook.
func (s *Stats) OnComponentRegistered(e stylish.ComponentRegisteredEvent) {
	s.IncrCounter(KeyComponents, 1)
	s.IncrCounter(KeyComponentsFor+e.Kind, 1)
}

// OnCommandRegistered implements stylish.CommandRegisteredHook.
func (s *Stats) OnCommandRegistered(e stylish.CommandRegisteredEvent) {
	s.IncrCounter(KeyCommands, 1)
	if e.StaticRun {
		s.IncrCounter(KeyCommandsStatic, 1)
	}
}

// OnEnumRegistered implements stylish.EnumRegisteredHook.
func (s *Stats) OnEnumRegistered(e stylish.EnumRegisteredEvent) {
	if e.Err != nil {
		s.IncrCounter(KeyEnumFailures, 1)
		return
	}
	s.IncrCounter(KeyEnums, 1)
}
