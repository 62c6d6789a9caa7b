// Package events provides the event registry: the process-wide table of handler lists, the
// annotation table for instance methods, and the lazy wiring of host event signals.
//
// # Overview
//
// Handlers reach the registry in three ways:
//   - Free-standing functions, attached directly with [Registry.On] or the typed [On].
//   - Instance methods, annotated against a type with [AnnotateMethod] and bound when an
//     instance of that type is passed to [Registry.BindInstance].
//   - Component and command registrars, which bind every instance they construct.
//
// Handler lists only grow. Dispatch walks a list in insertion order; the same handler
// registered twice runs twice.
//
// # Quick Start
//
//	registry := events.NewRegistry()
//
//	// Free-standing, typed handler
//	events.On(registry, stylish.EventBeforeItemUse, func(e *stylish.BeforeItemUseEvent) {
//	    if e.ItemTypeID == "demo:cursed" {
//	        e.Cancel = true
//	    }
//	})
//
//	// Instance method, bound per instance
//	events.AnnotateMethod[*Lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")
//	registry.BindInstance(&Lamp{})
//
//	// Host integration
//	registry.SetSignalSource(host)
//	registry.TriggerStartup(startupEvent)
//
// # Wiring
//
// [stylish.EventStartup] and [stylish.EventWorldLoad] are fired by the host's one-shot triggers
// through [Registry.TriggerStartup] and [Registry.TriggerWorldLoad]. Every other event is wired
// by subscribing to the host signal for that event. An event is wired the first time all of the
// following hold:
//   - startup has been triggered
//   - the event's handler list is non-empty
//   - the event is not already wired
//
// Wiring happens at most once per event. Handlers added after wiring only see future host
// events; nothing is replayed.
//
// # Failures
//
// A panicking handler is recovered and logged at error level; the remaining handlers of the
// same dispatch still run. A payload that cannot be passed to a bound method's parameter type
// is reported the same way.
//
// # Debug Logging
//
// Registration and dispatch tracing is off by default:
//
//	registry.WithLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug}))).
//	    SetDebugLogging(true)
package events
