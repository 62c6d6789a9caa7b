// Package stylish is a registration and event-dispatch shim for extensions that run inside
// a host runtime with imperative registration calls and subscription-based lifecycle events.
//
// Extension code is written before the host is ready to accept anything. Item components,
// block components and custom commands are collected up front, handler methods are annotated
// against their types, and free-standing handlers are attached to event names. When the host
// opens its registration window the collected types are instantiated, their annotated methods
// are bound, everything is forwarded to the host registries, and only then are host event
// subscriptions wired.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "github.com/rickchristie/stylish"
//	    "github.com/rickchristie/stylish/components"
//	    "github.com/rickchristie/stylish/commands"
//	    "github.com/rickchristie/stylish/events"
//	    "github.com/rickchristie/stylish/shim"
//	)
//
//	type Wand struct{ uses int }
//
//	func (w *Wand) OnUse(e *stylish.BeforeItemUseEvent) { w.uses++ }
//
//	type Hello struct{ stylish.CustomCommand }
//
//	func (h *Hello) Run(origin *stylish.CommandOrigin, args ...any) *stylish.CommandResult {
//	    return stylish.Success("hello " + origin.SourceName)
//	}
//
//	func init() {
//	    s := shim.Default()
//
//	    // 1. Collect component and command types
//	    components.MustCollect(s.Items(), "demo:wand", func() *Wand { return &Wand{} })
//	    commands.MustCollect(s.Commands(), func() *Hello {
//	        return &Hello{stylish.CustomCommand{Name: "demo:hello", Description: "Says hello"}}
//	    })
//
//	    // 2. Annotate instance methods and register free-standing handlers
//	    events.AnnotateMethod[*Wand](s.Events(), stylish.EventBeforeItemUse, "OnUse")
//	    events.On(s.Events(), stylish.EventWorldLoad, func(e *stylish.WorldLoadEvent) {
//	        // world is ready
//	    })
//	}
//
//	// 3. Hand the host over once it exists
//	func Main(host stylish.Host) {
//	    shim.Default().Init(host)
//	}
//
// # Lifecycle
//
// The registry is created once at process start and moves through three phases:
//
//  1. Collection: types, method annotations and handlers are recorded. Nothing touches the host.
//  2. Registration: the host fires its startup trigger. Every collected type is instantiated,
//     its annotated methods are bound, and it is forwarded to the host registries.
//  3. Dispatch: startup handlers run, generic events are wired to host signals, and host events
//     are fanned out to the handler lists in insertion order.
//
// Generic events (anything other than [EventStartup] and [EventWorldLoad]) are subscribed on the
// host at most once, and only after startup, and only if at least one handler exists.
//
// # Errors
//
// A collected type that is missing a declaration it needs fails fast with a [StructuralError]
// naming the type. Registration passes abort on the first such error. Handler panics during
// dispatch are recovered and logged so later handlers still run.
//
// # Thread Safety
//
// The registries are NOT thread-safe. Collection and registration happen on the goroutine that
// owns the host callbacks, as does dispatch.
package stylish
