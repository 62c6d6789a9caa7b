// Package components collects item and block custom components and registers them with the
// host once its component registries exist.
//
// # Overview
//
// Extensions collect each component type with the id the host should know it by. Collection
// happens any time before startup; nothing reaches the host until RegisterAll runs inside the
// startup callback.
//
//	items := components.NewRegistrar(components.KindItem, eventRegistry)
//
//	components.MustCollect(items, "demo:wand", func() *Wand { return &Wand{} })
//
//	// Inside the host's startup callback:
//	if err := items.RegisterAll(e.ItemComponentRegistry); err != nil {
//	    return err
//	}
//
// # Registration Pass
//
// RegisterAll walks the collected constructors in collection order. For each it builds an
// instance, binds the instance's annotated methods through the event registry and forwards the
// instance to the host. The collected list is kept, so a second pass builds and registers every
// component again.
//
// A constructor that panics aborts the pass with that panic. A host error aborts the pass and is
// returned wrapped with the component id.
package components
