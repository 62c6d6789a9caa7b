package events

import (
	"reflect"
	"slices"

	"github.com/rickchristie/stylish"
)

// methodTable holds the annotated method names of one type, per event, in declaration order.
type methodTable struct {
	order []stylish.EventName
	keys  map[stylish.EventName][]string
}

// AnnotateMethod records that method on every instance of T should be bound to event when the
// instance is passed to BindInstance. Recording the same (T, event, method) twice has no effect.
//
// T is the exact type the constructor returns, usually a pointer:
//
//	events.AnnotateMethod[*Lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")
func AnnotateMethod[T any](r *Registry, event stylish.EventName, method string) *Registry {
	return r.AnnotateType(reflect.TypeFor[T](), event, method)
}

// AnnotateType is the reflect.Type form of AnnotateMethod.
func (r *Registry) AnnotateType(t reflect.Type, event stylish.EventName, method string) *Registry {
	if t == nil || method == "" {
		return r
	}
	table, ok := r.methods[t]
	if !ok {
		table = &methodTable{keys: make(map[stylish.EventName][]string)}
		r.methods[t] = table
	}
	keys, seen := table.keys[event]
	if !seen {
		table.order = append(table.order, event)
	}
	if !slices.Contains(keys, method) {
		table.keys[event] = append(keys, method)
	}
	r.dbg("annotate:instance", "event", event, "type", t.String(), "method", method)
	return r
}

// Annotations returns the annotated method names recorded for t and event, in declaration order.
func (r *Registry) Annotations(t reflect.Type, event stylish.EventName) []string {
	table, ok := r.methods[t]
	if !ok {
		return nil
	}
	return slices.Clone(table.keys[event])
}
