package events

import (
	"reflect"

	"github.com/rickchristie/stylish"
)

// BindInstance binds every method annotated for the instance's type and appends the bound
// handlers to their event lists, in declaration order, then wires each affected event if it is
// already wireable. It returns the number of handlers appended.
//
// The lookup uses the dynamic type of instance. When nothing was annotated for a pointer type
// *T, annotations recorded for T are used instead.
//
// Each annotated name resolves to an exported method, or else to an exported func-typed field
// of the underlying struct. A func with no parameters is called without the payload. Names that
// resolve to anything else, or to a func with more than one or variadic parameters, are skipped. Binding the same instance twice appends its handlers twice.
func (r *Registry) BindInstance(instance any) int {
	if instance == nil {
		return 0
	}
	t := reflect.TypeOf(instance)
	table, ok := r.methods[t]
	if !ok && t.Kind() == reflect.Pointer {
		table, ok = r.methods[t.Elem()]
	}
	if !ok {
		return 0
	}

	v := reflect.ValueOf(instance)
	bound := 0
	for _, event := range table.order {
		keys := table.keys[event]
		for _, key := range keys {
			h, ok := bindMember(event, v, key)
			if !ok {
				continue
			}
			r.append(event, h)
			bound++
			r.hooks.FireHandlerBound(stylish.HandlerBoundEvent{
				Event:  event,
				Type:   t.String(),
				Method: key,
			})
		}
		r.dbg("register:instance", "event", event, "type", t.String(), "count", len(keys))
		r.maybeWire(event)
	}
	return bound
}

// bindMember resolves key on v and adapts it to a Handler.
func bindMember(event stylish.EventName, v reflect.Value, key string) (stylish.Handler, bool) {
	fn := v.MethodByName(key)
	if !fn.IsValid() {
		fn = funcField(v, key)
	}
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, false
	}
	ft := fn.Type()
	if ft.IsVariadic() || ft.NumIn() > 1 {
		return nil, false
	}
	if ft.NumIn() == 0 {
		return func(any) {
			fn.Call(nil)
		}, true
	}
	in := ft.In(0)
	return func(payload any) {
		fn.Call([]reflect.Value{payloadValue(event, payload, in)})
	}, true
}

// funcField returns the exported, non-nil func field named key of the struct behind v.
func funcField(v reflect.Value, key string) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	sf, ok := v.Type().FieldByName(key)
	if !ok || !sf.IsExported() {
		return reflect.Value{}
	}
	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil || f.Kind() != reflect.Func || f.IsNil() {
		return reflect.Value{}
	}
	return f
}

func payloadValue(event stylish.EventName, payload any, in reflect.Type) reflect.Value {
	if payload == nil {
		return reflect.Zero(in)
	}
	pv := reflect.ValueOf(payload)
	if !pv.Type().AssignableTo(in) {
		panic(&PayloadError{Event: event, Payload: payload, Want: in})
	}
	return pv
}
