package events

import (
	"fmt"
	"reflect"

	"github.com/rickchristie/stylish"
)

// PayloadError is raised inside a handler invocation when the dispatched payload cannot be
// passed to the handler's parameter type. It is recovered and logged by the dispatcher.
type PayloadError struct {
	Event   stylish.EventName
	Payload any
	Want    reflect.Type
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("event %s: payload %T is not assignable to %s", e.Event, e.Payload, e.Want)
}
