package stylish

// EventName identifies a host event that handlers can be attached to.
//
// # Naming Convention
//
// Event names are lower camel case, matching the host's own event object names:
//
//	startup          // one-shot registration window
//	worldLoad        // one-shot, after the world finished loading
//	beforeItemUse    // generic, subscribed on the host lazily
type EventName string

const (
	// Lifecycle events. These are driven directly by the host's one-shot triggers and are
	// never subscribed through a host signal.
	EventStartup   EventName = "startup"
	EventWorldLoad EventName = "worldLoad"

	// Generic events, wired to a host signal the first time they are needed.
	EventBeforeItemUse EventName = "beforeItemUse"
)

// KnownEvents lists every event name this package defines, lifecycle events first.
var KnownEvents = []EventName{
	EventStartup,
	EventWorldLoad,
	EventBeforeItemUse,
}

// IsLifecycle reports whether the event is one of the host's one-shot lifecycle triggers.
func (e EventName) IsLifecycle() bool {
	return e == EventStartup || e == EventWorldLoad
}

// String returns the event name.
func (e EventName) String() string {
	return string(e)
}
