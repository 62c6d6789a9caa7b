package stylish

// Host is the runtime the shim registers into. It exposes the two one-shot lifecycle triggers
// and a signal for every generic event it supports.
//
// Implementations are provided by the embedding runtime. See the simhost package for an
// in-memory implementation.
type Host interface {
	SignalSource

	// SubscribeStartup registers the callback for the startup trigger. The host calls it once,
	// while its registration window is open. A returned error is reported by the host.
	SubscribeStartup(callback func(e *StartupEvent) error)

	// SubscribeWorldLoad registers the callback for the world-loaded trigger.
	SubscribeWorldLoad(callback func(e *WorldLoadEvent))
}

// SignalSource resolves the host subscription object for a generic event.
type SignalSource interface {
	// Signal returns the signal for the event, or nil if the host does not provide one.
	Signal(event EventName) EventSignal
}

// EventSignal is a host subscription object for one generic event.
type EventSignal interface {
	// Subscribe registers callback to receive every future occurrence of the event.
	Subscribe(callback func(payload any))
}

// ComponentRegistry is the host registry for custom item or block components.
type ComponentRegistry interface {
	// RegisterCustomComponent registers component under id.
	RegisterCustomComponent(id string, component any) error
}

// CommandRegistry is the host registry for custom commands.
type CommandRegistry interface {
	// RegisterCommand registers a command declaration together with its run handler.
	RegisterCommand(command Command, run RunFunc) error

	// RegisterEnum registers a named set of values usable by enum parameters.
	RegisterEnum(name string, values []string) error
}
