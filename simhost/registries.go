package simhost

import (
	"fmt"

	"github.com/rickchristie/stylish"
)

// -----------------------------------------------------------------------------
// Component Registry
// -----------------------------------------------------------------------------

// ComponentCall is one recorded RegisterCustomComponent call.
type ComponentCall struct {
	ID        string
	Component any
}

// ComponentRegistry records component registrations.
type ComponentRegistry struct {
	calls []ComponentCall
	fail  map[string]error
}

var _ stylish.ComponentRegistry = (*ComponentRegistry)(nil)

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{fail: make(map[string]error)}
}

// RegisterCustomComponent implements stylish.ComponentRegistry.
func (r *ComponentRegistry) RegisterCustomComponent(id string, component any) error {
	if err := r.fail[id]; err != nil {
		return err
	}
	r.calls = append(r.calls, ComponentCall{ID: id, Component: component})
	return nil
}

// Fail makes registration of id return err.
func (r *ComponentRegistry) Fail(id string, err error) *ComponentRegistry {
	r.fail[id] = err
	return r
}

// Calls returns the recorded registrations in order.
func (r *ComponentRegistry) Calls() []ComponentCall {
	out := make([]ComponentCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// IDs returns the registered ids in order.
func (r *ComponentRegistry) IDs() []string {
	ids := make([]string, len(r.calls))
	for i, c := range r.calls {
		ids[i] = c.ID
	}
	return ids
}

// Get returns the most recently registered component for id.
func (r *ComponentRegistry) Get(id string) (any, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].ID == id {
			return r.calls[i].Component, true
		}
	}
	return nil, false
}

// -----------------------------------------------------------------------------
// Command Registry
// -----------------------------------------------------------------------------

// CommandCall is one recorded RegisterCommand call.
type CommandCall struct {
	Command stylish.Command
	Run     stylish.RunFunc
}

// EnumCall is one recorded RegisterEnum call.
type EnumCall struct {
	Name   string
	Values []string
}

// CommandRegistry records command and enum registrations.
type CommandRegistry struct {
	commands  []CommandCall
	enums     []EnumCall
	failEnum  map[string]error
	panicEnum map[string]bool
}

var _ stylish.CommandRegistry = (*CommandRegistry)(nil)

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		failEnum:  make(map[string]error),
		panicEnum: make(map[string]bool),
	}
}

// RegisterCommand implements stylish.CommandRegistry.
func (r *CommandRegistry) RegisterCommand(command stylish.Command, run stylish.RunFunc) error {
	if command == nil || command.Definition() == nil {
		return fmt.Errorf("command declaration is nil")
	}
	if run == nil {
		return fmt.Errorf("command %q: run handler is nil", command.Definition().Name)
	}
	r.commands = append(r.commands, CommandCall{Command: command, Run: run})
	return nil
}

// RegisterEnum implements stylish.CommandRegistry.
func (r *CommandRegistry) RegisterEnum(name string, values []string) error {
	if r.panicEnum[name] {
		panic(fmt.Sprintf("enum %q rejected", name))
	}
	if err := r.failEnum[name]; err != nil {
		return err
	}
	r.enums = append(r.enums, EnumCall{Name: name, Values: append([]string(nil), values...)})
	return nil
}

// FailEnum makes registration of the named enum return err.
func (r *CommandRegistry) FailEnum(name string, err error) *CommandRegistry {
	r.failEnum[name] = err
	return r
}

// PanicEnum makes registration of the named enum panic.
func (r *CommandRegistry) PanicEnum(name string) *CommandRegistry {
	r.panicEnum[name] = true
	return r
}

// Commands returns the recorded command registrations in order.
func (r *CommandRegistry) Commands() []CommandCall {
	out := make([]CommandCall, len(r.commands))
	copy(out, r.commands)
	return out
}

// Enums returns the recorded enum registrations in order.
func (r *CommandRegistry) Enums() []EnumCall {
	out := make([]EnumCall, len(r.enums))
	copy(out, r.enums)
	return out
}

// Lookup returns the most recent registration of the named command.
func (r *CommandRegistry) Lookup(name string) (CommandCall, bool) {
	for i := len(r.commands) - 1; i >= 0; i-- {
		if r.commands[i].Command.Definition().Name == name {
			return r.commands[i], true
		}
	}
	return CommandCall{}, false
}

// Names returns the registered command names in order.
func (r *CommandRegistry) Names() []string {
	names := make([]string, len(r.commands))
	for i, c := range r.commands {
		names[i] = c.Command.Definition().Name
	}
	return names
}
