// Package loggers provides reusable logging hooks for integration testing.
package loggers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rickchristie/stylish"
	"gopkg.in/yaml.v3"
)

// LoggerHook implements all hook interfaces to log everything the registries do.
// Events are logged as YAML for easy reading.
type LoggerHook struct {
	out io.Writer
	now func() time.Time
}

var (
	_ stylish.HandlerBoundHook        = (*LoggerHook)(nil)
	_ stylish.EventWiredHook          = (*LoggerHook)(nil)
	_ stylish.ComponentRegisteredHook = (*LoggerHook)(nil)
	_ stylish.CommandRegisteredHook   = (*LoggerHook)(nil)
	_ stylish.EnumRegisteredHook      = (*LoggerHook)(nil)
)

// NewLoggerHook creates a new LoggerHook that writes to stdout.
func NewLoggerHook() *LoggerHook {
	return NewLoggerHookWithWriter(os.Stdout)
}

// NewLoggerHookWithWriter creates a new LoggerHook that writes to the given writer.
func NewLoggerHookWithWriter(w io.Writer) *LoggerHook {
	return &LoggerHook{out: w, now: time.Now}
}

// WithClock replaces the timestamp source. Tests use it for stable output.
func (h *LoggerHook) WithClock(now func() time.Time) *LoggerHook {
	h.now = now
	return h
}

// logEvent logs an event header with timestamp.
func (h *LoggerHook) logEvent(name string) {
	timestamp := h.now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(h.out, "\n>>> [%s]: %s\n", name, timestamp)
}

func (h *LoggerHook) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(h.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}

// OnHandlerBound logs an instance method bound to an event.
func (h *LoggerHook) OnHandlerBound(event stylish.HandlerBoundEvent) {
	h.logEvent("HandlerBound")
	h.logYAML(map[string]any{
		"event":  event.Event.String(),
		"type":   event.Type,
		"method": event.Method,
	})
}

// OnEventWired logs a host subscription.
func (h *LoggerHook) OnEventWired(event stylish.EventWiredEvent) {
	h.logEvent("EventWired")
	h.logYAML(map[string]any{"event": event.Event.String()})
}

// OnComponentRegistered logs a component accepted by the host.
func (h *LoggerHook) OnComponentRegistered(event stylish.ComponentRegisteredEvent) {
	h.logEvent("ComponentRegistered")
	h.logYAML(map[string]any{
		"kind": event.Kind,
		"id":   event.ID,
		"type": event.Type,
	})
}

// OnCommandRegistered logs a command accepted by the host.
func (h *LoggerHook) OnCommandRegistered(event stylish.CommandRegisteredEvent) {
	h.logEvent("CommandRegistered")
	h.logYAML(map[string]any{
		"name":       event.Name,
		"type":       event.Type,
		"static_run": event.StaticRun,
	})
}

// OnEnumRegistered logs an enum registration attempt and its outcome.
func (h *LoggerHook) OnEnumRegistered(event stylish.EnumRegisteredEvent) {
	h.logEvent("EnumRegistered")
	data := map[string]any{
		"name":   event.Name,
		"values": event.Values,
	}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	h.logYAML(data)
}
