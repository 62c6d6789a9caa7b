package events

import (
	"testing"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/hooks"
	"github.com/rickchristie/stylish/internal/tt"
	"github.com/rickchristie/stylish/simhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Test Hooks
// -----------------------------------------------------------------------------

type recordingHook struct {
	bound []stylish.HandlerBoundEvent
	wired []stylish.EventWiredEvent
}

func (h *recordingHook) OnHandlerBound(e stylish.HandlerBoundEvent) {
	h.bound = append(h.bound, e)
}

func (h *recordingHook) OnEventWired(e stylish.EventWiredEvent) {
	h.wired = append(h.wired, e)
}

// -----------------------------------------------------------------------------
// Registry Tests
// -----------------------------------------------------------------------------

func TestNewRegistry_ReturnsEmptyRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.False(t, registry.Ready())
	assert.Empty(t, registry.Events())
	assert.Equal(t, 0, registry.Len(stylish.EventBeforeItemUse))
}

func TestRegistry_On_ReturnsRegistryForChaining(t *testing.T) {
	registry := NewRegistry()

	result := registry.On(stylish.EventStartup, func(any) {})

	assert.Equal(t, registry, result)
}

func TestRegistry_On_IgnoresNilHandler(t *testing.T) {
	registry := NewRegistry()

	registry.On(stylish.EventStartup, nil)

	assert.Equal(t, 0, registry.Len(stylish.EventStartup))
}

func TestRegistry_Events_FirstRegistrationOrder(t *testing.T) {
	registry := NewRegistry()

	registry.
		On(stylish.EventBeforeItemUse, func(any) {}).
		On(stylish.EventStartup, func(any) {}).
		On(stylish.EventBeforeItemUse, func(any) {})

	assert.Equal(t,
		[]stylish.EventName{stylish.EventBeforeItemUse, stylish.EventStartup},
		registry.Events())
}

// -----------------------------------------------------------------------------
// Dispatch Tests
// -----------------------------------------------------------------------------

func TestRegistry_Dispatch_InsertionOrderEveryTime(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()

	registry.
		On(stylish.EventBeforeItemUse, rec.Handler("a")).
		On(stylish.EventBeforeItemUse, rec.Handler("b")).
		On(stylish.EventBeforeItemUse, rec.Handler("c"))

	registry.Dispatch(stylish.EventBeforeItemUse, 1)
	registry.Dispatch(stylish.EventBeforeItemUse, 2)

	tt.AssertTrace(t, []string{"a", "b", "c", "a", "b", "c"}, rec.Calls())
	assert.Equal(t, []any{1, 1, 1, 2, 2, 2}, rec.Payloads())
}

func TestRegistry_Dispatch_NoDeduplication(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	h := rec.Handler("same")

	registry.On(stylish.EventWorldLoad, h).On(stylish.EventWorldLoad, h)
	registry.Dispatch(stylish.EventWorldLoad, nil)

	assert.Equal(t, 2, registry.Len(stylish.EventWorldLoad))
	assert.Equal(t, 2, rec.Count("same"))
}

func TestRegistry_Dispatch_UnknownEventIsNoop(t *testing.T) {
	registry := NewRegistry()

	assert.NotPanics(t, func() {
		registry.Dispatch("nothingRegistered", nil)
	})
}

func TestRegistry_Dispatch_PanicDoesNotStopLaterHandlers(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()

	registry.
		On(stylish.EventBeforeItemUse, rec.Handler("before")).
		On(stylish.EventBeforeItemUse, func(any) { panic("boom") }).
		On(stylish.EventBeforeItemUse, rec.Handler("after"))

	assert.NotPanics(t, func() {
		registry.Dispatch(stylish.EventBeforeItemUse, nil)
	})
	tt.AssertTrace(t, []string{"before", "after"}, rec.Calls())
}

func TestRegistry_Dispatch_HandlerAddedDuringDispatchRunsNextTime(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()

	registry.On(stylish.EventBeforeItemUse, func(p any) {
		rec.Record("outer", p)
		registry.On(stylish.EventBeforeItemUse, rec.Handler("inner"))
	})

	registry.Dispatch(stylish.EventBeforeItemUse, nil)
	tt.AssertTrace(t, []string{"outer"}, rec.Calls())

	rec.Reset()
	registry.Dispatch(stylish.EventBeforeItemUse, nil)
	tt.AssertTrace(t, []string{"outer", "inner"}, rec.Calls())
}

func TestOn_TypedHandlerReceivesPayload(t *testing.T) {
	registry := NewRegistry()
	var got *stylish.BeforeItemUseEvent

	On(registry, stylish.EventBeforeItemUse, func(e *stylish.BeforeItemUseEvent) {
		got = e
		e.Cancel = true
	})

	payload := &stylish.BeforeItemUseEvent{ItemTypeID: "demo:wand"}
	registry.Dispatch(stylish.EventBeforeItemUse, payload)

	require.NotNil(t, got)
	assert.Same(t, payload, got)
	assert.True(t, payload.Cancel)
}

func TestOn_TypedHandlerNilPayloadIsZeroValue(t *testing.T) {
	registry := NewRegistry()
	called := false

	On(registry, stylish.EventWorldLoad, func(e *stylish.WorldLoadEvent) {
		called = true
		assert.Nil(t, e)
	})
	registry.Dispatch(stylish.EventWorldLoad, nil)

	assert.True(t, called)
}

func TestOn_TypedHandlerWrongPayloadIsIsolated(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()

	On(registry, stylish.EventBeforeItemUse, func(e *stylish.BeforeItemUseEvent) {
		rec.Record("typed", e)
	})
	registry.On(stylish.EventBeforeItemUse, rec.Handler("untyped"))

	registry.Dispatch(stylish.EventBeforeItemUse, "not an item use event")

	tt.AssertTrace(t, []string{"untyped"}, rec.Calls())
}

// -----------------------------------------------------------------------------
// Readiness and Wiring Tests
// -----------------------------------------------------------------------------

func TestRegistry_NoSubscriptionBeforeStartup(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)

	registry.On(stylish.EventBeforeItemUse, func(any) {})

	assert.False(t, registry.IsWired(stylish.EventBeforeItemUse))
	assert.Equal(t, 0, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
}

func TestRegistry_TriggerStartup_WiresPendingEvents(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	rec := tt.NewRecorder()
	registry.On(stylish.EventBeforeItemUse, rec.Handler("use"))

	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.True(t, registry.Ready())
	assert.True(t, registry.IsWired(stylish.EventBeforeItemUse))
	assert.Equal(t, 1, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())

	host.UseItem("player", "demo:wand")
	assert.Equal(t, 1, rec.Count("use"))
}

func TestRegistry_TriggerStartup_BeforeAnyHandlerDoesNotWire(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)

	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.False(t, registry.IsWired(stylish.EventBeforeItemUse))
	assert.Equal(t, 0, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
}

func TestRegistry_WiresAtMostOnce(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	registry.On(stylish.EventBeforeItemUse, func(any) {})

	registry.TriggerStartup(&stylish.StartupEvent{})
	registry.TriggerStartup(&stylish.StartupEvent{})
	registry.On(stylish.EventBeforeItemUse, func(any) {})
	registry.On(stylish.EventBeforeItemUse, func(any) {})
	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.Equal(t, 1, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
}

func TestRegistry_LateRegistrationWiresImmediately(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	registry.TriggerStartup(&stylish.StartupEvent{})

	registry.On(stylish.EventBeforeItemUse, func(any) {})

	assert.True(t, registry.IsWired(stylish.EventBeforeItemUse))
	assert.Equal(t, 1, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
}

func TestRegistry_LateRegistrationDoesNotReplay(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	rec := tt.NewRecorder()
	registry.On(stylish.EventBeforeItemUse, rec.Handler("early"))
	registry.TriggerStartup(&stylish.StartupEvent{})

	host.UseItem("player", "first")
	registry.On(stylish.EventBeforeItemUse, rec.Handler("late"))
	host.UseItem("player", "second")

	tt.AssertTrace(t, []string{"early", "early", "late"}, rec.Calls())
}

func TestRegistry_LifecycleEventsNeverUseSignals(t *testing.T) {
	host := simhost.New(stylish.EventStartup, stylish.EventWorldLoad, stylish.EventBeforeItemUse)
	registry := NewRegistry().SetSignalSource(host)
	registry.On(stylish.EventStartup, func(any) {})
	registry.On(stylish.EventWorldLoad, func(any) {})

	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.False(t, registry.IsWired(stylish.EventStartup))
	assert.False(t, registry.IsWired(stylish.EventWorldLoad))
	assert.Equal(t, 0, host.SignalFor(stylish.EventStartup).Subscribers())
	assert.Equal(t, 0, host.SignalFor(stylish.EventWorldLoad).Subscribers())
}

func TestRegistry_MissingSignalStaysUnwiredAndRetries(t *testing.T) {
	registry := NewRegistry()
	registry.On(stylish.EventBeforeItemUse, func(any) {})
	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.False(t, registry.IsWired(stylish.EventBeforeItemUse))

	host := simhost.New()
	registry.SetSignalSource(host)

	assert.True(t, registry.IsWired(stylish.EventBeforeItemUse))
	assert.Equal(t, 1, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
}

func TestRegistry_HostWithoutSignalForEvent(t *testing.T) {
	host := simhost.New("somethingElse")
	registry := NewRegistry().SetSignalSource(host)
	registry.On(stylish.EventBeforeItemUse, func(any) {})

	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.False(t, registry.IsWired(stylish.EventBeforeItemUse))
}

func TestRegistry_TriggerStartup_DispatchesEveryCall(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	registry.On(stylish.EventStartup, rec.Handler("startup"))
	first := &stylish.StartupEvent{}
	second := &stylish.StartupEvent{}

	registry.TriggerStartup(first)
	registry.TriggerStartup(second)

	assert.Equal(t, []any{first, second}, rec.Payloads())
	assert.True(t, registry.Ready())
}

func TestRegistry_TriggerStartup_WiresBeforeStartupHandlersRun(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	registry.On(stylish.EventBeforeItemUse, func(any) {})

	var wiredDuringStartup bool
	registry.On(stylish.EventStartup, func(any) {
		wiredDuringStartup = registry.IsWired(stylish.EventBeforeItemUse)
	})
	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.True(t, wiredDuringStartup)
}

func TestRegistry_TriggerWorldLoad_IndependentOfReadiness(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	registry.On(stylish.EventWorldLoad, rec.Handler("load"))

	registry.TriggerWorldLoad(&stylish.WorldLoadEvent{WorldName: "w"})

	assert.False(t, registry.Ready())
	assert.Equal(t, 1, rec.Count("load"))
}

func TestRegistry_WiringFiresHook(t *testing.T) {
	hook := &recordingHook{}
	host := simhost.New()
	registry := NewRegistry().
		WithHooks(hooks.NewRegistry().Register(hook)).
		SetSignalSource(host)
	registry.On(stylish.EventBeforeItemUse, func(any) {})

	registry.TriggerStartup(&stylish.StartupEvent{})
	registry.TriggerStartup(&stylish.StartupEvent{})

	assert.Equal(t,
		[]stylish.EventWiredEvent{{Event: stylish.EventBeforeItemUse}},
		hook.wired)
}

func TestRegistry_Reset(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	registry.On(stylish.EventBeforeItemUse, func(any) {})
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")
	registry.TriggerStartup(&stylish.StartupEvent{})

	registry.Reset()

	assert.False(t, registry.Ready())
	assert.False(t, registry.IsWired(stylish.EventBeforeItemUse))
	assert.Empty(t, registry.Events())
	assert.Equal(t, 0, registry.BindInstance(&lamp{}))

	// The signal source survives a reset.
	registry.On(stylish.EventBeforeItemUse, func(any) {})
	registry.TriggerStartup(&stylish.StartupEvent{})
	assert.True(t, registry.IsWired(stylish.EventBeforeItemUse))
}
