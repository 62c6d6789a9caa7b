package events

import (
	"reflect"
	"testing"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/hooks"
	"github.com/rickchristie/stylish/internal/tt"
	"github.com/rickchristie/stylish/simhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Test Types
// -----------------------------------------------------------------------------

type lamp struct {
	name string
	rec  *tt.Recorder
}

func (l *lamp) OnWorldLoad(e *stylish.WorldLoadEvent) {
	l.rec.Recordf("%s.OnWorldLoad", l.name)
}

func (l *lamp) OnUse(e *stylish.BeforeItemUseEvent) {
	l.rec.Recordf("%s.OnUse", l.name)
}

func (l *lamp) AlsoOnUse(e *stylish.BeforeItemUseEvent) {
	l.rec.Recordf("%s.AlsoOnUse", l.name)
}

func (l *lamp) TwoArgs(a, b any) {
	l.rec.Recordf("%s.TwoArgs", l.name)
}

type wand struct {
	OnUse   func(e *stylish.BeforeItemUseEvent)
	Charges int
	hidden  func(any)
}

type stone struct {
	rec *tt.Recorder
}

func (s stone) OnWorldLoad(any) {
	s.rec.Recordf("stone.OnWorldLoad")
}

type bell struct {
	rings int
}

func (b *bell) Ring() {
	b.rings++
}

func (b *bell) RingMany(n ...int) {
	b.rings += len(n)
}

// -----------------------------------------------------------------------------
// Annotation Tests
// -----------------------------------------------------------------------------

func TestAnnotateMethod_Deduplicates(t *testing.T) {
	registry := NewRegistry()

	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "OnUse")
	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "OnUse")
	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "AlsoOnUse")

	assert.Equal(t,
		[]string{"OnUse", "AlsoOnUse"},
		registry.Annotations(reflect.TypeFor[*lamp](), stylish.EventBeforeItemUse))
}

func TestAnnotateType_IgnoresEmptyInput(t *testing.T) {
	registry := NewRegistry()

	registry.AnnotateType(nil, stylish.EventWorldLoad, "OnWorldLoad")
	registry.AnnotateType(reflect.TypeFor[*lamp](), stylish.EventWorldLoad, "")

	assert.Nil(t, registry.Annotations(reflect.TypeFor[*lamp](), stylish.EventWorldLoad))
}

func TestAnnotateMethod_DoesNotRegisterHandlers(t *testing.T) {
	registry := NewRegistry()

	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")

	assert.Equal(t, 0, registry.Len(stylish.EventWorldLoad))
}

// -----------------------------------------------------------------------------
// BindInstance Tests
// -----------------------------------------------------------------------------

func TestBindInstance_BindsInDeclarationOrder(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "OnUse")
	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "AlsoOnUse")
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")

	n := registry.BindInstance(&lamp{name: "l", rec: rec})
	require.Equal(t, 3, n)

	registry.Dispatch(stylish.EventBeforeItemUse, &stylish.BeforeItemUseEvent{})
	registry.Dispatch(stylish.EventWorldLoad, &stylish.WorldLoadEvent{})

	tt.AssertTrace(t, []string{"l.OnUse", "l.AlsoOnUse", "l.OnWorldLoad"}, rec.Calls())
}

func TestBindInstance_MethodValueBoundToInstance(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")

	registry.BindInstance(&lamp{name: "first", rec: rec})
	registry.BindInstance(&lamp{name: "second", rec: rec})
	registry.Dispatch(stylish.EventWorldLoad, nil)

	tt.AssertTrace(t, []string{"first.OnWorldLoad", "second.OnWorldLoad"}, rec.Calls())
}

func TestBindInstance_TwiceAppendsTwice(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")
	l := &lamp{name: "l", rec: rec}

	registry.BindInstance(l)
	registry.BindInstance(l)
	registry.Dispatch(stylish.EventWorldLoad, nil)

	assert.Equal(t, 2, registry.Len(stylish.EventWorldLoad))
	assert.Equal(t, 2, rec.Count("l.OnWorldLoad"))
}

func TestBindInstance_UnannotatedTypeBindsNothing(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, 0, registry.BindInstance(&lamp{}))
	assert.Equal(t, 0, registry.BindInstance(nil))
	assert.Empty(t, registry.Events())
}

func TestBindInstance_SkipsNonCallableMembers(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "Missing")
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "TwoArgs")
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "name")
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")

	n := registry.BindInstance(&lamp{name: "l", rec: rec})
	registry.Dispatch(stylish.EventWorldLoad, nil)

	assert.Equal(t, 1, n)
	tt.AssertTrace(t, []string{"l.OnWorldLoad"}, rec.Calls())
}

func TestBindInstance_FuncField(t *testing.T) {
	registry := NewRegistry()
	var got *stylish.BeforeItemUseEvent
	AnnotateMethod[*wand](registry, stylish.EventBeforeItemUse, "OnUse")

	n := registry.BindInstance(&wand{OnUse: func(e *stylish.BeforeItemUseEvent) { got = e }})
	payload := &stylish.BeforeItemUseEvent{ItemTypeID: "demo:wand"}
	registry.Dispatch(stylish.EventBeforeItemUse, payload)

	assert.Equal(t, 1, n)
	assert.Same(t, payload, got)
}

func TestBindInstance_SkipsNilUnexportedAndNonFuncFields(t *testing.T) {
	registry := NewRegistry()
	AnnotateMethod[*wand](registry, stylish.EventBeforeItemUse, "OnUse")
	AnnotateMethod[*wand](registry, stylish.EventBeforeItemUse, "Charges")
	AnnotateMethod[*wand](registry, stylish.EventBeforeItemUse, "hidden")

	n := registry.BindInstance(&wand{hidden: func(any) {}})

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, registry.Len(stylish.EventBeforeItemUse))
}

func TestBindInstance_PointerFallsBackToValueAnnotations(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[stone](registry, stylish.EventWorldLoad, "OnWorldLoad")

	assert.Equal(t, 1, registry.BindInstance(&stone{rec: rec}))
	assert.Equal(t, 1, registry.BindInstance(stone{rec: rec}))

	registry.Dispatch(stylish.EventWorldLoad, nil)
	assert.Equal(t, 2, rec.Count("stone.OnWorldLoad"))
}

func TestBindInstance_WrongPayloadIsIsolated(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "OnUse")
	registry.BindInstance(&lamp{name: "l", rec: rec})
	registry.On(stylish.EventBeforeItemUse, rec.Handler("after"))

	assert.NotPanics(t, func() {
		registry.Dispatch(stylish.EventBeforeItemUse, 42)
	})
	tt.AssertTrace(t, []string{"after"}, rec.Calls())
}

func TestBindInstance_AfterReadinessWiresOnce(t *testing.T) {
	host := simhost.New()
	registry := NewRegistry().SetSignalSource(host)
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventBeforeItemUse, "OnUse")
	registry.TriggerStartup(&stylish.StartupEvent{})

	registry.BindInstance(&lamp{name: "l", rec: rec})
	host.UseItem("player", "demo:wand")

	assert.Equal(t, 1, host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
	tt.AssertTrace(t, []string{"l.OnUse"}, rec.Calls())
}

func TestBindInstance_InterleavesWithFunctionHandlers(t *testing.T) {
	registry := NewRegistry()
	rec := tt.NewRecorder()
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")

	registry.On(stylish.EventWorldLoad, rec.Handler("fn1"))
	registry.BindInstance(&lamp{name: "l", rec: rec})
	registry.On(stylish.EventWorldLoad, rec.Handler("fn2"))
	registry.Dispatch(stylish.EventWorldLoad, nil)

	tt.AssertTrace(t, []string{"fn1", "l.OnWorldLoad", "fn2"}, rec.Calls())
}

func TestBindInstance_FiresHandlerBoundHook(t *testing.T) {
	hook := &recordingHook{}
	registry := NewRegistry().WithHooks(hooks.NewRegistry().Register(hook))
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "OnWorldLoad")
	AnnotateMethod[*lamp](registry, stylish.EventWorldLoad, "TwoArgs")

	registry.BindInstance(&lamp{rec: tt.NewRecorder()})

	assert.Equal(t, []stylish.HandlerBoundEvent{{
		Event:  stylish.EventWorldLoad,
		Type:   "*events.lamp",
		Method: "OnWorldLoad",
	}}, hook.bound)
}

func TestBindInstance_ZeroArgMethod(t *testing.T) {
	registry := NewRegistry()
	AnnotateMethod[*bell](registry, stylish.EventWorldLoad, "Ring")
	b := &bell{}

	n := registry.BindInstance(b)
	registry.TriggerWorldLoad(&stylish.WorldLoadEvent{WorldName: "overworld"})
	registry.Dispatch(stylish.EventWorldLoad, nil)

	assert.Equal(t, 1, n)
	assert.Equal(t, 2, b.rings)
}

func TestBindInstance_SkipsVariadicMethod(t *testing.T) {
	registry := NewRegistry()
	AnnotateMethod[*bell](registry, stylish.EventWorldLoad, "RingMany")

	assert.Equal(t, 0, registry.BindInstance(&bell{}))
	assert.Equal(t, 0, registry.Len(stylish.EventWorldLoad))
}
