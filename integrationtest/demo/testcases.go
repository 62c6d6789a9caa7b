package demo

import (
	"fmt"
	"io"
	"sync"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/hooks"
	"github.com/rickchristie/stylish/integrationtest/loggers"
	"github.com/rickchristie/stylish/shim"
	"github.com/rickchristie/stylish/simhost"
)

// Scenario is one runnable walk through the host lifecycle.
type Scenario struct {
	Name        string
	Description string
	Run         func(w io.Writer) error
}

// Fixture is a freshly registered extension attached to an in-memory host.
type Fixture struct {
	Shim    *shim.Shim
	Host    *simhost.Host
	Journal *Journal
	Stats   *hooks.Stats
	Async   *sync.WaitGroup
}

// NewFixture registers the extension on a new shim and attaches it to a new host. Registration
// is counted in Stats. When w is non-nil every registration hook is also logged to it.
func NewFixture(w io.Writer) (*Fixture, error) {
	f := &Fixture{
		Shim:    shim.New(),
		Host:    simhost.New(),
		Journal: NewJournal(),
		Stats:   hooks.NewStats(),
		Async:   &sync.WaitGroup{},
	}
	h := hooks.NewRegistry().Register(f.Stats)
	if w != nil {
		h.Register(loggers.NewLoggerHookWithWriter(w))
	}
	f.Shim.WithHooks(h)
	if err := Register(f.Shim, f.Journal, f.Async); err != nil {
		return nil, err
	}
	f.Shim.Init(f.Host)
	return f, nil
}

// LoadWorld fires the world-load trigger and waits for the async handler.
func (f *Fixture) LoadWorld(name string) {
	f.Async.Add(1)
	f.Host.WorldLoad(name)
	f.Async.Wait()
}

// RunLifecycleScenario starts the host, loads a world, uses the wand until it runs dry and
// runs both commands.
func RunLifecycleScenario(w io.Writer) error {
	f, err := NewFixture(w)
	if err != nil {
		return err
	}
	if err := f.Host.Startup(); err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	f.LoadWorld("overworld")

	for i := 0; i <= MaxCharges; i++ {
		e := f.Host.UseItem("steve", WandID)
		fmt.Fprintf(w, "use %d cancelled=%t\n", i+1, e.Cancel)
	}

	origin := &stylish.CommandOrigin{SourceType: "player", SourceName: "steve"}
	for _, call := range []struct {
		name string
		args []any
	}{
		{HealCommandName, []any{"alex"}},
		{PaintCommandName, []any{"green"}},
		{PaintCommandName, []any{"purple"}},
	} {
		result, err := f.Host.RunCommand(call.name, origin, call.args...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %v -> %s\n", call.name, call.args, result.Message)
	}

	writeJournal(w, f.Journal)
	return nil
}

// RunLateRegistrationScenario registers a handler after the host is ready and shows that it
// only sees events fired after it was added.
func RunLateRegistrationScenario(w io.Writer) error {
	f, err := NewFixture(w)
	if err != nil {
		return err
	}
	if err := f.Host.Startup(); err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	f.LoadWorld("overworld")

	f.Host.UseItem("steve", WandID)
	f.Shim.Events().On(stylish.EventBeforeItemUse, func(payload any) {
		e := payload.(*stylish.BeforeItemUseEvent)
		f.Journal.Addf("late: saw %s use %s", e.Source, e.ItemTypeID)
	})
	f.Host.UseItem("alex", WandID)

	fmt.Fprintf(w, "beforeItemUse subscriptions: %d\n",
		f.Host.SignalFor(stylish.EventBeforeItemUse).Subscribers())
	writeJournal(w, f.Journal)
	return nil
}

// Scenarios returns every scenario in menu order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "Lifecycle",
			Description: "Startup, world load, item use and commands",
			Run:         RunLifecycleScenario,
		},
		{
			Name:        "Late registration",
			Description: "A handler added after wiring sees only later events",
			Run:         RunLateRegistrationScenario,
		},
	}
}

func writeJournal(w io.Writer, j *Journal) {
	fmt.Fprintln(w, "journal:")
	for _, e := range j.Entries() {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
