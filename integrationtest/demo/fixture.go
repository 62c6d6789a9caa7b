// Package demo is a small sample extension used by the end-to-end tests and the simulator.
//
// It collects one item component, two block components and two commands, annotates
// instance methods and func fields, and attaches free-standing lifecycle handlers.
package demo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/commands"
	"github.com/rickchristie/stylish/components"
	"github.com/rickchristie/stylish/events"
	"github.com/rickchristie/stylish/shim"
)

// Component and command ids.
const (
	WandID           = "demo:wand"
	CrateID          = "demo:crate"
	LanternID        = "demo:lantern"
	HealCommandName  = "demo:heal"
	PaintCommandName = "demo:paint"
)

// Colours are the values of the paint command's colour enum.
var Colours = []string{"red", "green", "blue"}

// -----------------------------------------------------------------------------
// Journal
// -----------------------------------------------------------------------------

// Journal records what the extension observed, in order. It is safe for concurrent use because
// async handlers write to it from their own goroutines.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Addf appends a formatted entry.
func (j *Journal) Addf(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of every entry.
func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// Reset clears the journal.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = nil
}

// -----------------------------------------------------------------------------
// Components
// -----------------------------------------------------------------------------

// Wand is an item component with a limited number of charges per world.
type Wand struct {
	journal *Journal
	charges int
}

// MaxCharges is the number of uses a wand has after each world load.
const MaxCharges = 2

// OnUse spends a charge, cancelling the use once the wand is empty.
func (w *Wand) OnUse(e *stylish.BeforeItemUseEvent) {
	if e.ItemTypeID != WandID {
		return
	}
	if w.charges == 0 {
		e.Cancel = true
		w.journal.Addf("wand: %s is out of charges", e.Source)
		return
	}
	w.charges--
	w.journal.Addf("wand: %s used a charge, %d left", e.Source, w.charges)
}

// OnWorldLoad recharges the wand.
func (w *Wand) OnWorldLoad(e *stylish.WorldLoadEvent) {
	w.charges = MaxCharges
	w.journal.Addf("wand: recharged for %s", e.WorldName)
}

// Crate is a block component with no handlers.
type Crate struct{}

// Lantern is a block component whose handler is a func field set by its constructor.
type Lantern struct {
	OnWorldLoad func(e *stylish.WorldLoadEvent)
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// Heal restores a player. It carries its own Run method.
type Heal struct {
	stylish.CustomCommand
	journal *Journal
}

// Run implements stylish.CommandRunner.
func (h *Heal) Run(origin *stylish.CommandOrigin, args ...any) *stylish.CommandResult {
	target := origin.SourceName
	if len(args) > 0 {
		target = fmt.Sprint(args[0])
	}
	h.journal.Addf("heal: %s healed %s", origin.SourceName, target)
	return stylish.Success("healed " + target)
}

// Paint colours a block. Its run handler is supplied at collection time.
type Paint struct {
	stylish.CustomCommand
}

// NewPaint declares the paint command. The colour enum appears in both parameter lists.
func NewPaint() *Paint {
	return &Paint{stylish.CustomCommand{
		Name:            PaintCommandName,
		Description:     "Paint a block",
		PermissionLevel: stylish.PermissionGameDirectors,
		MandatoryParameters: []stylish.CommandParameter{
			{Name: "colour", Type: stylish.ParamEnum, Values: Colours},
			{Name: "where", Type: stylish.ParamLocation},
		},
		OptionalParameters: []stylish.CommandParameter{
			{Name: "colour", Type: stylish.ParamEnum, Values: Colours},
		},
	}}
}

// paintRun is the static run handler of Paint.
func paintRun(journal *Journal) stylish.RunFunc {
	return func(origin *stylish.CommandOrigin, args ...any) *stylish.CommandResult {
		if len(args) == 0 {
			return stylish.Failure("usage: demo:paint <colour> [where]")
		}
		colour := fmt.Sprint(args[0])
		for _, c := range Colours {
			if c == colour {
				journal.Addf("paint: %s painted %s", origin.SourceName, colour)
				return stylish.Success("painted " + colour)
			}
		}
		return stylish.Failure("unknown colour " + colour + ", want one of " + strings.Join(Colours, ", "))
	}
}

// -----------------------------------------------------------------------------
// Registration
// -----------------------------------------------------------------------------

// Register collects the whole extension into s. Handler output goes to journal; async
// reports async handler completion when non-nil.
func Register(s *shim.Shim, journal *Journal, async *sync.WaitGroup) error {
	ev := s.Events()

	events.AnnotateMethod[*Wand](ev, stylish.EventBeforeItemUse, "OnUse")
	events.AnnotateMethod[*Wand](ev, stylish.EventWorldLoad, "OnWorldLoad")
	events.AnnotateMethod[*Lantern](ev, stylish.EventWorldLoad, "OnWorldLoad")

	if err := components.Collect(s.Items(), WandID, func() *Wand {
		return &Wand{journal: journal}
	}); err != nil {
		return err
	}
	if err := components.Collect(s.Blocks(), CrateID, func() *Crate { return &Crate{} }); err != nil {
		return err
	}
	if err := components.Collect(s.Blocks(), LanternID, func() *Lantern {
		return &Lantern{OnWorldLoad: func(e *stylish.WorldLoadEvent) {
			journal.Addf("lantern: lit in %s", e.WorldName)
		}}
	}); err != nil {
		return err
	}

	if err := commands.Collect(s.Commands(), func() *Heal {
		return &Heal{
			CustomCommand: stylish.CustomCommand{
				Name:        HealCommandName,
				Description: "Heal a player",
				OptionalParameters: []stylish.CommandParameter{
					{Name: "target", Type: stylish.ParamPlayerSelector},
				},
			},
			journal: journal,
		}
	}); err != nil {
		return err
	}
	if err := commands.Collect(s.Commands(), NewPaint, commands.WithRun(paintRun(journal))); err != nil {
		return err
	}

	events.On(ev, stylish.EventStartup, func(*stylish.StartupEvent) {
		journal.Addf("startup: registration window closed")
	})
	events.On(ev, stylish.EventWorldLoad, func(e *stylish.WorldLoadEvent) {
		journal.Addf("world: %s loaded", e.WorldName)
	})
	if async != nil {
		ev.On(stylish.EventWorldLoad, stylish.Async(func(payload any) {
			defer async.Done()
			journal.Addf("async: warmed caches")
		}))
	}
	return nil
}
