package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/integrationtest/demo"
	"github.com/rickchristie/stylish/manifest"
)

// session holds one simulated host and the extension attached to it.
type session struct {
	fixture *demo.Fixture
	out     io.Writer
	seen    int // journal entries already printed
}

func newSession(opts *options, logger *slog.Logger, out io.Writer) (*session, error) {
	fixture, err := demo.NewFixture(nil)
	if err != nil {
		return nil, err
	}
	fixture.Shim.WithLogger(logger).SetDebugLogging(opts.debug)

	if opts.manifest != "" {
		doc, err := manifest.LoadFile(opts.manifest)
		if err != nil {
			return nil, err
		}
		handlers := make(map[string]stylish.RunFunc, len(doc.Commands))
		for _, name := range doc.Names() {
			handlers[name] = echo(name)
		}
		if err := manifest.Bind(doc, fixture.Shim.Commands(), handlers); err != nil {
			return nil, err
		}
		logger.Info("manifest loaded", "path", opts.manifest, "commands", len(doc.Commands))
	}

	return &session{fixture: fixture, out: out}, nil
}

// echo is the run handler given to every manifest command.
func echo(name string) stylish.RunFunc {
	return func(origin *stylish.CommandOrigin, args ...any) *stylish.CommandResult {
		return stylish.Success(fmt.Sprintf("%s from %s: %v", name, origin.SourceName, args))
	}
}

// execute runs one prompt line and reports whether the session should end.
func (s *session) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "startup":
		if err := s.fixture.Host.Startup(); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "%sstartup complete%s\n", colorGreen, colorReset)
	case "worldload":
		name := "world"
		if len(args) > 0 {
			name = args[0]
		}
		s.fixture.LoadWorld(name)
	case "use":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: use <source> <item>")
		}
		e := s.fixture.Host.UseItem(args[0], args[1])
		fmt.Fprintf(s.out, "cancelled: %t\n", e.Cancel)
	case "run":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: run <name> [args...]")
		}
		cmdArgs := make([]any, len(args)-1)
		for i, a := range args[1:] {
			cmdArgs[i] = a
		}
		origin := &stylish.CommandOrigin{SourceType: "player", SourceName: "simulator"}
		result, err := s.fixture.Host.RunCommand(args[0], origin, cmdArgs...)
		if err != nil {
			return false, err
		}
		s.printResult(result)
	case "status":
		s.printStatus()
	case "help":
		s.printHelp()
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown action %q, type help", cmd)
	}

	s.flushJournal()
	return false, nil
}

func (s *session) printResult(result *stylish.CommandResult) {
	if result == nil {
		fmt.Fprintf(s.out, "%sok%s\n", colorGreen, colorReset)
		return
	}
	color := colorGreen
	if result.Status == stylish.CommandFailure {
		color = colorRed
	}
	fmt.Fprintf(s.out, "%s%s%s\n", color, result.Message, colorReset)
}

func (s *session) printStatus() {
	host := s.fixture.Host
	ev := s.fixture.Shim.Events()

	fmt.Fprintf(s.out, "ready:    %t\n", ev.Ready())
	fmt.Fprintf(s.out, "items:    %s\n", strings.Join(host.Items.IDs(), ", "))
	fmt.Fprintf(s.out, "blocks:   %s\n", strings.Join(host.Blocks.IDs(), ", "))
	fmt.Fprintf(s.out, "commands: %s\n", strings.Join(host.Commands.Names(), ", "))
	for _, event := range ev.Events() {
		fmt.Fprintf(s.out, "event %-14s handlers=%d wired=%t\n",
			event, ev.Len(event), ev.IsWired(event))
	}

	counters := s.fixture.Stats.Counters()
	for _, key := range slices.Sorted(maps.Keys(counters)) {
		fmt.Fprintf(s.out, "%-36s %d\n", key, counters[key])
	}
}

func (s *session) printHelp() {
	fmt.Fprintf(s.out, "%s", colorDim)
	fmt.Fprintln(s.out, "  startup                 open the registration window")
	fmt.Fprintln(s.out, "  worldload [name]        fire the world-loaded trigger")
	fmt.Fprintln(s.out, "  use <source> <item>     fire beforeItemUse")
	fmt.Fprintln(s.out, "  run <name> [args...]    run a registered command")
	fmt.Fprintln(s.out, "  status                  show registrations and wiring")
	fmt.Fprintln(s.out, "  quit                    leave the simulator")
	fmt.Fprintf(s.out, "%s", colorReset)
}

// flushJournal prints journal entries added since the last flush.
func (s *session) flushJournal() {
	entries := s.fixture.Journal.Entries()
	for _, e := range entries[s.seen:] {
		fmt.Fprintf(s.out, "  %s%s%s\n", colorYellow, e, colorReset)
	}
	s.seen = len(entries)
}
