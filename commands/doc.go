// Package commands collects custom command types and registers them, with their enum
// parameters, once the host's command registry exists.
//
// # Run Handlers
//
// Every command needs exactly one run handler. It comes from one of two places, checked in
// this order:
//
//  1. A handler supplied at collection time with WithRun.
//  2. The instance itself, when it implements stylish.CommandRunner.
//
// A command with neither fails the registration pass with a *stylish.StructuralError.
//
//	cmds := commands.NewRegistrar(eventRegistry)
//
//	commands.MustCollect(cmds, NewHeal)                       // Heal implements Run
//	commands.MustCollect(cmds, NewPing, commands.WithRun(ping)) // handler given up front
//
// # Enum Parameters
//
// Before a command is registered, each enum parameter with at least one value is registered
// with the host. A name is registered once per command instance even if it appears in both
// the mandatory and the optional parameter lists. Enum failures are logged as warnings and do
// not stop the pass.
package commands
