package manifest

import (
	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/commands"
)

// Command is the instance registered for a manifest-declared command.
type Command struct {
	stylish.CustomCommand
}

// Bind collects one command per spec in doc, in document order. handlers maps command names to
// run handlers; a command without one fails the registration pass like any other command that
// has no run handler.
func Bind(doc *Document, r *commands.Registrar, handlers map[string]stylish.RunFunc) error {
	for _, spec := range doc.Commands {
		def := spec.Definition()
		opts := []commands.Option{commands.Named("manifest command " + spec.Name)}
		if run := handlers[spec.Name]; run != nil {
			opts = append(opts, commands.WithRun(run))
		}
		err := commands.Collect(r, func() *Command {
			return &Command{CustomCommand: cloneDefinition(def)}
		}, opts...)
		if err != nil {
			return err
		}
	}
	return nil
}

// cloneDefinition gives every instance its own parameter slices.
func cloneDefinition(def stylish.CustomCommand) stylish.CustomCommand {
	def.MandatoryParameters = cloneParams(def.MandatoryParameters)
	def.OptionalParameters = cloneParams(def.OptionalParameters)
	return def
}

func cloneParams(in []stylish.CommandParameter) []stylish.CommandParameter {
	if in == nil {
		return nil
	}
	out := make([]stylish.CommandParameter, len(in))
	for i, p := range in {
		p.Values = append([]string(nil), p.Values...)
		out[i] = p
	}
	return out
}
