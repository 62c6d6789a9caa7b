package manifest

import (
	"github.com/rickchristie/stylish"
)

// Document is a decoded manifest.
type Document struct {
	Commands []CommandSpec `json:"commands" yaml:"commands" hcl:"command,block"`
}

// CommandSpec declares one custom command.
type CommandSpec struct {
	Name           string          `json:"name" yaml:"name" hcl:"name,label"`
	Description    string          `json:"description,omitempty" yaml:"description" hcl:"description,optional"`
	Permission     string          `json:"permission,omitempty" yaml:"permission" hcl:"permission,optional"`
	CheatsRequired bool            `json:"cheatsRequired,omitempty" yaml:"cheatsRequired" hcl:"cheats_required,optional"`
	Parameters     []ParameterSpec `json:"parameters,omitempty" yaml:"parameters" hcl:"param,block"`
}

// ParameterSpec declares one command parameter. Optional parameters follow every mandatory one
// in the resulting declaration, whatever their position in the manifest.
type ParameterSpec struct {
	Name     string   `json:"name" yaml:"name" hcl:"name,label"`
	Type     string   `json:"type" yaml:"type" hcl:"type"`
	Optional bool     `json:"optional,omitempty" yaml:"optional" hcl:"optional,optional"`
	Values   []string `json:"values,omitempty" yaml:"values" hcl:"values,optional"`
}

// Definition converts the spec to a host declaration. Mandatory parameters keep their manifest
// order, as do optional ones. An unknown permission maps to stylish.PermissionAny; Parse never
// returns such a spec.
func (c CommandSpec) Definition() stylish.CustomCommand {
	level, _ := stylish.ParsePermissionLevel(c.Permission)
	def := stylish.CustomCommand{
		Name:            c.Name,
		Description:     c.Description,
		PermissionLevel: level,
		CheatsRequired:  c.CheatsRequired,
	}
	for _, p := range c.Parameters {
		param := stylish.CommandParameter{
			Name:   p.Name,
			Type:   stylish.ParamType(p.Type),
			Values: append([]string(nil), p.Values...),
		}
		if p.Optional {
			def.OptionalParameters = append(def.OptionalParameters, param)
		} else {
			def.MandatoryParameters = append(def.MandatoryParameters, param)
		}
	}
	return def
}

// Names returns the command names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Commands))
	for i, c := range d.Commands {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the spec of the named command.
func (d *Document) Lookup(name string) (CommandSpec, bool) {
	for _, c := range d.Commands {
		if c.Name == name {
			return c, true
		}
	}
	return CommandSpec{}, false
}
