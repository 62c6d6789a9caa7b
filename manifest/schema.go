package manifest

import (
	"sync"

	"github.com/rickchristie/stylish"
	"github.com/rickchristie/stylish/schema"
)

// NamePattern is the form every command name must take: namespace, colon, name.
const NamePattern = `^[a-z0-9_]+:[a-z0-9_]+$`

var (
	schemaOnce sync.Once
	compiled   *schema.Schema
)

// Schema returns the compiled JSON Schema every manifest document is validated against.
func Schema() *schema.Schema {
	schemaOnce.Do(func() {
		compiled = schema.MustCompile(documentSchema())
	})
	return compiled
}

func documentSchema() map[string]any {
	permissions := make([]any, 0, 5)
	for p := stylish.PermissionAny; p <= stylish.PermissionOwner; p++ {
		permissions = append(permissions, p.String())
	}
	types := make([]any, len(stylish.ParamTypes))
	for i, t := range stylish.ParamTypes {
		types[i] = string(t)
	}
	stringItems := map[string]any{"type": "string", "minLength": 1}

	param := schema.Closed(schema.Object(map[string]*schema.Property{
		"name":     schema.String("Parameter name; enum parameters also use it as the enum name").MinLength(1),
		"type":     schema.String("Parameter type").Enum(types...),
		"optional": schema.Boolean("Whether the parameter may be omitted"),
		"values":   schema.Array("Allowed values of an enum parameter", stringItems).Unique(),
	}, "name", "type"))
	schema.When(param,
		schema.Object(map[string]*schema.Property{
			"type": schema.String("").Const(string(stylish.ParamEnum)),
		}, "type"),
		schema.Object(map[string]*schema.Property{
			"values": schema.Array("", nil).MinItems(1),
		}, "values"),
	)

	command := schema.Closed(schema.Object(map[string]*schema.Property{
		"name":           schema.String("Command name").Pattern(NamePattern),
		"description":    schema.String("Help text shown by the host"),
		"permission":     schema.String("Minimum permission level").Enum(permissions...),
		"cheatsRequired": schema.Boolean("Whether cheats must be enabled"),
		"parameters":     schema.Array("Command parameters", param),
	}, "name"))

	return schema.Closed(schema.Object(map[string]*schema.Property{
		"commands": schema.Array("Custom commands", command),
	}, "commands"))
}
