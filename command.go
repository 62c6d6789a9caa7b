package stylish

// -----------------------------------------------------------------------------
// Command Declaration
// -----------------------------------------------------------------------------

// PermissionLevel is the minimum permission required to run a custom command.
type PermissionLevel int

const (
	PermissionAny PermissionLevel = iota
	PermissionGameDirectors
	PermissionAdmin
	PermissionHost
	PermissionOwner
)

var permissionNames = [...]string{"any", "gameDirectors", "admin", "host", "owner"}

// String returns the manifest spelling of the level.
func (p PermissionLevel) String() string {
	if p < 0 || int(p) >= len(permissionNames) {
		return "unknown"
	}
	return permissionNames[p]
}

// ParsePermissionLevel converts the manifest spelling of a level. Empty means PermissionAny.
func ParsePermissionLevel(s string) (PermissionLevel, bool) {
	if s == "" {
		return PermissionAny, true
	}
	for i, name := range permissionNames {
		if name == s {
			return PermissionLevel(i), true
		}
	}
	return PermissionAny, false
}

// ParamType is the kind of a custom command parameter.
type ParamType string

const (
	ParamBoolean        ParamType = "boolean"
	ParamInteger        ParamType = "integer"
	ParamFloat          ParamType = "float"
	ParamString         ParamType = "string"
	ParamEnum           ParamType = "enum"
	ParamEntitySelector ParamType = "entitySelector"
	ParamPlayerSelector ParamType = "playerSelector"
	ParamLocation       ParamType = "location"
	ParamBlockType      ParamType = "blockType"
	ParamItemType       ParamType = "itemType"
)

// ParamTypes lists every parameter kind.
var ParamTypes = []ParamType{
	ParamBoolean, ParamInteger, ParamFloat, ParamString, ParamEnum,
	ParamEntitySelector, ParamPlayerSelector, ParamLocation, ParamBlockType, ParamItemType,
}

// CommandParameter declares one positional parameter of a custom command.
type CommandParameter struct {
	// Name is the parameter name. For enum parameters it is also the enum name
	// registered on the host.
	Name string

	// Type is the parameter kind.
	Type ParamType

	// Values are the allowed values of an enum parameter.
	Values []string
}

// CustomCommand is the declaration the host needs to register a command.
//
// Command types usually embed it:
//
//	type Heal struct{ stylish.CustomCommand }
//
//	func NewHeal() *Heal {
//	    return &Heal{stylish.CustomCommand{
//	        Name:        "demo:heal",
//	        Description: "Heals the target",
//	        MandatoryParameters: []stylish.CommandParameter{
//	            {Name: "target", Type: stylish.ParamPlayerSelector},
//	        },
//	    }}
//	}
type CustomCommand struct {
	Name                string
	Description         string
	PermissionLevel     PermissionLevel
	CheatsRequired      bool
	MandatoryParameters []CommandParameter
	OptionalParameters  []CommandParameter
}

// Definition returns the declaration itself, so embedding CustomCommand satisfies [Command].
func (c *CustomCommand) Definition() *CustomCommand {
	return c
}

// Command is implemented by every custom command instance.
type Command interface {
	Definition() *CustomCommand
}

// -----------------------------------------------------------------------------
// Command Execution
// -----------------------------------------------------------------------------

// CommandOrigin describes who or what ran a command.
type CommandOrigin struct {
	// SourceType is the kind of source, e.g. "player", "block", "server".
	SourceType string

	// SourceName identifies the source.
	SourceName string
}

// CommandStatus is the outcome of a command run.
type CommandStatus int

const (
	CommandSuccess CommandStatus = iota
	CommandFailure
)

// CommandResult is returned by run handlers. A nil result means success without output.
type CommandResult struct {
	Status  CommandStatus
	Message string
}

// Success builds a successful result with a message.
func Success(message string) *CommandResult {
	return &CommandResult{Status: CommandSuccess, Message: message}
}

// Failure builds a failed result with a message.
func Failure(message string) *CommandResult {
	return &CommandResult{Status: CommandFailure, Message: message}
}

// RunFunc is the normalized run handler registered with the host.
type RunFunc func(origin *CommandOrigin, args ...any) *CommandResult

// CommandRunner is implemented by command instances that carry their own run handler.
type CommandRunner interface {
	Run(origin *CommandOrigin, args ...any) *CommandResult
}
