// Package builtin provides the commands shipped with the Argot interpreter.
// Each command declares its argument grammar as a template string and
// receives its arguments fully bound and typed.
package builtin

import (
	"argot/internal/commands"
	"argot/internal/output"
)

// RegisterAll registers every built-in command into the given registry.
// Commands print through the given printer so hosts and tests control
// output.
func RegisterAll(registry *commands.Registry, printer *output.Printer) {
	registry.Register(&GreetCommand{printer: printer})
	registry.Register(&SumCommand{printer: printer})
	registry.Register(&ListCommand{printer: printer})
	registry.Register(&SpellCommand{printer: printer})
	registry.Register(&HelpCommand{registry: registry, printer: printer})
	registry.Register(&VersionCommand{printer: printer})
	registry.Register(NewExitCommand(printer))
}
