package builtin

import (
	"argot/internal/output"
	"argot/internal/version"
	"argot/pkg/argotypes"
)

// VersionCommand implements the "version" command.
type VersionCommand struct {
	printer *output.Printer
}

// Name returns the keyword "version".
func (c *VersionCommand) Name() string {
	return "version"
}

// Description returns a brief description of the version command.
func (c *VersionCommand) Description() string {
	return "Show version information"
}

// Template declares no arguments.
func (c *VersionCommand) Template() string {
	return ""
}

// Execute prints the formatted version line.
func (c *VersionCommand) Execute(_ argotypes.Bindings) error {
	c.printer.Println(version.GetFormattedVersion())
	return nil
}
