package builtin

import (
	"os"

	"argot/internal/output"
	"argot/pkg/argotypes"
)

// ExitCommand implements the "exit" command for terminating the session.
type ExitCommand struct {
	printer *output.Printer

	// exit is swappable so tests can observe the call instead of dying.
	exit func(int)
}

// NewExitCommand creates the exit command with the real os.Exit.
func NewExitCommand(printer *output.Printer) *ExitCommand {
	return &ExitCommand{printer: printer, exit: os.Exit}
}

// Name returns the keyword "exit".
func (c *ExitCommand) Name() string {
	return "exit"
}

// Description returns a brief description of the exit command.
func (c *ExitCommand) Description() string {
	return "Exit the shell"
}

// Template declares no arguments.
func (c *ExitCommand) Template() string {
	return ""
}

// Execute says goodbye and terminates the process.
func (c *ExitCommand) Execute(_ argotypes.Bindings) error {
	c.printer.Println("Goodbye!")
	c.exit(0)
	return nil
}
