package builtin

import (
	"fmt"

	"argot/internal/output"
	"argot/pkg/argotypes"
)

// GreetCommand implements the "greet" command. It demonstrates simple
// scalar bindings: a string and an int.
type GreetCommand struct {
	printer *output.Printer
}

// Name returns the keyword "greet".
func (c *GreetCommand) Name() string {
	return "greet"
}

// Description returns a brief description of the greet command.
func (c *GreetCommand) Description() string {
	return "Greet someone by name and age"
}

// Template declares one string and one int argument.
func (c *GreetCommand) Template() string {
	return "&string name &int age"
}

// Execute prints the greeting.
func (c *GreetCommand) Execute(args argotypes.Bindings) error {
	name := args["name"].Text()
	age := args["age"].Int()
	c.printer.Println(fmt.Sprintf("Hello %s, you are %d years old.", name, age))
	return nil
}
