package builtin

import (
	"fmt"

	"argot/internal/output"
	"argot/pkg/argotypes"
)

// ListCommand implements the "list" command: a counted array of raw string
// items, printed numbered. The array clause omits the element type, so the
// items stay unconverted strings.
type ListCommand struct {
	printer *output.Printer
}

// Name returns the keyword "list".
func (c *ListCommand) Name() string {
	return "list"
}

// Description returns a brief description of the list command.
func (c *ListCommand) Description() string {
	return "Print a counted list of items"
}

// Template declares a count followed by that many items.
func (c *ListCommand) Template() string {
	return "&int n &array<n> items"
}

// Execute prints each item with its position.
func (c *ListCommand) Execute(args argotypes.Bindings) error {
	for i, item := range args["items"].List() {
		c.printer.Println(fmt.Sprintf("%d. %s", i+1, item.Text()))
	}
	return nil
}
