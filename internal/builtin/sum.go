package builtin

import (
	"fmt"

	"argot/internal/output"
	"argot/pkg/argotypes"
)

// SumCommand implements the "sum" command. Its template is the canonical
// example of a runtime-sized array: the count argument determines how many
// values follow.
type SumCommand struct {
	printer *output.Printer
}

// Name returns the keyword "sum".
func (c *SumCommand) Name() string {
	return "sum"
}

// Description returns a brief description of the sum command.
func (c *SumCommand) Description() string {
	return "Sum a counted list of numbers"
}

// Template declares a count followed by that many float values.
func (c *SumCommand) Template() string {
	return "&int count &array<count,float> values"
}

// Execute sums the bound values and prints the total.
func (c *SumCommand) Execute(args argotypes.Bindings) error {
	total := 0.0
	for _, v := range args["values"].List() {
		total += v.Float()
	}
	c.printer.Println(fmt.Sprintf("sum of %d values: %g", args["count"].Int(), total))
	return nil
}
