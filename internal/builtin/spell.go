package builtin

import (
	"strings"

	"argot/internal/output"
	"argot/pkg/argotypes"
)

// SpellCommand implements the "spell" command: it joins a counted array of
// single characters into one word, exercising char conversion.
type SpellCommand struct {
	printer *output.Printer
}

// Name returns the keyword "spell".
func (c *SpellCommand) Name() string {
	return "spell"
}

// Description returns a brief description of the spell command.
func (c *SpellCommand) Description() string {
	return "Join single characters into a word"
}

// Template declares a count followed by that many single characters.
func (c *SpellCommand) Template() string {
	return "&int n &array<n,char> letters"
}

// Execute joins the letters and prints the result.
func (c *SpellCommand) Execute(args argotypes.Bindings) error {
	var word strings.Builder
	for _, letter := range args["letters"].List() {
		word.WriteRune(letter.Char())
	}
	c.printer.Println(word.String())
	return nil
}
