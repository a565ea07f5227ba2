package builtin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"argot/internal/commands"
	"argot/internal/output"
	"argot/pkg/argotypes"
)

// HelpCommand implements the "help" command. It renders the registered
// commands as a markdown table through glamour, falling back to the raw
// markdown when no terminal renderer is available.
type HelpCommand struct {
	registry *commands.Registry
	printer  *output.Printer
}

// Name returns the keyword "help".
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of the help command.
func (c *HelpCommand) Description() string {
	return "List available commands"
}

// Template declares no arguments.
func (c *HelpCommand) Template() string {
	return ""
}

// Execute renders the command table.
func (c *HelpCommand) Execute(_ argotypes.Bindings) error {
	markdown := c.buildMarkdown()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		c.printer.Println(markdown)
		return nil
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		c.printer.Println(markdown)
		return nil
	}
	c.printer.Printf("%s", rendered)
	return nil
}

func (c *HelpCommand) buildMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Argot commands\n\n")
	sb.WriteString("Input lines have the form `keyword:token token ...`\n\n")
	sb.WriteString("| Command | Template | Description |\n")
	sb.WriteString("|---------|----------|-------------|\n")
	for _, cmd := range c.registry.GetAll() {
		tpl := cmd.Template()
		if tpl == "" {
			tpl = "(none)"
		}
		sb.WriteString(fmt.Sprintf("| %s | `%s` | %s |\n", cmd.Name(), tpl, cmd.Description()))
	}
	return sb.String()
}
