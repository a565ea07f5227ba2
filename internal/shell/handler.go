// Package shell provides the interactive shell interface for Argot.
// It wires the dispatcher into an ishell session and handles input routing.
package shell

import (
	"strings"

	"github.com/abiosoft/ishell/v2"

	"argot/internal/dispatch"
	"argot/internal/version"
)

// Handler routes raw shell input into the dispatcher.
type Handler struct {
	dispatcher *dispatch.Dispatcher
}

// NewHandler creates a Handler over the given dispatcher.
func NewHandler(dispatcher *dispatch.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// ProcessInput handles one line of user input from the interactive shell.
// Blank lines and "#" comment lines are skipped. Dispatch failures are
// already reported through the dispatcher's printer, so they are not
// re-raised here; the shell moves on to the next line.
func (h *Handler) ProcessInput(c *ishell.Context) {
	if len(c.RawArgs) == 0 {
		return
	}

	rawInput := strings.TrimSpace(strings.Join(c.RawArgs, " "))
	if rawInput == "" || strings.HasPrefix(rawInput, "#") {
		return
	}

	_ = h.dispatcher.Run(rawInput)
}

// New builds the interactive ishell session around the dispatcher. The
// ishell built-ins are removed so every line flows through the Argot
// pipeline, where "help:" and "exit:" are ordinary commands.
func New(dispatcher *dispatch.Dispatcher) *ishell.Shell {
	sh := ishell.New()
	sh.SetPrompt("argot> ")

	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")

	sh.Println(version.GetFormattedVersion())
	sh.Println("Type 'help:' for commands or 'exit:' to quit.")

	handler := NewHandler(dispatcher)
	sh.NotFound(handler.ProcessInput)

	return sh
}
