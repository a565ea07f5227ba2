package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argot/internal/commands"
	"argot/internal/dispatch"
	"argot/internal/output"
)

func newTestShell() (*dispatch.Dispatcher, *commands.Registry, *bytes.Buffer) {
	var buf bytes.Buffer
	printer := output.NewPrinter(output.WithWriter(&buf), output.WithMode(output.ModePlain))
	registry := commands.NewRegistry()
	RegisterAll(registry, printer)
	return dispatch.New(registry, printer), registry, &buf
}

func TestRegisterAll(t *testing.T) {
	_, registry, _ := newTestShell()

	for _, name := range []string{"greet", "sum", "list", "spell", "help", "version", "exit"} {
		_, exists := registry.Get(name)
		assert.True(t, exists, "command %q should be registered", name)
	}
}

func TestGreetCommand(t *testing.T) {
	d, _, buf := newTestShell()

	require.NoError(t, d.Run("greet:Ada 36"))
	assert.Equal(t, "Hello Ada, you are 36 years old.\n", buf.String())
}

func TestSumCommand(t *testing.T) {
	d, _, buf := newTestShell()

	require.NoError(t, d.Run("sum:3 1.5 2 0.5"))
	assert.Equal(t, "sum of 3 values: 4\n", buf.String())
}

func TestListCommand(t *testing.T) {
	d, _, buf := newTestShell()

	require.NoError(t, d.Run("list:2 apples pears"))
	assert.Equal(t, "1. apples\n2. pears\n", buf.String())
}

func TestSpellCommand(t *testing.T) {
	d, _, buf := newTestShell()

	require.NoError(t, d.Run("spell:4 a r g o"))
	assert.Equal(t, "argo\n", buf.String())
}

func TestHelpCommand(t *testing.T) {
	d, _, buf := newTestShell()

	require.NoError(t, d.Run("help:"))

	out := buf.String()
	for _, name := range []string{"greet", "sum", "list", "spell", "version", "exit"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCommand(t *testing.T) {
	d, _, buf := newTestShell()

	require.NoError(t, d.Run("version:"))
	assert.Contains(t, buf.String(), "Argot v")
}

func TestExitCommand(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinter(output.WithWriter(&buf), output.WithMode(output.ModePlain))

	exitCode := -1
	cmd := NewExitCommand(printer)
	cmd.exit = func(code int) { exitCode = code }

	require.NoError(t, cmd.Execute(nil))
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Goodbye!\n", buf.String())
}
