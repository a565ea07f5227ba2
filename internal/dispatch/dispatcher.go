// Package dispatch runs the Argot pipeline for one input line: split the
// keyword from its argument text, look the command up, compile its template,
// bind the tokens, and invoke the action. Each run is a stateless pipeline;
// any stage may short-circuit to a terminal error that is reported and never
// reaches the action.
package dispatch

import (
	"strings"
	"sync"

	"argot/internal/binder"
	"argot/internal/commands"
	"argot/internal/logger"
	"argot/internal/output"
	"argot/internal/template"
	"argot/pkg/argotypes"
)

// Dispatcher routes input lines of the form "<keyword>:<args>" to registered
// commands. The registry and printer are injected at construction so hosts
// (and tests) control both.
type Dispatcher struct {
	registry *commands.Registry
	printer  *output.Printer

	// Compiled templates keyed by template text. Compilation is pure, so
	// a template only ever needs compiling once.
	cacheMu sync.Mutex
	cache   map[string]*template.Template
}

// New creates a Dispatcher over the given registry, reporting through the
// given printer.
func New(registry *commands.Registry, printer *output.Printer) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		printer:  printer,
		cache:    make(map[string]*template.Template),
	}
}

// Run executes one input line. Failures at any stage are reported through
// the printer as "<ErrorKind>: <detail>" and returned to the caller; the
// command action only runs when binding succeeded. Unconsumed trailing
// tokens produce a warning, not an error.
func (d *Dispatcher) Run(line string) error {
	keyword, argsText, found := strings.Cut(line, ":")
	if !found {
		return d.report(argotypes.NewError(argotypes.ErrInvalidInputFormat,
			"input %q has no ':' between keyword and arguments", line))
	}
	keyword = strings.TrimSpace(keyword)

	cmd, exists := d.registry.Get(keyword)
	if !exists {
		return d.report(argotypes.NewError(argotypes.ErrCommandNotFound,
			"no command registered for keyword %q", keyword))
	}

	tokens := strings.Fields(strings.TrimSpace(argsText))
	logger.Dispatch(keyword, tokens)

	tpl, err := d.compiled(cmd.Template())
	if err != nil {
		return d.report(err)
	}

	bound, leftover, err := binder.Bind(tpl, tokens)
	if err != nil {
		return d.report(err)
	}
	logger.BindResult(keyword, len(bound), len(leftover))

	if len(leftover) > 0 {
		d.printer.Warning("warning: ignoring trailing tokens: " + strings.Join(leftover, " "))
		logger.Warn("Trailing tokens discarded", "keyword", keyword, "tokens", leftover)
	}

	if err := cmd.Execute(bound); err != nil {
		d.printer.Error(err.Error())
		return err
	}
	return nil
}

func (d *Dispatcher) compiled(text string) (*template.Template, error) {
	d.cacheMu.Lock()
	defer d.cacheMu.Unlock()

	if tpl, ok := d.cache[text]; ok {
		return tpl, nil
	}
	tpl, err := template.Compile(text)
	if err != nil {
		return nil, err
	}
	d.cache[text] = tpl
	return tpl, nil
}

func (d *Dispatcher) report(err error) error {
	d.printer.Error(err.Error())
	logger.Error("Dispatch failed", "error", err)
	return err
}
