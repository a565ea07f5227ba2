// Package output provides the console printer for Argot. It renders
// semantically styled text (errors, warnings, results) through lipgloss and
// falls back to plain text when the terminal offers no color support.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Mode selects how the printer renders output.
type Mode int

const (
	// ModeAuto detects color support from the environment.
	ModeAuto Mode = iota
	// ModeStyled forces styled output.
	ModeStyled
	// ModePlain forces plain text output.
	ModePlain
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Printer writes console output with optional semantic styling. It is safe
// for concurrent use.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	mode   Mode
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriter directs output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) { p.writer = w }
}

// WithMode forces a render mode instead of auto-detection.
func WithMode(mode Mode) Option {
	return func(p *Printer) { p.mode = mode }
}

// NewPrinter creates a Printer writing to os.Stdout with automatic
// color-support detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println writes plain text followed by a newline.
func (p *Printer) Println(text string) {
	p.write(text, nil)
}

// Printf writes formatted plain text without a trailing newline.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, format, args...)
}

// Info writes informational text.
func (p *Printer) Info(text string) {
	p.write(text, &infoStyle)
}

// Success writes success text, typically green.
func (p *Printer) Success(text string) {
	p.write(text, &successStyle)
}

// Warning writes warning text, typically orange.
func (p *Printer) Warning(text string) {
	p.write(text, &warningStyle)
}

// Error writes error text, typically red.
func (p *Printer) Error(text string) {
	p.write(text, &errorStyle)
}

func (p *Printer) write(text string, style *lipgloss.Style) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.styled() && style != nil {
		text = style.Render(text)
	} else {
		// Strip any escape sequences a caller may have baked in.
		text = ansi.Strip(text)
	}
	fmt.Fprintln(p.writer, text)
}

func (p *Printer) styled() bool {
	switch p.mode {
	case ModeStyled:
		return true
	case ModePlain:
		return false
	default:
		return termenv.EnvColorProfile() != termenv.Ascii
	}
}
