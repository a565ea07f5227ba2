package argotypes

// Command is the interface every Argot command implements. A command owns a
// keyword, a one-line description for help output, and an argument template
// in the mini-language (e.g. "&int count &array<count,string> names").
// Execute is the action callback: it receives the fully bound arguments and
// is only invoked after binding succeeded.
type Command interface {
	// Name returns the keyword the command is dispatched under.
	Name() string

	// Description returns a brief description for help output.
	Description() string

	// Template returns the argument template string. An empty template
	// declares a command that takes no arguments.
	Template() string

	// Execute runs the command action with the bound arguments.
	Execute(args Bindings) error
}
