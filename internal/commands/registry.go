// Package commands provides command registration and lookup for Argot.
// A Registry is an explicit value handed to the dispatcher at construction;
// there is no ambient global registry.
package commands

import (
	"sort"
	"sync"

	"argot/pkg/argotypes"
)

// Registry maps keywords to commands. It is safe for concurrent use: the
// map is guarded by a read-mostly lock so registration may happen while
// other goroutines dispatch.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]argotypes.Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]argotypes.Command),
	}
}

// Register adds a command under its keyword. The last registration for a
// keyword wins: an existing command is overwritten without warning.
func (r *Registry) Register(cmd argotypes.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.Name()] = cmd
}

// Unregister removes a command by keyword. Removing an unknown keyword is a
// no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get retrieves a command by keyword. The second result reports whether the
// keyword is registered.
func (r *Registry) Get(name string) (argotypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns all registered commands sorted by keyword, so help output
// is stable across runs.
func (r *Registry) GetAll() []argotypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]argotypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		all = append(all, cmd)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
