// Package loader discovers the feature modules of the application and
// collects their descriptors. Compiled-in modules register an entry point
// in a Registry; additional redirect-only modules can be dropped into a
// manifest directory as YAML units. Discovery runs once, synchronously,
// during startup.
package loader

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the entry points of compiled-in modules, keyed by their
// qualified "group.unit" name. Registration happens during bootstrap,
// before discovery; the registry is read-only afterwards.
type Registry struct {
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register adds a module entry point under its qualified name. The entry
// must be a page.InfoFunc to load successfully; anything else is recorded
// as a contract violation during discovery. Registering the same name
// twice panics, since that is always a programming error.
func (r *Registry) Register(name string, entry any) {
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("loader: module %q already registered", name))
	}
	if !strings.Contains(name, ".") {
		panic(fmt.Sprintf("loader: module name %q must be qualified as group.unit", name))
	}
	r.entries[name] = entry
}

// Names returns all registered qualified names in sorted order, so that
// discovery is deterministic regardless of registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// entry returns the registered entry point for a qualified name.
func (r *Registry) entry(name string) any {
	return r.entries[name]
}

// splitName splits a qualified name into its group and unit parts.
func splitName(name string) (group, unit string) {
	group, unit, _ = strings.Cut(name, ".")
	return group, unit
}
