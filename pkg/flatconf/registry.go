package flatconf

import (
	"sort"
	"strings"
	"sync"
)

// globalRegistry is the single global registry for all plugins.
var globalRegistry = &Registry{
	plugins: make(map[string]*Plugin),
}

// Registry stores registered plugins for lookup by short id.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]*Plugin // keyed by short id
}

// RegisterPlugin adds a plugin to the global registry.
// Call this from init() functions in plugin packages.
func RegisterPlugin(p *Plugin) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.plugins[p.ID] = p
}

// LookupPlugin returns a registered plugin by short id.
func LookupPlugin(id string) (*Plugin, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	p, ok := globalRegistry.plugins[id]
	return p, ok
}

// AllPlugins returns all registered plugins sorted by id.
func AllPlugins() []*Plugin {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	plugins := make([]*Plugin, 0, len(globalRegistry.plugins))
	for _, p := range globalRegistry.plugins {
		plugins = append(plugins, p)
	}
	sort.Slice(plugins, func(i, j int) bool { return plugins[i].ID < plugins[j].ID })
	return plugins
}

// LookupPreset resolves a symbolic "plugin/preset" reference against the
// global registry.
func LookupPreset(ref string) (*Preset, bool) {
	i := strings.LastIndex(ref, "/")
	if i < 0 {
		return nil, false
	}
	p, ok := LookupPlugin(ref[:i])
	if !ok {
		return nil, false
	}
	return p.Preset(ref[i+1:])
}

// PluginCount returns the number of registered plugins.
func PluginCount() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.plugins)
}

// ClearPlugins removes all registered plugins. Used for testing.
func ClearPlugins() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.plugins = make(map[string]*Plugin)
}
