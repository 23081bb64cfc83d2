// Package globals provides named environment global presets. A preset is
// a set of identifiers that the checking environment should treat as
// predefined, so references to them are not flagged as undefined.
package globals

import (
	"sort"
	"sync"
)

// Modes for a predefined identifier.
const (
	// Readonly identifiers may be read but not reassigned.
	Readonly = "readonly"
	// Writable identifiers may be read and reassigned.
	Writable = "writable"
)

var (
	mu      sync.RWMutex
	presets = map[string]map[string]string{}
)

// Register adds a named preset. Later registrations replace earlier ones.
func Register(name string, vars map[string]string) {
	mu.Lock()
	defer mu.Unlock()
	presets[name] = vars
}

// Lookup returns the identifier map for a named preset.
func Lookup(name string) (map[string]string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	vars, ok := presets[name]
	return vars, ok
}

// Names returns all registered preset names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readonly(names ...string) map[string]string {
	vars := make(map[string]string, len(names))
	for _, n := range names {
		vars[n] = Readonly
	}
	return vars
}

func init() {
	// The browser preset covers the common window-level identifiers; it
	// is not an exhaustive DOM inventory.
	Register("browser", readonly(
		"window", "document", "navigator", "location", "history",
		"console", "fetch", "alert", "confirm", "prompt",
		"localStorage", "sessionStorage", "setTimeout", "clearTimeout",
		"setInterval", "clearInterval", "requestAnimationFrame",
		"URL", "URLSearchParams", "Blob", "File", "FormData",
		"Event", "CustomEvent", "AbortController", "WebSocket",
	))

	Register("node", readonly(
		"process", "Buffer", "__dirname", "__filename",
		"module", "require", "exports", "console",
		"setTimeout", "clearTimeout", "setInterval", "clearInterval",
		"setImmediate", "clearImmediate", "global",
	))

	Register("es2021", readonly(
		"globalThis", "Promise", "Proxy", "Reflect", "Symbol",
		"Map", "Set", "WeakMap", "WeakSet", "WeakRef",
		"BigInt", "BigInt64Array", "BigUint64Array",
		"FinalizationRegistry", "AggregateError",
	))

	// Test-framework globals injected when test files opt into the
	// framework's globals mode.
	Register("vitest", readonly(
		"describe", "it", "test", "expect", "assert",
		"suite", "beforeAll", "afterAll", "beforeEach", "afterEach",
		"vi", "vitest",
	))
}
