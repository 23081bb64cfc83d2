package flatconf

import (
	"sort"

	"github.com/flatlint-labs/flatlint/pkg/globals"
)

func globalsPresetKnown(name string) bool {
	_, ok := globals.Lookup(name)
	return ok
}

// Effective is the flattened configuration for a single file path: the
// final rule-enforcement table plus the globals, settings and plugin
// bindings that apply.
type Effective struct {
	Path     string            `json:"path"`
	Blocks   []int             `json:"blocks"` // indices of matched blocks, in declaration order
	Plugins  []string          `json:"plugins"`
	Rules    RuleSet           `json:"rules"`
	Globals  map[string]string `json:"globals"`
	Settings map[string]any    `json:"settings"`
}

// EnabledRules returns the sorted names of rules whose effective severity
// is warn or error.
func (e *Effective) EnabledRules() []string {
	var names []string
	for name, level := range e.Rules {
		if level.Severity != SeverityOff {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Rule returns the effective level for a rule name. Absent rules report
// SeverityOff with ok=false.
func (e *Effective) Rule(name string) (RuleLevel, bool) {
	level, ok := e.Rules[name]
	return level, ok
}

// Resolve assembles the effective configuration for a file path.
//
// All blocks whose matchers select the path contribute, in declaration
// order, with later blocks overriding earlier ones on conflicting rule
// keys, globals and settings. A path matched by no block yields an
// Effective with an empty Blocks slice.
func (c *Config) Resolve(path string) (*Effective, error) {
	eff := &Effective{
		Path:     path,
		Rules:    make(RuleSet),
		Globals:  map[string]string{},
		Settings: map[string]any{},
	}

	pluginSet := map[string]bool{}

	for i := range c.Blocks {
		b := &c.Blocks[i]
		if !b.Matches(path) {
			continue
		}
		flat, err := b.flatten(i)
		if err != nil {
			return nil, err
		}

		eff.Blocks = append(eff.Blocks, i)
		for name, level := range flat.Rules {
			eff.Rules[name] = level
		}

		// Env presets expand before the block's inline globals so that
		// explicit entries win within the block; later blocks override
		// earlier ones either way. Unknown preset names are rejected at
		// load time; a programmatic configuration with a bad name fails
		// here instead.
		for _, name := range flat.Env {
			vars, ok := globals.Lookup(name)
			if !ok {
				return nil, &UnresolvedRefError{Block: i, Kind: "globals preset", Name: name}
			}
			for ident, mode := range vars {
				eff.Globals[ident] = mode
			}
		}
		for ident, mode := range flat.Globals {
			eff.Globals[ident] = mode
		}

		mergeSettings(eff.Settings, flat.Settings)
		for id := range b.Plugins {
			pluginSet[id] = true
		}
	}

	for id := range pluginSet {
		eff.Plugins = append(eff.Plugins, id)
	}
	sort.Strings(eff.Plugins)

	return eff, nil
}
