package flatconf

import "sort"

// =============================================================================
// Rule levels and rule sets
// =============================================================================

// RuleLevel is the configured enforcement for a single rule: a severity
// plus optional rule-specific options, opaque to this package.
type RuleLevel struct {
	Severity Severity `json:"severity"`
	Options  []any    `json:"options,omitempty"`
}

// Level is a convenience constructor for a RuleLevel without options.
func Level(s Severity) RuleLevel {
	return RuleLevel{Severity: s}
}

// RuleSet maps a rule name (qualified by plugin prefix where applicable,
// e.g. "react/jsx-key") to its enforcement level.
type RuleSet map[string]RuleLevel

// Clone returns a shallow copy of the rule set. Options slices are shared;
// they are treated as immutable after load.
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// Names returns the rule names in sorted order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for k := range rs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Presets and extension references
// =============================================================================

// Preset is a shareable rule-set bundle exported by a plugin, such as
// "react/recommended". A preset may also contribute language globals and
// plugin settings.
type Preset struct {
	PluginID string         // owning plugin short id, e.g. "react"
	Name     string         // preset name within the plugin, e.g. "recommended"
	Rules    RuleSet        // rules enabled by this preset
	Globals  []string       // environment global preset names to inject
	Settings map[string]any // plugin settings contributed by the preset
}

// Ref returns the symbolic "plugin/preset" reference for the preset.
func (p *Preset) Ref() string {
	return p.PluginID + "/" + p.Name
}

// ExtensionRef references a preset either symbolically by name
// ("react/recommended") or directly by handle. Both forms resolve to the
// same preset table at load time; the distinction is purely how the
// configuration was authored.
type ExtensionRef struct {
	name   string
	direct *Preset
}

// Named creates a symbolic extension reference, resolved against the
// plugin registry when the block is flattened.
func Named(ref string) ExtensionRef {
	return ExtensionRef{name: ref}
}

// Direct creates an extension reference bound to a preset handle.
func Direct(p *Preset) ExtensionRef {
	return ExtensionRef{direct: p}
}

// IsNamed reports whether the reference is symbolic.
func (r ExtensionRef) IsNamed() bool { return r.direct == nil }

// String returns the symbolic form of the reference regardless of how it
// was authored.
func (r ExtensionRef) String() string {
	if r.direct != nil {
		return r.direct.Ref()
	}
	return r.name
}

// =============================================================================
// Configuration blocks
// =============================================================================

// LanguageOptions configures the checking environment for a block.
type LanguageOptions struct {
	// Env lists environment global preset names (e.g. "browser") whose
	// identifiers are injected so they are not flagged as undefined.
	Env []string

	// Globals holds inline identifier -> mode ("readonly"/"writable")
	// entries, applied after Env presets.
	Globals map[string]string
}

// ConfigBlock is one entry of a flat configuration: a set of file
// matchers together with the plugins, extended rule sets, overrides,
// globals and settings that apply to matched files.
type ConfigBlock struct {
	Name            string             // optional label for reporting
	Files           []string           // glob patterns selecting files
	Ignores         []string           // glob patterns excluding files
	Plugins         map[string]*Plugin // short id -> plugin binding
	Extends         []ExtensionRef     // extended rule sets, in order
	Rules           RuleSet            // explicit overrides, applied last
	LanguageOptions LanguageOptions
	Settings        map[string]any // plugin-specific settings
}

// Config is an ordered sequence of configuration blocks. It is
// constructed once at load time and treated as immutable afterwards.
type Config struct {
	Blocks []ConfigBlock
	Source string // file the config was loaded from, empty if programmatic
}

// PluginIDs returns the sorted short ids of all plugins bound anywhere in
// the configuration.
func (c *Config) PluginIDs() []string {
	seen := map[string]bool{}
	for _, b := range c.Blocks {
		for id := range b.Plugins {
			seen[id] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
