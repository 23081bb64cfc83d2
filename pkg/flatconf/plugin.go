package flatconf

import (
	"sort"
	"strings"
)

// RuleMeta describes a rule provided by a plugin. flatlint carries rule
// metadata only; rule implementations belong to the external checking
// engine.
type RuleMeta struct {
	Name            string   `json:"name"`                  // bare name within the plugin, e.g. "jsx-key"
	Description     string   `json:"description"`           // human-readable description
	DefaultSeverity Severity `json:"default_severity"`      // severity the recommended preset uses
	ConfigKeys      []string `json:"config_keys,omitempty"` // option keys the rule accepts
	Recommended     bool     `json:"recommended"`           // included in the recommended preset
}

// Plugin is an externally supplied bundle of rules and shareable presets,
// bound into configuration blocks under a short id.
type Plugin struct {
	ID          string             // short id used as rule prefix, e.g. "react"
	Description string             // one-line summary for listings
	Rules       map[string]RuleMeta // bare rule name -> metadata
	Presets     map[string]*Preset  // preset name -> preset

	// ValidateSettings, when set, checks the plugin's settings namespace
	// (settings[ID]) and returns problem descriptions.
	ValidateSettings func(settings map[string]any) []string
}

// Preset returns the named preset, if the plugin provides it.
func (p *Plugin) Preset(name string) (*Preset, bool) {
	ps, ok := p.Presets[name]
	return ps, ok
}

// HasRule reports whether the plugin provides the bare rule name.
func (p *Plugin) HasRule(name string) bool {
	_, ok := p.Rules[name]
	return ok
}

// QualifiedRuleNames returns all rule names with the plugin prefix
// applied, sorted. The base plugin (see BasePluginID) is unprefixed.
func (p *Plugin) QualifiedRuleNames() []string {
	names := make([]string, 0, len(p.Rules))
	for name := range p.Rules {
		names = append(names, p.Qualify(name))
	}
	sort.Strings(names)
	return names
}

// Qualify returns the configuration key for a bare rule name.
func (p *Plugin) Qualify(name string) string {
	if p.ID == BasePluginID {
		return name
	}
	return p.ID + "/" + name
}

// BasePluginID is the short id of the base language plugin. Its rules are
// referenced without a prefix ("no-undef" rather than "js/no-undef").
const BasePluginID = "js"

// SplitRuleKey splits a configuration rule key into its plugin id and
// bare rule name. Unprefixed keys belong to the base plugin.
func SplitRuleKey(key string) (pluginID, rule string) {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return BasePluginID, key
}
