package flatconf

import (
	"fmt"
	"testing"
)

// newMockBasePlugin builds a minimal base language plugin with a
// recommended preset.
func newMockBasePlugin() *Plugin {
	p := &Plugin{
		ID:          BasePluginID,
		Description: "core language rules",
		Rules: map[string]RuleMeta{
			"no-undef":       {Name: "no-undef", Description: "disallow undeclared variables", DefaultSeverity: SeverityError, Recommended: true},
			"no-unused-vars": {Name: "no-unused-vars", Description: "disallow unused variables", DefaultSeverity: SeverityError, Recommended: true},
			"no-console":     {Name: "no-console", Description: "disallow console calls", DefaultSeverity: SeverityWarn},
			"eqeqeq":         {Name: "eqeqeq", Description: "require strict equality", DefaultSeverity: SeverityWarn, ConfigKeys: []string{"null"}},
		},
	}
	p.Presets = map[string]*Preset{
		"recommended": {
			PluginID: p.ID,
			Name:     "recommended",
			Rules: RuleSet{
				"no-undef":       Level(SeverityError),
				"no-unused-vars": Level(SeverityError),
			},
		},
	}
	return p
}

// newMockUIPlugin builds a framework plugin with recommended preset,
// settings validation and a settings-contributing preset.
func newMockUIPlugin() *Plugin {
	p := &Plugin{
		ID:          "ui",
		Description: "ui framework rules",
		Rules: map[string]RuleMeta{
			"in-scope":   {Name: "in-scope", Description: "require framework import in scope", DefaultSeverity: SeverityError, Recommended: true},
			"needs-key":  {Name: "needs-key", Description: "require keys on list items", DefaultSeverity: SeverityError, Recommended: true},
			"no-inline":  {Name: "no-inline", Description: "disallow inline handlers", DefaultSeverity: SeverityWarn},
		},
		ValidateSettings: func(settings map[string]any) []string {
			v, ok := settings["version"]
			if !ok {
				return nil
			}
			if s, ok := v.(string); !ok || s == "" {
				return []string{fmt.Sprintf("version must be a non-empty string, got %v", v)}
			}
			return nil
		},
	}
	p.Presets = map[string]*Preset{
		"recommended": {
			PluginID: p.ID,
			Name:     "recommended",
			Rules: RuleSet{
				"ui/in-scope":  Level(SeverityError),
				"ui/needs-key": Level(SeverityError),
			},
			Settings: map[string]any{"ui": map[string]any{"version": "detect"}},
		},
	}
	return p
}

// newMockTestPlugin builds a test-framework plugin whose recommended
// preset injects the vitest globals preset.
func newMockTestPlugin() *Plugin {
	p := &Plugin{
		ID:          "tf",
		Description: "test framework rules",
		Rules: map[string]RuleMeta{
			"expect-expect": {Name: "expect-expect", Description: "require an assertion per test", DefaultSeverity: SeverityWarn, Recommended: true},
			"no-focused":    {Name: "no-focused", Description: "disallow focused tests", DefaultSeverity: SeverityError, Recommended: true},
		},
	}
	p.Presets = map[string]*Preset{
		"recommended": {
			PluginID: p.ID,
			Name:     "recommended",
			Rules: RuleSet{
				"tf/expect-expect": Level(SeverityWarn),
				"tf/no-focused":    Level(SeverityError),
			},
			Globals: []string{"vitest"},
		},
	}
	return p
}

// registerMockPlugins installs the mock plugins into the global registry
// for the duration of the test.
func registerMockPlugins(t *testing.T) (base, ui, tf *Plugin) {
	t.Helper()
	base = newMockBasePlugin()
	ui = newMockUIPlugin()
	tf = newMockTestPlugin()
	RegisterPlugin(base)
	RegisterPlugin(ui)
	RegisterPlugin(tf)
	t.Cleanup(ClearPlugins)
	return base, ui, tf
}
