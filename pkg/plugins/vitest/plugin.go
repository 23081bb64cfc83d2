// Package vitest provides the test-framework plugin: test-file rules and
// the "recommended" preset, which also injects the framework's globals.
package vitest

import "github.com/flatlint-labs/flatlint/pkg/flatconf"

func init() {
	flatconf.RegisterPlugin(Plugin)
}

// Plugin is the test-framework plugin, bound under the "vitest" short id.
var Plugin = &flatconf.Plugin{
	ID:          "vitest",
	Description: "Test-framework rules",
	Rules:       pluginRules,
	Presets: map[string]*flatconf.Preset{
		"recommended": Recommended,
	},
}

var pluginRules = map[string]flatconf.RuleMeta{
	"expect-expect": {
		Name:            "expect-expect",
		Description:     "Require at least one assertion per test.",
		DefaultSeverity: flatconf.SeverityWarn,
		ConfigKeys:      []string{"assertFunctionNames"},
		Recommended:     true,
	},
	"no-identical-title": {
		Name:            "no-identical-title",
		Description:     "Disallow identical titles for sibling tests.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"no-commented-out-tests": {
		Name:            "no-commented-out-tests",
		Description:     "Disallow commented-out test blocks.",
		DefaultSeverity: flatconf.SeverityWarn,
		Recommended:     true,
	},
	"valid-expect": {
		Name:            "valid-expect",
		Description:     "Require assertions to be called correctly.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"valid-title": {
		Name:            "valid-title",
		Description:     "Require test titles to be non-empty strings.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"no-disabled-tests": {
		Name:            "no-disabled-tests",
		Description:     "Disallow skipped tests.",
		DefaultSeverity: flatconf.SeverityWarn,
	},
	"consistent-test-it": {
		Name:            "consistent-test-it",
		Description:     "Enforce a consistent test declaration style.",
		DefaultSeverity: flatconf.SeverityWarn,
		ConfigKeys:      []string{"fn", "withinDescribe"},
	},
	"prefer-to-be": {
		Name:            "prefer-to-be",
		Description:     "Prefer toBe for primitive equality assertions.",
		DefaultSeverity: flatconf.SeverityWarn,
	},
}

// Recommended enables the recommended test rules and injects the
// framework's test globals (describe, it, expect, ...).
var Recommended = &flatconf.Preset{
	PluginID: "vitest",
	Name:     "recommended",
	Rules: flatconf.RuleSet{
		"vitest/expect-expect":          flatconf.Level(flatconf.SeverityWarn),
		"vitest/no-identical-title":     flatconf.Level(flatconf.SeverityError),
		"vitest/no-commented-out-tests": flatconf.Level(flatconf.SeverityWarn),
		"vitest/valid-expect":           flatconf.Level(flatconf.SeverityError),
		"vitest/valid-title":            flatconf.Level(flatconf.SeverityError),
	},
	Globals: []string{"vitest"},
}
