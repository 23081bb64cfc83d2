// Package js provides the base language plugin: the core rule set
// referenced without a plugin prefix, and its "recommended" preset.
package js

import "github.com/flatlint-labs/flatlint/pkg/flatconf"

func init() {
	flatconf.RegisterPlugin(Plugin)
}

// Plugin is the base language plugin, bound under the "js" short id.
var Plugin = &flatconf.Plugin{
	ID:          flatconf.BasePluginID,
	Description: "Core language rules",
	Rules: map[string]flatconf.RuleMeta{
		"no-undef": {
			Name:            "no-undef",
			Description:     "Disallow use of undeclared identifiers.",
			DefaultSeverity: flatconf.SeverityError,
			Recommended:     true,
		},
		"no-unused-vars": {
			Name:            "no-unused-vars",
			Description:     "Disallow variables that are declared but never used.",
			DefaultSeverity: flatconf.SeverityError,
			ConfigKeys:      []string{"args", "varsIgnorePattern"},
			Recommended:     true,
		},
		"no-redeclare": {
			Name:            "no-redeclare",
			Description:     "Disallow redeclaring a variable in the same scope.",
			DefaultSeverity: flatconf.SeverityError,
			Recommended:     true,
		},
		"no-dupe-keys": {
			Name:            "no-dupe-keys",
			Description:     "Disallow duplicate keys in object literals.",
			DefaultSeverity: flatconf.SeverityError,
			Recommended:     true,
		},
		"no-debugger": {
			Name:            "no-debugger",
			Description:     "Disallow debugger statements.",
			DefaultSeverity: flatconf.SeverityError,
			Recommended:     true,
		},
		"no-empty": {
			Name:            "no-empty",
			Description:     "Disallow empty block statements.",
			DefaultSeverity: flatconf.SeverityError,
			ConfigKeys:      []string{"allowEmptyCatch"},
			Recommended:     true,
		},
		"no-unreachable": {
			Name:            "no-unreachable",
			Description:     "Disallow code after return, throw, continue or break.",
			DefaultSeverity: flatconf.SeverityError,
			Recommended:     true,
		},
		"no-console": {
			Name:            "no-console",
			Description:     "Disallow console method calls.",
			DefaultSeverity: flatconf.SeverityWarn,
			ConfigKeys:      []string{"allow"},
		},
		"eqeqeq": {
			Name:            "eqeqeq",
			Description:     "Require strict equality operators.",
			DefaultSeverity: flatconf.SeverityWarn,
			ConfigKeys:      []string{"null"},
		},
		"no-var": {
			Name:            "no-var",
			Description:     "Require let or const instead of var.",
			DefaultSeverity: flatconf.SeverityWarn,
		},
		"prefer-const": {
			Name:            "prefer-const",
			Description:     "Require const for bindings that are never reassigned.",
			DefaultSeverity: flatconf.SeverityWarn,
			ConfigKeys:      []string{"destructuring"},
		},
	},
	Presets: map[string]*flatconf.Preset{
		"recommended": Recommended,
	},
}

// Recommended is the base recommended preset: every recommended core rule
// at its default severity.
var Recommended = &flatconf.Preset{
	PluginID: flatconf.BasePluginID,
	Name:     "recommended",
	Rules: flatconf.RuleSet{
		"no-undef":       flatconf.Level(flatconf.SeverityError),
		"no-unused-vars": flatconf.Level(flatconf.SeverityError),
		"no-redeclare":   flatconf.Level(flatconf.SeverityError),
		"no-dupe-keys":   flatconf.Level(flatconf.SeverityError),
		"no-debugger":    flatconf.Level(flatconf.SeverityError),
		"no-empty":       flatconf.Level(flatconf.SeverityError),
		"no-unreachable": flatconf.Level(flatconf.SeverityError),
	},
}
