// Package react provides the UI-framework plugin: JSX rules, the
// "recommended" and "jsx-runtime" presets, and the version auto-detection
// settings convention.
package react

import (
	"fmt"

	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

// Settings conventions under settings.react.
const (
	// SettingsKey is the settings namespace the plugin reads.
	SettingsKey = "react"
	// VersionDetect instructs the plugin to detect the framework version
	// from the project instead of requiring it to be pinned.
	VersionDetect = "detect"
)

func init() {
	flatconf.RegisterPlugin(Plugin)
}

// Plugin is the UI-framework plugin, bound under the "react" short id.
var Plugin = &flatconf.Plugin{
	ID:          "react",
	Description: "UI-framework (JSX) rules",
	Rules:       pluginRules,
	Presets: map[string]*flatconf.Preset{
		"recommended": Recommended,
		"jsx-runtime": JSXRuntime,
	},
	ValidateSettings: validateSettings,
}

var pluginRules = map[string]flatconf.RuleMeta{
	"react-in-jsx-scope": {
		Name:            "react-in-jsx-scope",
		Description:     "Require the framework object in scope when JSX is used.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"jsx-uses-react": {
		Name:            "jsx-uses-react",
		Description:     "Mark the framework import as used when JSX is present.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"jsx-uses-vars": {
		Name:            "jsx-uses-vars",
		Description:     "Mark variables used in JSX as used.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"jsx-key": {
		Name:            "jsx-key",
		Description:     "Require key props for elements in iterators.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"jsx-no-undef": {
		Name:            "jsx-no-undef",
		Description:     "Disallow undeclared components in JSX.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"jsx-no-duplicate-props": {
		Name:            "jsx-no-duplicate-props",
		Description:     "Disallow duplicate props on JSX elements.",
		DefaultSeverity: flatconf.SeverityError,
		ConfigKeys:      []string{"ignoreCase"},
		Recommended:     true,
	},
	"no-children-prop": {
		Name:            "no-children-prop",
		Description:     "Disallow passing children as a prop.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"no-direct-mutation-state": {
		Name:            "no-direct-mutation-state",
		Description:     "Disallow direct mutation of component state.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"no-unescaped-entities": {
		Name:            "no-unescaped-entities",
		Description:     "Disallow unescaped HTML entities in JSX text.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"no-deprecated": {
		Name:            "no-deprecated",
		Description:     "Disallow deprecated framework APIs.",
		DefaultSeverity: flatconf.SeverityError,
		Recommended:     true,
	},
	"prop-types": {
		Name:            "prop-types",
		Description:     "Require prop type declarations for components.",
		DefaultSeverity: flatconf.SeverityError,
		ConfigKeys:      []string{"ignore", "skipUndeclared"},
		Recommended:     true,
	},
	"display-name": {
		Name:            "display-name",
		Description:     "Require a display name for components.",
		DefaultSeverity: flatconf.SeverityError,
		ConfigKeys:      []string{"ignoreTranspilerName"},
		Recommended:     true,
	},
}

// Recommended enables every recommended rule at its default severity.
var Recommended = &flatconf.Preset{
	PluginID: "react",
	Name:     "recommended",
	Rules:    recommendedRules(),
}

// JSXRuntime is the recommended preset adjusted for the automatic JSX
// runtime, where the framework object no longer needs to be in scope.
var JSXRuntime = &flatconf.Preset{
	PluginID: "react",
	Name:     "jsx-runtime",
	Rules: func() flatconf.RuleSet {
		rs := recommendedRules()
		rs["react/react-in-jsx-scope"] = flatconf.Level(flatconf.SeverityOff)
		rs["react/jsx-uses-react"] = flatconf.Level(flatconf.SeverityOff)
		return rs
	}(),
}

func recommendedRules() flatconf.RuleSet {
	rs := make(flatconf.RuleSet)
	for name, meta := range pluginRules {
		if meta.Recommended {
			rs["react/"+name] = flatconf.Level(meta.DefaultSeverity)
		}
	}
	return rs
}

// validateSettings checks the settings.react namespace. The version must
// be "detect" or an explicit version string; anything else defeats both
// pinning and auto-detection.
func validateSettings(settings map[string]any) []string {
	if settings == nil {
		return nil
	}
	v, ok := settings["version"]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return []string{fmt.Sprintf("version must be %q or a version string, got %v", VersionDetect, v)}
	}
	if s == VersionDetect {
		return nil
	}
	if s[0] < '0' || s[0] > '9' {
		return []string{fmt.Sprintf("version must be %q or a version string, got %q", VersionDetect, s)}
	}
	return nil
}
