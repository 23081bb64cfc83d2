// Package presets provides the canonical starter configurations. The
// variants carry the same intent (base rules plus the UI-framework
// profile, with the test-framework profile layered onto test files) and
// differ only in which profiles they include and whether extended rule
// sets are referenced symbolically or by handle. VariantA and VariantB
// must resolve to identical effective rule tables for any path.
package presets

import (
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
	"github.com/flatlint-labs/flatlint/pkg/plugins/js"
	"github.com/flatlint-labs/flatlint/pkg/plugins/react"
	"github.com/flatlint-labs/flatlint/pkg/plugins/vitest"
)

// Source file and test file matchers shared by the variants.
const (
	appFiles  = "**/*.{js,jsx}"
	testFiles = "**/*.test.{js,jsx}"
)

func appBlock(extends ...flatconf.ExtensionRef) flatconf.ConfigBlock {
	return flatconf.ConfigBlock{
		Name:    "app",
		Files:   []string{appFiles},
		Plugins: map[string]*flatconf.Plugin{js.Plugin.ID: js.Plugin, react.Plugin.ID: react.Plugin},
		Extends: extends,
		Rules: flatconf.RuleSet{
			// The automatic JSX runtime makes the in-scope requirement
			// obsolete.
			"react/react-in-jsx-scope": flatconf.Level(flatconf.SeverityOff),
		},
		LanguageOptions: flatconf.LanguageOptions{Env: []string{"browser"}},
		Settings: map[string]any{
			react.SettingsKey: map[string]any{"version": react.VersionDetect},
		},
	}
}

func testBlock(extends ...flatconf.ExtensionRef) flatconf.ConfigBlock {
	return flatconf.ConfigBlock{
		Name:    "tests",
		Files:   []string{testFiles},
		Plugins: map[string]*flatconf.Plugin{vitest.Plugin.ID: vitest.Plugin},
		Extends: extends,
	}
}

// VariantA includes the UI-framework and test-framework profiles, with
// the UI profile referenced by handle and the test profile symbolically.
func VariantA() *flatconf.Config {
	return &flatconf.Config{
		Blocks: []flatconf.ConfigBlock{
			appBlock(
				flatconf.Named("js/recommended"),
				flatconf.Direct(react.Recommended),
			),
			testBlock(flatconf.Named("vitest/recommended")),
		},
	}
}

// VariantB is VariantA with every extended rule set referenced
// symbolically. It is the serializable form and doubles as the embedded
// starter configuration.
func VariantB() *flatconf.Config {
	return &flatconf.Config{
		Blocks: []flatconf.ConfigBlock{
			appBlock(
				flatconf.Named("js/recommended"),
				flatconf.Named("react/recommended"),
			),
			testBlock(flatconf.Named("vitest/recommended")),
		},
	}
}

// VariantC includes only the UI-framework profile, referenced by handle.
func VariantC() *flatconf.Config {
	return &flatconf.Config{
		Blocks: []flatconf.ConfigBlock{
			appBlock(
				flatconf.Direct(js.Recommended),
				flatconf.Direct(react.Recommended),
			),
		},
	}
}
