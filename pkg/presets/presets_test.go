package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

func TestVariantAResolvesAppFile(t *testing.T) {
	cfg := VariantA()

	eff, err := cfg.Resolve("src/App.jsx")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, eff.Blocks)
	assert.Equal(t, []string{"js", "react"}, eff.Plugins)

	// Recommended react rules are on, except the JSX-runtime override.
	level, ok := eff.Rule("react/jsx-key")
	require.True(t, ok)
	assert.Equal(t, flatconf.SeverityError, level.Severity)
	level, ok = eff.Rule("react/react-in-jsx-scope")
	require.True(t, ok)
	assert.Equal(t, flatconf.SeverityOff, level.Severity)

	// Base recommended rules come from the symbolic reference.
	level, ok = eff.Rule("no-undef")
	require.True(t, ok)
	assert.Equal(t, flatconf.SeverityError, level.Severity)

	// No test-framework leakage into app files.
	_, ok = eff.Rule("vitest/expect-expect")
	assert.False(t, ok)

	// Browser globals are injected, framework settings carried through.
	assert.Equal(t, "readonly", eff.Globals["document"])
	ns, _ := eff.Settings["react"].(map[string]any)
	require.NotNil(t, ns)
	assert.Equal(t, "detect", ns["version"])
}

func TestVariantAResolvesTestFile(t *testing.T) {
	cfg := VariantA()

	eff, err := cfg.Resolve("src/App.test.jsx")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, eff.Blocks)
	assert.Equal(t, []string{"js", "react", "vitest"}, eff.Plugins)

	// Test files pick up both the app block and the test block.
	_, ok := eff.Rule("react/jsx-key")
	assert.True(t, ok)
	level, ok := eff.Rule("vitest/expect-expect")
	require.True(t, ok)
	assert.NotEqual(t, flatconf.SeverityOff, level.Severity)

	// The test-framework preset injects its globals.
	assert.Equal(t, "readonly", eff.Globals["describe"])
	assert.Equal(t, "readonly", eff.Globals["vi"])
}

func TestVariantsABEquivalent(t *testing.T) {
	paths := []string{
		"src/App.jsx",
		"src/App.test.jsx",
		"index.js",
		"lib/util.test.js",
		"README.md",
	}

	equal, changes, err := flatconf.EquivalentFor(VariantA(), VariantB(), paths...)
	require.NoError(t, err)
	assert.True(t, equal, "variants A and B should produce identical effective rules, diff: %v", changes)
}

func TestVariantCHasNoTestProfile(t *testing.T) {
	cfg := VariantC()

	eff, err := cfg.Resolve("src/App.test.jsx")
	require.NoError(t, err)
	// Only the app block applies; no test-framework rules or globals.
	assert.Equal(t, []int{0}, eff.Blocks)
	_, ok := eff.Rule("vitest/expect-expect")
	assert.False(t, ok)
	assert.NotContains(t, eff.Globals, "describe")
	assert.NotContains(t, eff.Plugins, "vitest")
}

func TestVariantsValidate(t *testing.T) {
	for name, cfg := range map[string]*flatconf.Config{
		"A": VariantA(),
		"B": VariantB(),
		"C": VariantC(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, cfg.Validate())
		})
	}
}
