package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

func TestPluginRegisteredAsBase(t *testing.T) {
	p, ok := flatconf.LookupPlugin(flatconf.BasePluginID)
	require.True(t, ok)
	assert.Same(t, Plugin, p)
}

func TestBaseRulesUnprefixed(t *testing.T) {
	names := Plugin.QualifiedRuleNames()
	for _, name := range names {
		assert.NotContains(t, name, "/", "base rules must be unprefixed")
	}
	assert.Contains(t, names, "no-undef")
}

func TestRecommendedPresetSubset(t *testing.T) {
	for key := range Recommended.Rules {
		meta, ok := Plugin.Rules[key]
		require.True(t, ok, "preset rule %s not provided by the plugin", key)
		assert.True(t, meta.Recommended, "preset carries non-recommended rule %s", key)
	}
	// Stylistic rules stay out of recommended.
	assert.NotContains(t, Recommended.Rules, "no-console")
	assert.NotContains(t, Recommended.Rules, "eqeqeq")
}
