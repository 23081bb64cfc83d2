package react

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

func TestPluginRegistered(t *testing.T) {
	p, ok := flatconf.LookupPlugin("react")
	require.True(t, ok)
	assert.Same(t, Plugin, p)
}

func TestRecommendedPreset(t *testing.T) {
	preset, ok := Plugin.Preset("recommended")
	require.True(t, ok)
	assert.Same(t, Recommended, preset)

	// Every recommended rule is present, qualified, at its default level.
	for name, meta := range Plugin.Rules {
		level, ok := preset.Rules["react/"+name]
		if meta.Recommended {
			require.True(t, ok, "recommended rule %s missing from preset", name)
			assert.Equal(t, meta.DefaultSeverity, level.Severity)
		} else {
			assert.False(t, ok, "non-recommended rule %s in preset", name)
		}
	}
}

func TestJSXRuntimePreset(t *testing.T) {
	preset, ok := Plugin.Preset("jsx-runtime")
	require.True(t, ok)

	level, ok := preset.Rules["react/react-in-jsx-scope"]
	require.True(t, ok)
	assert.Equal(t, flatconf.SeverityOff, level.Severity)
	level, ok = preset.Rules["react/jsx-uses-react"]
	require.True(t, ok)
	assert.Equal(t, flatconf.SeverityOff, level.Severity)

	// The adjustment does not leak back into the recommended preset.
	assert.Equal(t, flatconf.SeverityError, Recommended.Rules["react/react-in-jsx-scope"].Severity)
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		wantOK   bool
	}{
		{"nil settings", nil, true},
		{"no version", map[string]any{"pragma": "h"}, true},
		{"detect", map[string]any{"version": VersionDetect}, true},
		{"pinned", map[string]any{"version": "18.2.0"}, true},
		{"empty string", map[string]any{"version": ""}, false},
		{"non-string", map[string]any{"version": 18}, false},
		{"non-numeric", map[string]any{"version": "latest"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Plugin.ValidateSettings(tt.settings)
			if tt.wantOK {
				assert.Empty(t, problems)
			} else {
				assert.NotEmpty(t, problems)
			}
		})
	}
}
