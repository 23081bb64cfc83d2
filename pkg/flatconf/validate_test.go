package flatconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueFields(issues []Issue) []string {
	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	return fields
}

func TestValidateCleanConfig(t *testing.T) {
	base, ui, _ := registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files:   []string{"**/*.{js,jsx}"},
			Plugins: map[string]*Plugin{base.ID: base, ui.ID: ui},
			Extends: []ExtensionRef{Named("js/recommended"), Named("ui/recommended")},
			Rules:   RuleSet{"ui/in-scope": Level(SeverityOff), "no-console": Level(SeverityWarn)},
			Settings: map[string]any{
				"ui": map[string]any{"version": "detect"},
			},
		},
	}}

	assert.Empty(t, cfg.Validate())
}

func TestValidateEmptyFiles(t *testing.T) {
	registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{{}}}
	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, "files", issues[0].Field)
	assert.Equal(t, 0, issues[0].Block)
}

func TestValidateInvalidGlob(t *testing.T) {
	registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{Files: []string{"src/[unclosed"}, Ignores: []string{"dist/[also"}},
	}}

	issues := cfg.Validate()
	assert.Contains(t, issueFields(issues), "files")
	assert.Contains(t, issueFields(issues), "ignores")
}

func TestValidateUnboundPluginOverride(t *testing.T) {
	registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files: []string{"**/*.js"},
			Rules: RuleSet{"ui/in-scope": Level(SeverityWarn)},
		},
	}}

	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, "rules", issues[0].Field)
	assert.Contains(t, issues[0].Message, "unbound plugin")
}

func TestValidateExtendedPresetBindsOwner(t *testing.T) {
	registerMockPlugins(t)

	// Extending a preset makes its owner's rules addressable without an
	// explicit plugin binding.
	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files:   []string{"**/*.jsx"},
			Extends: []ExtensionRef{Named("ui/recommended")},
			Rules:   RuleSet{"ui/no-inline": Level(SeverityError)},
		},
	}}

	assert.Empty(t, cfg.Validate())
}

func TestValidateUnknownRule(t *testing.T) {
	base, _, _ := registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files:   []string{"**/*.js"},
			Plugins: map[string]*Plugin{base.ID: base},
			Rules:   RuleSet{"no-such-rule": Level(SeverityError)},
		},
	}}

	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "no-such-rule")
}

func TestValidateBaseRulesWithoutBinding(t *testing.T) {
	registerMockPlugins(t)

	// Unprefixed rule keys resolve against the base plugin even when the
	// block binds nothing.
	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files: []string{"**/*.js"},
			Rules: RuleSet{"no-console": Level(SeverityOff)},
		},
	}}

	assert.Empty(t, cfg.Validate())
}

func TestValidateUnknownGlobalsPreset(t *testing.T) {
	registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files:           []string{"**/*.js"},
			LanguageOptions: LanguageOptions{Env: []string{"deno"}},
		},
	}}

	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, "languageOptions.globals", issues[0].Field)
}

func TestValidateBadSettings(t *testing.T) {
	_, ui, _ := registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{
			Files:   []string{"**/*.jsx"},
			Plugins: map[string]*Plugin{ui.ID: ui},
			Settings: map[string]any{
				"ui": map[string]any{"version": ""},
			},
		},
	}}

	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, "settings.ui", issues[0].Field)
}

func TestValidateReportsBlockIndexes(t *testing.T) {
	registerMockPlugins(t)

	cfg := &Config{Blocks: []ConfigBlock{
		{Files: []string{"**/*.js"}},
		{},
	}}

	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Block)
	assert.Equal(t, "block 1: files: matcher set is empty", issues[0].String())
}
