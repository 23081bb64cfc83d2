package flatconf

import "fmt"

// Issue is one configuration-shape problem found by Validate.
type Issue struct {
	Block   int    `json:"block"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("block %d: %s: %s", i.Block, i.Field, i.Message)
}

// Validate checks configuration-shape invariants and returns all issues
// found. A valid configuration returns an empty slice.
//
// Checked per block: the files matcher set is non-empty and every pattern
// is a syntactically valid glob; every extends entry, plugin binding and
// globals preset resolves; every rule override key corresponds to a rule
// provided by one of the block's plugins (bound directly or through an
// extended preset); plugin settings pass the owning plugin's checks.
func (c *Config) Validate() []Issue {
	var issues []Issue
	for i := range c.Blocks {
		issues = append(issues, c.Blocks[i].validate(i)...)
	}
	return issues
}

func (b *ConfigBlock) validate(idx int) []Issue {
	var issues []Issue

	if len(b.Files) == 0 {
		issues = append(issues, Issue{idx, "files", "matcher set is empty"})
	}
	for _, pattern := range b.Files {
		if !ValidPattern(pattern) {
			issues = append(issues, Issue{idx, "files", fmt.Sprintf("invalid glob %q", pattern)})
		}
	}
	for _, pattern := range b.Ignores {
		if !ValidPattern(pattern) {
			issues = append(issues, Issue{idx, "ignores", fmt.Sprintf("invalid glob %q", pattern)})
		}
	}

	// Plugins available for rule override resolution: direct bindings
	// plus the owners of extended presets.
	available := map[string]*Plugin{}
	for id, p := range b.Plugins {
		available[id] = p
	}
	for _, ref := range b.Extends {
		preset, err := resolveRef(ref, idx)
		if err != nil {
			issues = append(issues, Issue{idx, "extends", fmt.Sprintf("unresolved preset %q", ref.String())})
			continue
		}
		if _, ok := available[preset.PluginID]; !ok {
			if p, ok := LookupPlugin(preset.PluginID); ok {
				available[preset.PluginID] = p
			}
		}
	}

	for key := range b.Rules {
		pluginID, rule := SplitRuleKey(key)
		p, ok := available[pluginID]
		if !ok {
			// The base rule set counts as referenced even without an
			// explicit binding.
			if pluginID == BasePluginID {
				p, ok = LookupPlugin(BasePluginID)
			}
		}
		if !ok {
			issues = append(issues, Issue{idx, "rules", fmt.Sprintf("override %q references unbound plugin %q", key, pluginID)})
			continue
		}
		if !p.HasRule(rule) {
			issues = append(issues, Issue{idx, "rules", fmt.Sprintf("override %q matches no rule of plugin %q", key, pluginID)})
		}
	}

	for _, name := range b.LanguageOptions.Env {
		if !globalsPresetKnown(name) {
			issues = append(issues, Issue{idx, "languageOptions.globals", fmt.Sprintf("unknown globals preset %q", name)})
		}
	}

	for id, p := range available {
		if p.ValidateSettings == nil {
			continue
		}
		ns, _ := b.Settings[id].(map[string]any)
		for _, msg := range p.ValidateSettings(ns) {
			issues = append(issues, Issue{idx, "settings." + id, msg})
		}
	}

	return issues
}
