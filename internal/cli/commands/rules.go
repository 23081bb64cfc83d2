package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flatlint-labs/flatlint/internal/cli/output"
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Plugin      string // Filter by plugin short id
	Recommended bool   // Only rules in the recommended presets
	Format      string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-key]",
		Short: "List rules provided by the registered plugins",
		Long: `List the rule metadata carried by the registered plugins.

flatlint holds metadata only; the rule implementations belong to the
external checking engine. Use a rule key argument (e.g. "react/jsx-key"
or "no-undef") to show a single rule.`,
		Example: `  # List all rules
  flatlint rules

  # Show a single rule
  flatlint rules react/jsx-key

  # List rules of one plugin
  flatlint rules --plugin vitest

  # Output as JSON
  flatlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Plugin, "plugin", "p", "", "Filter by plugin short id")
	cmd.Flags().BoolVar(&opts.Recommended, "recommended", false, "Only rules in the recommended presets")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// ruleListing is the JSON shape of one rules entry.
type ruleListing struct {
	Key             string             `json:"key"`
	Plugin          string             `json:"plugin"`
	Description     string             `json:"description"`
	DefaultSeverity flatconf.Severity  `json:"default_severity"`
	ConfigKeys      []string           `json:"config_keys,omitempty"`
	Recommended     bool               `json:"recommended"`
}

func collectRules(opts *RulesOptions) []ruleListing {
	var listings []ruleListing
	for _, p := range flatconf.AllPlugins() {
		if opts.Plugin != "" && p.ID != opts.Plugin {
			continue
		}
		for _, key := range p.QualifiedRuleNames() {
			_, bare := flatconf.SplitRuleKey(key)
			meta := p.Rules[bare]
			if opts.Recommended && !meta.Recommended {
				continue
			}
			listings = append(listings, ruleListing{
				Key:             key,
				Plugin:          p.ID,
				Description:     meta.Description,
				DefaultSeverity: meta.DefaultSeverity,
				ConfigKeys:      meta.ConfigKeys,
				Recommended:     meta.Recommended,
			})
		}
	}
	return listings
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cc := NewCommandContextWithoutDoc(cmd)
	cc.overrideRenderer(cmd, opts.Format)
	r := cc.Renderer

	listings := collectRules(opts)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(listings)
	}

	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		recommended := ""
		if l.Recommended {
			recommended = "yes"
		}
		rows = append(rows, []string{
			l.Key,
			l.Plugin,
			r.SeverityCell(l.DefaultSeverity.String()),
			recommended,
			l.Description,
		})
	}
	r.Table([]string{"Rule", "Plugin", "Default", "Recommended", "Description"}, rows)
	r.Printf("\n%d rules from %d plugins\n", len(listings), flatconf.PluginCount())
	return nil
}

func showRule(cmd *cobra.Command, key string, opts *RulesOptions) error {
	cc := NewCommandContextWithoutDoc(cmd)
	cc.overrideRenderer(cmd, opts.Format)
	r := cc.Renderer

	pluginID, bare := flatconf.SplitRuleKey(key)
	p, ok := flatconf.LookupPlugin(pluginID)
	if !ok {
		return fmt.Errorf("plugin %q not registered", pluginID)
	}
	meta, ok := p.Rules[bare]
	if !ok {
		return fmt.Errorf("rule %q not found", key)
	}

	listing := ruleListing{
		Key:             p.Qualify(bare),
		Plugin:          p.ID,
		Description:     meta.Description,
		DefaultSeverity: meta.DefaultSeverity,
		ConfigKeys:      meta.ConfigKeys,
		Recommended:     meta.Recommended,
	}
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(listing)
	}

	r.Header(listing.Key)
	r.Printf("Plugin:      %s\n", listing.Plugin)
	r.Printf("Default:     %s\n", listing.DefaultSeverity)
	r.Printf("Recommended: %v\n", listing.Recommended)
	if len(listing.ConfigKeys) > 0 {
		r.Printf("Options:     %s\n", strings.Join(listing.ConfigKeys, ", "))
	}
	r.Println()
	r.Println(listing.Description)
	return nil
}
