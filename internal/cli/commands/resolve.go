package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flatlint-labs/flatlint/internal/cli/output"
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

// ResolveOptions holds options for the resolve command.
type ResolveOptions struct {
	Format      string // Output format: text, markdown, json
	ShowGlobals bool   // Include the full globals table
	All         bool   // Include rules set to off
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	opts := &ResolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show the effective configuration for a file path",
		Long: `Flatten the configuration against a file path.

All blocks whose matchers select the path contribute, in declaration
order; later blocks override earlier ones on conflicting rule keys. The
result is the exact rule-enforcement table the checking engine would
apply to the file.`,
		Example: `  # Effective configuration for a component
  flatlint resolve src/App.jsx

  # Test files additionally pick up the test-framework block
  flatlint resolve src/App.test.jsx

  # Machine-readable output
  flatlint resolve src/App.jsx --format json

  # Include rules that are switched off
  flatlint resolve src/App.jsx --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.ShowGlobals, "globals", false, "List the injected globals")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Include rules set to off")

	return cmd
}

func runResolve(cmd *cobra.Command, path string, opts *ResolveOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cc.overrideRenderer(cmd, opts.Format)
	r := cc.Renderer

	eff, err := cc.Doc.Resolve(path)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(eff)
	}

	if len(eff.Blocks) == 0 {
		r.Warning(fmt.Sprintf("%s is matched by no configuration block", path))
		return nil
	}

	blockNames := make([]string, len(eff.Blocks))
	for i, idx := range eff.Blocks {
		name := cc.Doc.Blocks[idx].Name
		if name == "" {
			name = strconv.Itoa(idx)
		}
		blockNames[i] = name
	}
	r.Header(path)
	r.Printf("Blocks:  %s\n", strings.Join(blockNames, ", "))
	r.Printf("Plugins: %s\n", strings.Join(eff.Plugins, ", "))
	r.Printf("Globals: %d identifiers\n", len(eff.Globals))
	if len(eff.Settings) > 0 {
		settings, _ := json.Marshal(eff.Settings)
		r.Printf("Settings: %s\n", settings)
	}
	r.Println()

	var rows [][]string
	for _, name := range eff.Rules.Names() {
		level := eff.Rules[name]
		if !opts.All && level.Severity == flatconf.SeverityOff {
			continue
		}
		options := ""
		if len(level.Options) > 0 {
			b, _ := json.Marshal(level.Options)
			options = string(b)
		}
		rows = append(rows, []string{name, r.SeverityCell(level.Severity.String()), options})
	}
	r.Table([]string{"Rule", "Level", "Options"}, rows)

	if opts.ShowGlobals {
		r.Println()
		var globalRows [][]string
		for _, ident := range sortedKeys(eff.Globals) {
			globalRows = append(globalRows, []string{ident, eff.Globals[ident]})
		}
		r.Table([]string{"Global", "Mode"}, globalRows)
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
