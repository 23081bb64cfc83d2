// Package commands implements the flatlint subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/flatlint-labs/flatlint/internal/cli/config"
	"github.com/flatlint-labs/flatlint/internal/cli/output"
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

// ConfigKey is the context key under which the root command stores the
// loaded tool configuration.
type ConfigKey struct{}

// RendererKey is the context key under which the root command stores the
// renderer.
type RendererKey struct{}

// CommandContext carries the shared state a command needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
	Doc      *flatconf.Config // loaded lint configuration document, nil when not required
}

// NewCommandContext builds the command context and loads the lint
// configuration document. Commands that operate on the document use this.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cc := NewCommandContextWithoutDoc(cmd)

	if err := cc.Cfg.RequireLintConfig(); err != nil {
		return nil, err
	}
	doc, err := flatconf.LoadFile(cc.Cfg.LintConfig)
	if err != nil {
		return nil, err
	}
	cc.Logger.Debug("loaded lint configuration", "path", cc.Cfg.LintConfig, "blocks", len(doc.Blocks))
	cc.Doc = doc
	return cc, nil
}

// NewCommandContextWithoutDoc builds the command context without loading
// the lint configuration document.
func NewCommandContextWithoutDoc(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()

	cc := &CommandContext{
		Logger: config.GetLogger(ctx),
	}
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		cc.Cfg = c
	} else {
		cc.Cfg = &config.Config{OutputFormat: config.DefaultOutput}
	}
	if r, ok := ctx.Value(RendererKey{}).(*output.Renderer); ok {
		cc.Renderer = r
	} else {
		cc.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
	}
	return cc
}

// overrideRenderer replaces the renderer when a command-level --format
// flag is set.
func (cc *CommandContext) overrideRenderer(cmd *cobra.Command, format string) {
	if format != "" {
		cc.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}
}
