package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/flatlint-labs/flatlint/internal/cli/output"
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

// debounceInterval coalesces bursts of filesystem events for one file
// save into a single re-validation.
const debounceInterval = 200 * time.Millisecond

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var format string
	var watch bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration-shape invariants",
		Long: `Validate the lint configuration document.

Checked per block: the files matcher set is non-empty and every pattern
is a syntactically valid glob; every extends entry, plugin binding and
globals preset resolves; every rule override corresponds to a rule
provided by one of the block's plugins; plugin settings pass the owning
plugin's checks.

Unresolvable symbolic references fail already at load time; validate
reports the remaining shape issues without stopping at the first.`,
		Example: `  # Validate once
  flatlint validate

  # Re-validate whenever the config file changes
  flatlint validate --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return runValidateWatch(cmd, format)
			}
			return runValidate(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-validate on config file changes")
	return cmd
}

func runValidate(cmd *cobra.Command, format string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cc.overrideRenderer(cmd, format)
	return reportIssues(cc, cc.Doc.Validate())
}

func reportIssues(cc *CommandContext, issues []flatconf.Issue) error {
	r := cc.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		if issues == nil {
			issues = []flatconf.Issue{}
		}
		if err := r.JSON(issues); err != nil {
			return err
		}
	} else if len(issues) == 0 {
		r.Success(fmt.Sprintf("%s: %d blocks, no issues", cc.Cfg.LintConfig, len(cc.Doc.Blocks)))
	} else {
		rows := make([][]string, 0, len(issues))
		for _, issue := range issues {
			rows = append(rows, []string{strconv.Itoa(issue.Block), issue.Field, issue.Message})
		}
		r.Table([]string{"Block", "Field", "Issue"}, rows)
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d configuration issues found", len(issues))
	}
	return nil
}

// runValidateWatch validates, then re-validates whenever the config file
// changes, until interrupted.
func runValidateWatch(cmd *cobra.Command, format string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cc.overrideRenderer(cmd, format)
	r := cc.Renderer
	logger := cc.Logger

	// Initial pass; in watch mode issues are reported, not fatal.
	if err := reportIssues(cc, cc.Doc.Validate()); err != nil {
		r.Error(err.Error())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors replace files on
	// save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(cc.Cfg.LintConfig)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.Dim(fmt.Sprintf("Watching %s (Ctrl-C to stop)", cc.Cfg.LintConfig))

	var debounce *time.Timer
	revalidate := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(cc.Cfg.LintConfig) {
				continue
			}
			logger.Debug("config changed", "event", event.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, func() {
				select {
				case revalidate <- struct{}{}:
				default:
				}
			})
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", watchErr)
		case <-revalidate:
			doc, err := flatconf.LoadFile(cc.Cfg.LintConfig)
			if err != nil {
				r.Error(err.Error())
				continue
			}
			cc.Doc = doc
			if err := reportIssues(cc, doc.Validate()); err != nil {
				r.Error(err.Error())
			}
		}
	}
}
