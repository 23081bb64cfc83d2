package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/flatlint-labs/flatlint/internal/cli/output"
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format  string // Output format
	Verbose bool   // List covered files, not just uncovered ones
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check that every source file is covered by a block",
		Long: `Walk a source tree and resolve every matching file against the
configuration. Files matched by no block receive no rule enforcement at
all, which is almost always a configuration gap rather than intent.

The set of files considered is controlled by check.include,
check.exclude and check.extensions in the tool configuration.`,
		Example: `  # Check the project tree
  flatlint check

  # Check a subtree
  flatlint check src/

  # Also list covered files with their rule counts
  flatlint check --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runCheck(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Verbose, "list", false, "List covered files with rule counts")
	return cmd
}

// fileCoverage is the per-file result of a coverage check.
type fileCoverage struct {
	Path    string `json:"path"`
	Covered bool   `json:"covered"`
	Blocks  int    `json:"blocks"`
	Rules   int    `json:"rules"`
}

// checkReport is the JSON shape of the check command output.
type checkReport struct {
	Scanned   int            `json:"scanned"`
	Uncovered []fileCoverage `json:"uncovered"`
	Files     []fileCoverage `json:"files,omitempty"`
}

func runCheck(cmd *cobra.Command, root string, opts *CheckOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cc.overrideRenderer(cmd, opts.Format)
	r := cc.Renderer

	paths, err := collectSourceFiles(root, cc.Cfg.Check.Include, cc.Cfg.Check.Exclude, cc.Cfg.Check.Extensions)
	if err != nil {
		return err
	}
	cc.Logger.Debug("collected source files", "root", root, "count", len(paths))

	workers := cc.Cfg.Check.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var mu sync.Mutex
	results := make([]fileCoverage, 0, len(paths))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			eff, err := cc.Doc.Resolve(path)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}
			cov := fileCoverage{
				Path:    path,
				Covered: len(eff.Blocks) > 0,
				Blocks:  len(eff.Blocks),
				Rules:   len(eff.EnabledRules()),
			}
			mu.Lock()
			results = append(results, cov)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	report := checkReport{Scanned: len(results), Uncovered: []fileCoverage{}}
	for _, cov := range results {
		if !cov.Covered {
			report.Uncovered = append(report.Uncovered, cov)
		}
	}
	if opts.Verbose {
		report.Files = results
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(report); err != nil {
			return err
		}
	} else {
		if opts.Verbose {
			rows := make([][]string, 0, len(results))
			for _, cov := range results {
				status := r.SeverityCell("error")
				if cov.Covered {
					status = "covered"
				}
				rows = append(rows, []string{cov.Path, status, strconv.Itoa(cov.Blocks), strconv.Itoa(cov.Rules)})
			}
			r.Table([]string{"File", "Status", "Blocks", "Rules"}, rows)
			r.Println()
		}
		if len(report.Uncovered) == 0 {
			r.Success(fmt.Sprintf("%d files scanned, all covered", report.Scanned))
		} else {
			for _, cov := range report.Uncovered {
				r.Error(fmt.Sprintf("%s is matched by no configuration block", cov.Path))
			}
		}
	}

	if len(report.Uncovered) > 0 {
		return fmt.Errorf("%d of %d files not covered by any block", len(report.Uncovered), report.Scanned)
	}
	return nil
}

// collectSourceFiles walks root and returns the files selected by the
// include/exclude patterns and extension list, as slash-separated paths
// relative to root.
func collectSourceFiles(root string, include, exclude, extensions []string) ([]string, error) {
	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.TrimPrefix(ext, ".")] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && matchesAny(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if len(extSet) > 0 {
			ext := strings.TrimPrefix(filepath.Ext(rel), ".")
			if !extSet[ext] {
				return nil
			}
		}
		if len(include) > 0 && !matchesAny(rel, include) {
			return nil
		}
		if matchesAny(rel, exclude) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if flatconf.MatchPattern(pattern, path) {
			return true
		}
	}
	return false
}
