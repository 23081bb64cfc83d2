package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlint-labs/flatlint/internal/cli/config"
	"github.com/flatlint-labs/flatlint/internal/cli/output"
	"github.com/flatlint-labs/flatlint/internal/testutil"
	"github.com/flatlint-labs/flatlint/pkg/flatconf"
	_ "github.com/flatlint-labs/flatlint/pkg/plugins/all" // register built-in plugins
)

func newTestContext(t *testing.T, doc *flatconf.Config) (*CommandContext, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return &CommandContext{
		Cfg:      &config.Config{OutputFormat: config.DefaultOutput, LintConfig: "lint.config.yaml"},
		Renderer: output.NewRenderer(out, errOut, output.ModeMarkdown),
		Logger:   testutil.NewTestLogger(t),
		Doc:      doc,
	}, out, errOut
}

func TestCollectSourceFiles(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"src/App.jsx",
		"src/util.js",
		"src/styles.css",
		"node_modules/pkg/index.js",
		"dist/bundle.js",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	}

	paths, err := collectSourceFiles(root, nil, []string{"node_modules/**", "dist/**"}, []string{".js", ".jsx"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/App.jsx", "src/util.js"}, paths)
}

func TestCollectSourceFilesInclude(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"src/a.js", "tools/b.js"} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	}

	paths, err := collectSourceFiles(root, []string{"src/**"}, nil, []string{".js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js"}, paths)
}

func TestSummarizeBlock(t *testing.T) {
	react, ok := flatconf.LookupPlugin("react")
	require.True(t, ok)
	js, ok := flatconf.LookupPlugin("js")
	require.True(t, ok)

	block := flatconf.ConfigBlock{
		Name:    "app",
		Files:   []string{"**/*.jsx"},
		Plugins: map[string]*flatconf.Plugin{"react": react, "js": js},
		Extends: []flatconf.ExtensionRef{flatconf.Named("react/recommended")},
		Rules:   flatconf.RuleSet{"react/jsx-key": flatconf.Level(flatconf.SeverityWarn)},
	}

	s := summarizeBlock(3, block)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, "app", s.Name)
	assert.Equal(t, []string{"js", "react"}, s.Plugins)
	assert.Equal(t, []string{"react/recommended"}, s.Extends)
	assert.Equal(t, 1, s.Rules)
}

func TestCollectRulesFilters(t *testing.T) {
	all := collectRules(&RulesOptions{})
	require.NotEmpty(t, all)

	reactOnly := collectRules(&RulesOptions{Plugin: "react"})
	require.NotEmpty(t, reactOnly)
	for _, l := range reactOnly {
		assert.Equal(t, "react", l.Plugin)
	}
	assert.Less(t, len(reactOnly), len(all))

	recommended := collectRules(&RulesOptions{Recommended: true})
	for _, l := range recommended {
		assert.True(t, l.Recommended)
	}
	assert.Less(t, len(recommended), len(all))
}

func TestReportIssuesClean(t *testing.T) {
	cc, out, _ := newTestContext(t, &flatconf.Config{Blocks: []flatconf.ConfigBlock{
		{Files: []string{"**/*.js"}},
	}})

	err := reportIssues(cc, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no issues")
}

func TestReportIssuesFailure(t *testing.T) {
	cc, out, _ := newTestContext(t, &flatconf.Config{Blocks: []flatconf.ConfigBlock{{}}})

	issues := cc.Doc.Validate()
	require.NotEmpty(t, issues)
	err := reportIssues(cc, issues)
	require.Error(t, err)
	assert.Contains(t, out.String(), "files")
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("node_modules/pkg/index.js", []string{"node_modules/**"}))
	assert.False(t, matchesAny("src/App.jsx", []string{"node_modules/**", "dist/**"}))
	assert.False(t, matchesAny("src/App.jsx", nil))
}
