// Package config provides configuration management for the flatlint CLI.
//
// Tool configuration is distinct from the lint configuration document the
// tool operates on: flatlint.yaml configures the tool itself (which lint
// config to load, output format, check filters), while lint.config.yaml
// is the flat configuration the pkg/flatconf loader consumes.
package config

// Config holds all CLI configuration options.
type Config struct {
	LintConfig   string      `koanf:"lint_config"` // path to the lint configuration document
	OutputFormat string      `koanf:"output"`
	Verbose      bool        `koanf:"verbose"`
	Check        CheckConfig `koanf:"check"`

	// ProjectRoot is inferred at load time and not read from the file.
	ProjectRoot string `koanf:"-"`
}

// CheckConfig holds path filters and concurrency settings for the check
// command.
type CheckConfig struct {
	Include    []string `koanf:"include"`    // glob patterns of paths to check
	Exclude    []string `koanf:"exclude"`    // glob patterns of paths to skip
	Extensions []string `koanf:"extensions"` // file extensions considered source files
	Workers    int      `koanf:"workers"`    // parallel resolvers; 0 means GOMAXPROCS
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultExtensions are the source file extensions check considers.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// LintConfigCandidates are the lint config file names searched, in order,
// when no explicit path is configured.
var LintConfigCandidates = []string{"lint.config.yaml", "lint.config.yml", "lint.config.json"}
