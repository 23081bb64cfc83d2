package config

import "fmt"

// validOutputs are the accepted output format values.
var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (expected auto, text, markdown or json)", c.OutputFormat)
	}
	if c.Check.Workers < 0 {
		return fmt.Errorf("check.workers must not be negative")
	}
	return nil
}

// RequireLintConfig returns an error when no lint configuration document
// was found. Commands that operate on the document call this; commands
// like rules and version do not.
func (c *Config) RequireLintConfig() error {
	if c.LintConfig == "" {
		return fmt.Errorf("no lint configuration found\nHint: Create lint.config.yaml (flatlint init) or set lint_config in flatlint.yaml")
	}
	return nil
}
