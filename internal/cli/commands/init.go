package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a flatlint project",
		Long: `Initialize a project with a starter configuration.

This creates:
  - lint.config.yaml with an app block (js + react recommended) and a
    test block (vitest recommended), all referenced symbolically
  - flatlint.yaml pointing the tool at it`,
		Example: `  # Initialize in the current directory
  flatlint init

  # Initialize a new directory
  flatlint init my-project

  # Overwrite existing files
  flatlint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cc := NewCommandContextWithoutDoc(cmd)
			return runInit(cc, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	return cmd
}

func runInit(cc *CommandContext, dir string, force bool) error {
	r := cc.Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "lint.config.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("lint.config.yaml already exists. Use --force to overwrite")
	}

	if err := copyTemplate("starter", dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	files, _ := listTemplateFiles("starter")
	for _, f := range files {
		r.Success(f)
	}

	r.Println()
	r.Success("flatlint project initialized!")
	r.Println()
	r.Println("Next steps:")
	r.Println("  1. Adjust the blocks in lint.config.yaml")
	r.Println("  2. Run 'flatlint validate' to check the configuration")
	r.Println("  3. Run 'flatlint resolve <file>' to inspect the effective rules")

	return nil
}
