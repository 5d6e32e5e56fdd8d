package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/graalign/graalign/internal/graalconfig"
	"github.com/spf13/cobra"
)

// InitCommand represents the init command.
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command.
func NewInitCommand() *InitCommand {
	return &InitCommand{configPath: ".graalign.toml"}
}

// CreateCobraCommand builds the cobra command for configuration initialization.
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize graalign configuration file",
		Long: `Initialize a graalign configuration file in the current directory.

Creates a .graalign.toml file with commented default settings for the cost
model, search-space guards, signature provider, and output format.

Examples:
  # Create .graalign.toml in current directory
  graalign init

  # Create config file with custom name
  graalign init --config myconfig.toml

  # Overwrite existing configuration file
  graalign init --force`,
		RunE: i.run,
	}
	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", ".graalign.toml", "Configuration file path")
	return cmd
}

func (i *InitCommand) run(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !i.force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	configData, err := graalconfig.GenerateDefaultConfigTOML()
	if err != nil {
		return fmt.Errorf("generate default configuration: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configData), 0o644); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}

	relPath, err := filepath.Rel(".", configPath)
	if err != nil {
		relPath = configPath
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Edit %s and run 'graalign align' to use it.\n", relPath)
	return nil
}

// NewInitCmd creates and returns the init cobra command.
func NewInitCmd() *cobra.Command {
	return NewInitCommand().CreateCobraCommand()
}
