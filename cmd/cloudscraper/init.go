package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/cloudscraper/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/cloudscraper.yaml
var configTemplate embed.FS

const configTemplatePath = "templates/cloudscraper.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a CloudScraper settings file",
		Long: `Init writes a commented .cloudscraper settings file to the current directory.

Examples:
  # Create .cloudscraper in the current directory
  cloudscraper init

  # Write the settings to the XDG config directory
  cloudscraper init -o ~/.config/cloudscraper/config.yaml

  # Overwrite an existing file
  cloudscraper init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the settings file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing settings file")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("settings file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read settings template: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created settings file: %s\n", outputPath)
	return nil
}
