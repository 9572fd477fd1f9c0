package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for CloudScraper.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloudscraper",
		Short: "Find cloud resources referenced by a website",
		Long: `CloudScraper is a tool to search through the source code of websites
in order to find cloud resources belonging to a target.

It spiders the target breadth-first, staying on the target's host, and
reports every discovered link that contains a cloud storage domain.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and print network errors")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
