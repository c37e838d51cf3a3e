// Package cmd implements the cspend CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cspend/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if budget := budgetInput(cfg); budget != "" {
		fmt.Printf("    Default budget: %s\n", budget)
	} else {
		fmt.Println("    Default budget: ask at startup")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", themeName(cfg))
	fmt.Println()

	fmt.Println("  [Export]")
	if path := exportPath(cfg); path != "" {
		fmt.Printf("    Archive: %s\n", path)
	} else {
		fmt.Println("    Archive: disabled")
	}
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", logLevel(cfg))
	if cfg.Log.File != "" || flagLogFile != "" {
		file := flagLogFile
		if file == "" {
			file = cfg.Log.File
		}
		fmt.Printf("    File:  %s\n", file)
	}
	fmt.Println()

	fmt.Println("  Run `cspend setup` to reconfigure.")
	return nil
}
