// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"fmt"
	"os"

	"github.com/brainmark/extension-preflight/defaults"
	"github.com/brainmark/extension-preflight/logger"
	"github.com/brainmark/extension-preflight/preflight"
	"github.com/brainmark/extension-preflight/version"

	"github.com/spf13/cobra"
)

// getConfig reads the configuration, applies command-line overrides and
// initializes logging.
func getConfig(cmd *cobra.Command) (*preflight.Config, error) {
	configFilePath, _ := cmd.Flags().GetString("config")
	cfg, err := preflight.ReadConfig(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if target, _ := cmd.Flags().GetString("target"); target != "" {
		cfg.TargetDirectory = target
	}
	if checklist, _ := cmd.Flags().GetString("checklist"); checklist != "" {
		cfg.ChecklistPath = checklist
	}

	if err := defaults.Validate(cfg); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	if err := logger.Init(&cfg.LogSettings); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "preflight",
		SilenceUsage: true,
		Short:        "Validate a browser extension's files before loading it",
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the configuration file to use")

	commands := []*cobra.Command{
		MakeCheckCommand(),
		MakeWatchCommand(),
		MakeServeCommand(),
		MakeChecklistCommand(),
		{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(version.GetInfo())
			},
		},
	}
	rootCmd.AddCommand(commands...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
