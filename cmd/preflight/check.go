// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"fmt"
	"os"

	"github.com/brainmark/extension-preflight/logger"
	"github.com/brainmark/extension-preflight/preflight"
	"github.com/brainmark/extension-preflight/preflight/output"

	"github.com/spf13/cobra"
)

func RunCheckCmdF(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Shutdown()

	checklist, err := preflight.ReadChecklist(cfg.ChecklistPath)
	if err != nil {
		return fmt.Errorf("failed to read checklist: %w", err)
	}

	runner, err := preflight.New(cfg, checklist)
	if err != nil {
		return err
	}

	report, err := runner.Run()
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := output.WriteJSON(os.Stdout, report); err != nil {
			return err
		}
	} else {
		output.Write(os.Stdout, report)
	}

	if !report.Passed {
		failed := report.NumMissing
		if !report.Manifest.Valid {
			failed++
		}
		return fmt.Errorf("%d of %d checks failed", failed, report.NumChecked)
	}

	return nil
}

func MakeCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the preflight checks once",
		RunE:  RunCheckCmdF,
	}
	cmd.Flags().StringP("target", "t", "", "directory containing the extension (overrides config)")
	cmd.Flags().String("checklist", "", "path to a checklist file (overrides config)")
	cmd.Flags().Bool("json", false, "emit the report as JSON instead of text")
	return cmd
}
