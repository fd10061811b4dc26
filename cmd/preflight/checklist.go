// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"fmt"

	"github.com/brainmark/extension-preflight/preflight"

	"github.com/spf13/cobra"
)

func RunChecklistSampleCmdF(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	if err := preflight.WriteSample(path); err != nil {
		return fmt.Errorf("failed to write sample checklist: %w", err)
	}
	fmt.Println("Sample checklist written to", path)
	return nil
}

func MakeChecklistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Utilities for checklist files",
	}

	sampleCmd := &cobra.Command{
		Use:     "sample",
		Short:   "Write the built-in checklist to a file",
		Long:    "Writes the built-in checklist as JSON, to be edited and passed back with --checklist.",
		Example: "preflight checklist sample -o checklist.json",
		RunE:    RunChecklistSampleCmdF,
	}
	sampleCmd.Flags().StringP("output", "o", "checklist.sample.json", "file to write")
	cmd.AddCommand(sampleCmd)

	return cmd
}
