// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brainmark/extension-preflight/logger"
	"github.com/brainmark/extension-preflight/preflight"
	"github.com/brainmark/extension-preflight/preflight/output"
	"github.com/brainmark/extension-preflight/watcher"

	"github.com/spf13/cobra"
)

func RunWatchCmdF(cmd *cobra.Command, args []string) error {
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

	runOnce := func() {
		report, err := runner.Run()
		if err != nil {
			logger.Error("watch: run failed", logger.Err(err))
			return
		}
		output.Write(os.Stdout, report)
	}
	runOnce()

	debounce := time.Duration(cfg.WatchSettings.DebounceMilliseconds) * time.Millisecond
	w, err := watcher.New(cfg.TargetDirectory, debounce, runOnce)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func MakeWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the preflight checks whenever the extension changes",
		RunE:  RunWatchCmdF,
	}
	cmd.Flags().StringP("target", "t", "", "directory containing the extension (overrides config)")
	cmd.Flags().String("checklist", "", "path to a checklist file (overrides config)")
	return cmd
}
