// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"net/http"

	"github.com/brainmark/extension-preflight/api"
	"github.com/brainmark/extension-preflight/logger"
	"github.com/brainmark/extension-preflight/performance"

	"github.com/spf13/cobra"
)

func RunServeCmdF(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Shutdown()

	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.APISettings.ListenAddress = listen
	}

	logger.Info("API server started",
		logger.String("listen", cfg.APISettings.ListenAddress))
	return http.ListenAndServe(cfg.APISettings.ListenAddress, api.SetupAPIRouter(cfg, performance.NewMetrics()))
}

func MakeServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preflight API server",
		RunE:  RunServeCmdF,
	}
	cmd.Flags().StringP("listen", "l", "", "address to listen on (overrides config)")
	cmd.Flags().StringP("target", "t", "", "directory containing the extension (overrides config)")
	cmd.Flags().String("checklist", "", "path to a checklist file (overrides config)")
	return cmd
}
