// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/brainmark/extension-preflight/defaults"
	"github.com/brainmark/extension-preflight/logger"
	"github.com/brainmark/extension-preflight/preflight"
)

// PreflightResponse contains the data returned by the preflight API.
type PreflightResponse struct {
	Message   string               `json:"message,omitempty"`   // Message contains information about the response.
	Error     string               `json:"error,omitempty"`     // Error is set when the API request failed.
	Report    *preflight.Report    `json:"report,omitempty"`    // Report is the outcome of a preflight run.
	Checklist *preflight.Checklist `json:"checklist,omitempty"` // Checklist is the server's active checklist.
}

func writePreflightResponse(w http.ResponseWriter, status int, resp *PreflightResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// runRequest optionally overrides parts of the server configuration for a
// single run.
type runRequest struct {
	TargetDirectory string `json:",omitempty"`
	ChecklistPath   string `json:",omitempty"`
}

func (a *api) runPreflightHandler(w http.ResponseWriter, r *http.Request) {
	var data runRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		writePreflightResponse(w, http.StatusBadRequest, &PreflightResponse{
			Error: fmt.Sprintf("could not read request: %s", err),
		})
		return
	}

	cfg := *a.cfg
	if data.TargetDirectory != "" {
		cfg.TargetDirectory = data.TargetDirectory
	}
	if data.ChecklistPath != "" {
		cfg.ChecklistPath = data.ChecklistPath
	}
	if err := defaults.Validate(&cfg); err != nil {
		writePreflightResponse(w, http.StatusBadRequest, &PreflightResponse{
			Error: fmt.Sprintf("could not validate config: %s", err),
		})
		return
	}

	checklist, err := preflight.ReadChecklist(cfg.ChecklistPath)
	if err != nil {
		writePreflightResponse(w, http.StatusBadRequest, &PreflightResponse{
			Error: fmt.Sprintf("could not read checklist: %s", err),
		})
		return
	}

	runner, err := preflight.New(&cfg, checklist)
	if err != nil {
		writePreflightResponse(w, http.StatusBadRequest, &PreflightResponse{
			Error: fmt.Sprintf("could not create runner: %s", err),
		})
		return
	}

	report, err := runner.Run()
	if err != nil {
		writePreflightResponse(w, http.StatusBadRequest, &PreflightResponse{
			Error: fmt.Sprintf("preflight run failed: %s", err),
		})
		return
	}
	a.metrics.ObserveRun(report)

	if !report.Passed {
		logger.Warn("api: preflight run failed checks",
			logger.Int("missing", report.NumMissing))
		writePreflightResponse(w, http.StatusUnprocessableEntity, &PreflightResponse{
			Message: "preflight completed: some checks failed",
			Report:  report,
		})
		return
	}

	writePreflightResponse(w, http.StatusOK, &PreflightResponse{
		Message: "preflight completed: all checks passed",
		Report:  report,
	})
}

func (a *api) getChecklistHandler(w http.ResponseWriter, r *http.Request) {
	checklist, err := preflight.ReadChecklist(a.cfg.ChecklistPath)
	if err != nil {
		writePreflightResponse(w, http.StatusInternalServerError, &PreflightResponse{
			Error: fmt.Sprintf("could not read checklist: %s", err),
		})
		return
	}

	writePreflightResponse(w, http.StatusOK, &PreflightResponse{
		Checklist: checklist,
	})
}
