// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brainmark/extension-preflight/logger"
)

// Runner executes a checklist against a target directory.
type Runner struct {
	cfg       *Config
	checklist *Checklist
}

// New creates and initializes a new Runner with given configuration and
// checklist. A nil checklist selects the built-in one.
func New(cfg *Config, checklist *Checklist) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("cfg should not be nil")
	}
	if checklist == nil {
		checklist = DefaultChecklist()
	}
	if err := checklist.IsValid(); err != nil {
		return nil, err
	}

	return &Runner{
		cfg:       cfg,
		checklist: checklist,
	}, nil
}

// Run executes every check once and returns the report. Individual check
// failures degrade the report, they do not produce an error; only an
// unusable target directory does.
func (r *Runner) Run() (*Report, error) {
	start := time.Now()
	target := r.cfg.TargetDirectory

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTargetNotFound, target)
	}

	logger.Info("preflight: run started",
		logger.String("target", target),
		logger.Int("checks", r.checklist.Len()),
	)

	report := &Report{
		TargetDirectory: target,
		StartTime:       start,
	}

	report.Manifest = ReadManifest(filepath.Join(target, r.checklist.Manifest))
	report.NumChecked++
	if !report.Manifest.Valid {
		logger.Warn("preflight: manifest check failed",
			logger.String("detail", report.Manifest.Detail))
	}

	for _, group := range r.checklist.Groups {
		for _, entry := range group.Entries {
			report.Results = append(report.Results, r.checkEntry(group.Name, entry))
			report.NumChecked++
		}
	}

	for _, res := range report.Results {
		if res.Status == StatusMissing {
			report.NumMissing++
		}
	}
	report.Passed = report.Manifest.Valid && report.NumMissing == 0
	report.Duration = time.Since(start)

	logger.Info("preflight: run finished",
		logger.Bool("passed", report.Passed),
		logger.Int("missing", report.NumMissing),
	)

	return report, nil
}

func (r *Runner) checkEntry(group string, entry Entry) CheckResult {
	res := CheckResult{
		Group:       group,
		Description: entry.Description,
		Path:        entry.Path,
	}

	info, err := os.Stat(filepath.Join(r.cfg.TargetDirectory, entry.Path))
	if err != nil {
		res.Status = StatusMissing
		logger.Debug("preflight: file missing", logger.String("path", entry.Path))
		return res
	}

	res.Status = StatusOK
	res.SizeBytes = info.Size()
	return res
}
