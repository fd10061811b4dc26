// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package output renders preflight reports for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/brainmark/extension-preflight/preflight"

	"github.com/fatih/color"
)

var (
	okTag      = color.New(color.FgGreen).SprintFunc()
	failTag    = color.New(color.FgRed).SprintFunc()
	warnTag    = color.New(color.FgYellow).SprintFunc()
	successTag = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorTag   = color.New(color.FgRed, color.Bold).SprintFunc()
)

const bannerWidth = 60

func banner(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

// Write renders the report as the line-oriented text the CLI prints.
func Write(w io.Writer, report *preflight.Report) {
	banner(w)
	fmt.Fprintln(w, "EXTENSION PREFLIGHT - VALIDATION CHECK")
	banner(w)
	fmt.Fprintln(w)

	section := 1
	fmt.Fprintf(w, "%d. Checking %s...\n", section, filepath.Base(report.Manifest.Path))
	writeManifest(w, report.Manifest)
	fmt.Fprintln(w)

	group := ""
	for _, res := range report.Results {
		if res.Group != group {
			if group != "" {
				fmt.Fprintln(w)
			}
			group = res.Group
			section++
			fmt.Fprintf(w, "%d. Checking %s...\n", section, group)
		}
		writeResult(w, res)
	}
	if group != "" {
		fmt.Fprintln(w)
	}

	banner(w)
	if report.Passed {
		fmt.Fprintf(w, "%s ALL CHECKS PASSED!\n", successTag("[SUCCESS]"))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Your extension is ready to load in the browser!")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Next steps:")
		fmt.Fprintln(w, "1. Open your browser's extensions page")
		fmt.Fprintln(w, "2. Enable 'Developer mode'")
		fmt.Fprintln(w, "3. Click 'Load unpacked'")
		fmt.Fprintln(w, "4. Select this folder:", report.TargetDirectory)
	} else {
		fmt.Fprintf(w, "%s SOME CHECKS FAILED!\n", errorTag("[ERROR]"))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Please fix the issues above before loading the extension.")
	}
	banner(w)
}

func writeManifest(w io.Writer, info preflight.ManifestInfo) {
	if !info.Valid {
		fmt.Fprintf(w, "%s %s\n", failTag("[FAIL]"), info.Detail)
		return
	}

	fmt.Fprintf(w, "%s Valid JSON: %s\n", okTag("[OK]"), info.Path)
	fmt.Fprintf(w, "   Name: %s\n", info.Name)
	fmt.Fprintf(w, "   Version: %s\n", info.Version)
	fmt.Fprintf(w, "   Manifest Version: %s\n", info.ManifestVersion)
	if info.VersionWarning != "" {
		fmt.Fprintf(w, "   %s %s\n", warnTag("[WARN]"), info.VersionWarning)
	}
}

func writeResult(w io.Writer, res preflight.CheckResult) {
	if res.Status == preflight.StatusOK {
		fmt.Fprintf(w, "%s %s: %s (%d bytes)\n", okTag("[OK]"), res.Description, res.Path, res.SizeBytes)
		return
	}
	fmt.Fprintf(w, "%s %s: %s - MISSING!\n", failTag("[FAIL]"), res.Description, res.Path)
}

// WriteJSON renders the report as indented JSON for machine consumption.
func WriteJSON(w io.Writer, report *preflight.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
