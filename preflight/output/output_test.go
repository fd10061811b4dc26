// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/brainmark/extension-preflight/preflight"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func passingReport() *preflight.Report {
	return &preflight.Report{
		TargetDirectory: "/ext",
		StartTime:       time.Now(),
		Manifest: preflight.ManifestInfo{
			Path:            "/ext/manifest.json",
			Valid:           true,
			Name:            "Tab Memory Assistant",
			Version:         "1.2.0",
			ManifestVersion: "3",
		},
		Results: []preflight.CheckResult{
			{Group: "HTML files", Description: "Side Panel", Path: "sidepanel.html", SizeBytes: 120, Status: preflight.StatusOK},
			{Group: "icon files", Description: "16x16 icon", Path: "assets/icons/icon16.png", SizeBytes: 300, Status: preflight.StatusOK},
		},
		NumChecked: 3,
		Passed:     true,
	}
}

func TestWritePassing(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, passingReport())
	out := buf.String()

	require.Contains(t, out, "EXTENSION PREFLIGHT - VALIDATION CHECK")
	require.Contains(t, out, "1. Checking manifest.json...")
	require.Contains(t, out, "[OK] Valid JSON: /ext/manifest.json")
	require.Contains(t, out, "Name: Tab Memory Assistant")
	require.Contains(t, out, "Version: 1.2.0")
	require.Contains(t, out, "Manifest Version: 3")
	require.Contains(t, out, "2. Checking HTML files...")
	require.Contains(t, out, "[OK] Side Panel: sidepanel.html (120 bytes)")
	require.Contains(t, out, "3. Checking icon files...")
	require.Contains(t, out, "ALL CHECKS PASSED")
	require.Contains(t, out, "Select this folder: /ext")
	require.NotContains(t, out, "[FAIL]")
}

func TestWriteMissingFile(t *testing.T) {
	report := passingReport()
	report.Results[1].Status = preflight.StatusMissing
	report.Results[1].SizeBytes = 0
	report.NumMissing = 1
	report.Passed = false

	var buf bytes.Buffer
	Write(&buf, report)
	out := buf.String()

	require.Contains(t, out, "[FAIL] 16x16 icon: assets/icons/icon16.png - MISSING!")
	require.Contains(t, out, "SOME CHECKS FAILED")
	require.NotContains(t, out, "ALL CHECKS PASSED")
}

func TestWriteInvalidManifest(t *testing.T) {
	report := passingReport()
	report.Manifest = preflight.ManifestInfo{
		Path:   "/ext/manifest.json",
		Valid:  false,
		Detail: "Invalid JSON in /ext/manifest.json: unexpected end of JSON input",
	}
	report.Passed = false

	var buf bytes.Buffer
	Write(&buf, report)
	out := buf.String()

	require.Contains(t, out, "[FAIL] Invalid JSON in /ext/manifest.json")
	require.Contains(t, out, "SOME CHECKS FAILED")
	require.NotContains(t, out, "Name:")
}

func TestWriteFieldNone(t *testing.T) {
	report := passingReport()
	report.Manifest.Name = preflight.FieldNone
	report.Manifest.Version = preflight.FieldNone
	report.Manifest.ManifestVersion = preflight.FieldNone

	var buf bytes.Buffer
	Write(&buf, report)
	out := buf.String()

	require.Contains(t, out, "Name: None")
	require.Contains(t, out, "Version: None")
	// Absent fields don't fail the run.
	require.Contains(t, out, "ALL CHECKS PASSED")
}

func TestWriteVersionWarning(t *testing.T) {
	report := passingReport()
	report.Manifest.Version = "1.0"
	report.Manifest.VersionWarning = `version "1.0" is not a semantic version`

	var buf bytes.Buffer
	Write(&buf, report)
	out := buf.String()

	require.Contains(t, out, "[WARN]")
	require.Contains(t, out, "ALL CHECKS PASSED")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, passingReport()))

	var decoded preflight.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.True(t, decoded.Passed)
	require.Len(t, decoded.Results, 2)
	require.Equal(t, preflight.StatusOK, decoded.Results[0].Status)
}
