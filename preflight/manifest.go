// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package preflight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/blang/semver"
)

// FieldNone is displayed for manifest fields that are absent. Field
// absence is informational only and never fails a run.
const FieldNone = "None"

// ManifestInfo summarizes the manifest check: whether the file parsed as
// JSON and the three fields surfaced for display.
type ManifestInfo struct {
	Path            string `json:"path"`
	Valid           bool   `json:"valid"`
	Name            string `json:"name,omitempty"`
	Version         string `json:"version,omitempty"`
	ManifestVersion string `json:"manifest_version,omitempty"`
	// Advisory only: set when the version field is present but does not
	// parse as a semantic version.
	VersionWarning string `json:"version_warning,omitempty"`
	// Fully formatted failure line when Valid is false.
	Detail string `json:"detail,omitempty"`
}

// ReadManifest reads and parses the manifest at the given path. Read
// errors and JSON syntax errors are reported through Detail rather than
// returned, they degrade the run instead of aborting it.
func ReadManifest(path string) ManifestInfo {
	info := ManifestInfo{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		info.Detail = fmt.Sprintf("Error reading %s: %s", path, err)
		return info
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		info.Detail = fmt.Sprintf("Invalid JSON in %s: %s", path, err)
		return info
	}

	info.Valid = true
	info.Name = displayField(raw, "name")
	info.Version = displayField(raw, "version")
	info.ManifestVersion = displayField(raw, "manifest_version")

	if info.Version != FieldNone {
		if _, err := semver.Parse(info.Version); err != nil {
			info.VersionWarning = fmt.Sprintf("version %q is not a semantic version", info.Version)
		}
	}

	return info
}

func displayField(raw map[string]any, key string) string {
	val, ok := raw[key]
	if !ok || val == nil {
		return FieldNone
	}
	switch v := val.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
