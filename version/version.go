// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// VersionInfo contains version information about the binary
type VersionInfo struct {
	Commit    string    `json:"commit"`
	BuildTime time.Time `json:"build_time"`
	Modified  bool      `json:"modified"`
	GoVersion string    `json:"go_version"`
}

// GetInfo retrieves version information from the binary
func GetInfo() VersionInfo {
	info := VersionInfo{
		Commit:    "unknown",
		GoVersion: "unknown",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if setting.Value != "" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			// vcs.time is always in RFC3339 format
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				info.BuildTime = t
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// String returns a formatted string with version information
func (v VersionInfo) String() string {
	buildTimeStr := "unknown"
	if !v.BuildTime.IsZero() {
		buildTimeStr = v.BuildTime.Format("2006-01-02 15:04:05")
	}

	modifiedStr := ""
	if v.Modified {
		modifiedStr = " (modified)"
	}

	return fmt.Sprintf("Commit: %s%s\nBuild Time: %s\nGo Version: %s", v.Commit, modifiedStr, buildTimeStr, v.GoVersion)
}
