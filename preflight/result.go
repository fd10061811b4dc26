// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package preflight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wiggin77/merror"
)

// CheckStatus determines the outcome of a single file check.
type CheckStatus int

const (
	StatusOK CheckStatus = iota
	StatusMissing
)

// ErrUnknownStatus is returned when an unknown status variable is
// encoded/decoded.
var ErrUnknownStatus = errors.New("unknown check status")

// UnmarshalJSON constructs the status from a JSON string.
func (s *CheckStatus) UnmarshalJSON(b []byte) error {
	var res string
	if err := json.Unmarshal(b, &res); err != nil {
		return err
	}

	switch strings.ToLower(res) {
	default:
		return ErrUnknownStatus
	case "ok":
		*s = StatusOK
	case "missing":
		*s = StatusMissing
	}

	return nil
}

// MarshalJSON returns a JSON representation from a CheckStatus variable.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	var res string
	switch s {
	default:
		return nil, ErrUnknownStatus
	case StatusOK:
		res = "ok"
	case StatusMissing:
		res = "missing"
	}

	return json.Marshal(res)
}

// CheckResult holds the outcome of a single expected-file check.
type CheckResult struct {
	Group       string      `json:"group"`
	Description string      `json:"description"`
	Path        string      `json:"path"`
	SizeBytes   int64       `json:"size_bytes"`
	Status      CheckStatus `json:"status"`
}

// Report contains everything a preflight run found.
type Report struct {
	TargetDirectory string        `json:"target_directory"`
	StartTime       time.Time     `json:"start_time"`
	Duration        time.Duration `json:"duration"`
	Manifest        ManifestInfo  `json:"manifest"`
	Results         []CheckResult `json:"results"`
	NumChecked      int           `json:"num_checked"`
	NumMissing      int           `json:"num_missing"`
	Passed          bool          `json:"passed"`
}

// Err returns an aggregate of every failed check, or nil when the run
// passed.
func (r *Report) Err() error {
	merr := merror.New()
	if !r.Manifest.Valid {
		merr.Append(fmt.Errorf("manifest: %s", r.Manifest.Detail))
	}
	for _, res := range r.Results {
		if res.Status == StatusMissing {
			merr.Append(fmt.Errorf("missing %s", res.Path))
		}
	}
	return merr.ErrorOrNil()
}
