// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package preflight

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brainmark/extension-preflight/defaults"
)

// Entry is a single expected file, relative to the target directory.
type Entry struct {
	Path        string `json:"path" yaml:"path" toml:"path" validate:"notempty"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Group is a named set of expected files reported together.
type Group struct {
	Name    string  `json:"name" yaml:"name" toml:"name" validate:"notempty"`
	Entries []Entry `json:"entries" yaml:"entries" toml:"entries" validate:"notempty"`
}

// Checklist describes everything a preflight run verifies: the manifest
// file and the groups of files expected on disk.
type Checklist struct {
	// The extension's JSON metadata file, checked for syntactic validity.
	Manifest string  `json:"manifest" yaml:"manifest" toml:"manifest" default:"manifest.json" validate:"notempty"`
	Groups   []Group `json:"groups" yaml:"groups" toml:"groups"`
}

// IsValid reports whether the checklist can be run.
func (c *Checklist) IsValid() error {
	if len(c.Groups) == 0 {
		return ErrEmptyChecklist
	}
	return nil
}

// Len returns the total number of file checks, the manifest included.
func (c *Checklist) Len() int {
	n := 1
	for _, g := range c.Groups {
		n += len(g.Entries)
	}
	return n
}

// DefaultChecklist returns the built-in checklist for the side-panel
// extension layout.
func DefaultChecklist() *Checklist {
	return &Checklist{
		Manifest: "manifest.json",
		Groups: []Group{
			{
				Name: "HTML files",
				Entries: []Entry{
					{Path: "sidepanel.html", Description: "Side Panel"},
				},
			},
			{
				Name: "CSS files",
				Entries: []Entry{
					{Path: "styles/variables.css", Description: "Design tokens"},
					{Path: "styles/components.css", Description: "UI components"},
					{Path: "styles/animations.css", Description: "Animations"},
					{Path: "styles/sidepanel.css", Description: "Side Panel styles"},
				},
			},
			{
				Name: "JavaScript files",
				Entries: []Entry{
					{Path: "scripts/sidepanel.js", Description: "Side Panel logic"},
					{Path: "scripts/modal-manager.js", Description: "Modal manager"},
					{Path: "scripts/tab-manager.js", Description: "Tab manager"},
					{Path: "scripts/storage-manager.js", Description: "Storage manager"},
					{Path: "scripts/background.js", Description: "Background worker"},
					{Path: "scripts/content-intent-capture.js", Description: "Content script"},
				},
			},
			{
				Name: "icon files",
				Entries: []Entry{
					{Path: "assets/icons/icon16.png", Description: "16x16 icon"},
					{Path: "assets/icons/icon48.png", Description: "48x48 icon"},
					{Path: "assets/icons/icon192.png", Description: "128x128 icon"},
				},
			},
		},
	}
}

// ReadChecklist reads a checklist file from the given path. An empty path
// yields the built-in checklist.
func ReadChecklist(path string) (*Checklist, error) {
	if path == "" {
		return DefaultChecklist(), nil
	}

	var cl Checklist
	if err := defaults.ReadFrom(path, "", &cl); err != nil {
		return nil, err
	}
	if err := defaults.Validate(&cl); err != nil {
		return nil, fmt.Errorf("failed to validate checklist: %w", err)
	}

	return &cl, nil
}

// WriteSample writes the built-in checklist to the given path as indented
// JSON, to be edited and passed back with --checklist.
func WriteSample(path string) error {
	data, err := json.MarshalIndent(DefaultChecklist(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
