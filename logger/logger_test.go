// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFileTarget(t *testing.T) {
	location := filepath.Join(t.TempDir(), "preflight.log")
	lgr, err := New(&Settings{
		EnableConsole: false,
		EnableFile:    true,
		FileJson:      true,
		FileLevel:     "INFO",
		FileLocation:  location,
	})
	require.NoError(t, err)

	lgr.NewLogger().Info("file target check")
	require.NoError(t, lgr.Shutdown())

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	require.Contains(t, string(data), "file target check")
}

func TestNewConsoleOnly(t *testing.T) {
	lgr, err := New(&Settings{
		EnableConsole: true,
		ConsoleLevel:  "DEBUG",
	})
	require.NoError(t, err)
	require.NoError(t, lgr.Shutdown())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "trace", parseLevel("TRACE").Name)
	require.Equal(t, "debug", parseLevel("debug").Name)
	require.Equal(t, "warn", parseLevel("WARN").Name)
	require.Equal(t, "error", parseLevel("ERROR").Name)
	// Unknown levels fall back to info.
	require.Equal(t, "info", parseLevel("VERBOSE").Name)
}
