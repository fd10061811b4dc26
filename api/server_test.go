// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/brainmark/extension-preflight/performance"
	"github.com/brainmark/extension-preflight/preflight"
	"github.com/brainmark/extension-preflight/testdata"

	"github.com/gavv/httpexpect"
	"github.com/stretchr/testify/require"
)

// scaffoldExtension creates a directory holding every file the built-in
// checklist expects.
func scaffoldExtension(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	checklist := preflight.DefaultChecklist()
	writeFile(t, dir, checklist.Manifest, testdata.MustAsset("manifest.json"))
	for _, group := range checklist.Groups {
		for _, entry := range group.Entries {
			writeFile(t, dir, entry.Path, []byte("content"))
		}
	}

	return dir
}

func writeFile(t *testing.T, dir, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func newServer(t *testing.T, cfg *preflight.Config) *httptest.Server {
	t.Helper()
	handler := SetupAPIRouter(cfg, performance.NewMetrics())
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestAPI(t *testing.T) {
	dir := scaffoldExtension(t)
	cfg, err := preflight.ReadConfig("")
	require.NoError(t, err)
	cfg.TargetDirectory = dir

	server := newServer(t, cfg)
	e := httpexpect.New(t, server.URL+"/preflight")

	// all files present
	obj := e.POST("/run").
		Expect().
		Status(http.StatusOK).JSON().Object()
	obj.Value("report").Object().Value("passed").Boolean().True()
	obj.Value("report").Object().Value("num_missing").Number().Equal(0)

	// one file missing
	require.NoError(t, os.Remove(filepath.Join(dir, "scripts/background.js")))
	obj = e.POST("/run").
		Expect().
		Status(http.StatusUnprocessableEntity).JSON().Object()
	obj.Value("report").Object().Value("passed").Boolean().False()
	obj.Value("report").Object().Value("num_missing").Number().Equal(1)

	// per-request target override
	otherDir := scaffoldExtension(t)
	e.POST("/run").WithJSON(map[string]string{"TargetDirectory": otherDir}).
		Expect().
		Status(http.StatusOK).JSON().Object().
		Value("report").Object().Value("passed").Boolean().True()

	// bogus target
	e.POST("/run").WithJSON(map[string]string{"TargetDirectory": filepath.Join(dir, "nope")}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().ContainsKey("error")

	// malformed body
	e.POST("/run").WithText("{{").WithHeader("Content-Type", "application/json").
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().ContainsKey("error")
}

func TestGetChecklist(t *testing.T) {
	cfg, err := preflight.ReadConfig("")
	require.NoError(t, err)

	server := newServer(t, cfg)
	e := httpexpect.New(t, server.URL+"/preflight")

	obj := e.GET("/checklist").
		Expect().
		Status(http.StatusOK).JSON().Object()
	obj.Value("checklist").Object().Value("manifest").String().Equal("manifest.json")
	obj.Value("checklist").Object().Value("groups").Array().Length().Equal(4)
}

func TestMetricsEndpoint(t *testing.T) {
	dir := scaffoldExtension(t)
	cfg, err := preflight.ReadConfig("")
	require.NoError(t, err)
	cfg.TargetDirectory = dir

	server := newServer(t, cfg)
	e := httpexpect.New(t, server.URL)

	e.POST("/preflight/run").Expect().Status(http.StatusOK)

	body := e.GET("/metrics").
		Expect().
		Status(http.StatusOK).Body()
	body.Contains("preflight_runs_total")
	body.Contains("preflight_checks_total")
}
