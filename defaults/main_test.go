package defaults

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	TargetDirectory string `default:"." toml:"TargetDirectory" yaml:"TargetDirectory"`
	MaxChecks       int    `default:"20" toml:"MaxChecks" yaml:"MaxChecks"`
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFrom(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeTemp(t, "config.json", `{"TargetDirectory": "ext", "MaxChecks": 5}`)
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.NoError(t, err)
		require.Equal(t, "ext", cfg.TargetDirectory)
		require.Equal(t, 5, cfg.MaxChecks)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeTemp(t, "config.toml", "TargetDirectory = \"ext\"\nMaxChecks = 5\n")
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.NoError(t, err)
		require.Equal(t, "ext", cfg.TargetDirectory)
		require.Equal(t, 5, cfg.MaxChecks)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTemp(t, "config.yaml", "TargetDirectory: ext\nMaxChecks: 5\n")
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.NoError(t, err)
		require.Equal(t, "ext", cfg.TargetDirectory)
		require.Equal(t, 5, cfg.MaxChecks)
	})

	t.Run("defaults applied before decode", func(t *testing.T) {
		path := writeTemp(t, "config.json", `{"TargetDirectory": "ext"}`)
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.NoError(t, err)
		require.Equal(t, 20, cfg.MaxChecks)
	})

	t.Run("missing fallback leaves defaults", func(t *testing.T) {
		var cfg readerConfig
		err := ReadFrom("", "/nonexistent/config.json", &cfg)
		require.NoError(t, err)
		require.Equal(t, ".", cfg.TargetDirectory)
		require.Equal(t, 20, cfg.MaxChecks)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		path := writeTemp(t, "config.json", `{"Bogus": true}`)
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.Error(t, err)
	})

	t.Run("unknown fields rejected in yaml", func(t *testing.T) {
		path := writeTemp(t, "config.yaml", "Bogus: true\n")
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTemp(t, "config.ini", "TargetDirectory=ext")
		var cfg readerConfig
		err := ReadFrom(path, "", &cfg)
		require.Error(t, err)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		var cfg readerConfig
		err := ReadFrom("/nonexistent/config.json", "", &cfg)
		require.Error(t, err)
	})
}
