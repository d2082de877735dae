package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsoonaye/chimp/engine"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	before := engine.AspirationDelta
	cfg := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.Zero(t, cfg.HashMB)
	require.Equal(t, before, engine.AspirationDelta)
}

func TestLoadOverridesSearchTunables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chimp.toml")
	require.NoError(t, writeFile(path, `
hash_mb = 128

[search]
aspiration_delta = 75
razor_margin = 200
`))

	cfg := Load(path, nil)
	require.Equal(t, 128, cfg.HashMB)
	require.EqualValues(t, 75, engine.AspirationDelta)
	require.EqualValues(t, 200, engine.RazorMargin)
}

func TestLoadMalformedFileReportsAndKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chimp.toml")
	require.NoError(t, writeFile(path, "not = valid = toml"))

	var msg string
	cfg := Load(path, func(s string) { msg = s })
	require.NotEmpty(t, msg)
	require.Zero(t, cfg.HashMB)
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
