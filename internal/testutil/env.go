// Package testutil provides helpers for testing shellver in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points every shellver config location at a fresh temporary
// directory so tests never read the user's real configuration. It returns
// the config file path, which does not exist yet.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config", "shellver")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		t.Fatalf("failed to create test directory %s: %v", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.lua")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("SHELLVER_CONFIG", configPath)
	t.Setenv("SHELLVER_DEBUG", "")

	return configPath
}

// WriteConfig writes a Lua config to the path returned by SetupTestEnv.
func WriteConfig(t *testing.T, path, luaCode string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(luaCode), 0o600); err != nil {
		t.Fatalf("failed to write config %s: %v", path, err)
	}
}
