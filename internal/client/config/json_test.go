package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_url": "https://badges.example",
		"session_db": "/var/lib/bk/session.db",
		"log_level":  "debug",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://badges.example", cfg.ServerURL)
		assert.Equal(t, "/var/lib/bk/session.db", cfg.SessionDBPath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing keys keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "error"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{ServerURL: "http://defaults", SessionDBPath: "d.db", LogLevel: "info"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults", cfg.ServerURL)
		assert.Equal(t, "d.db", cfg.SessionDBPath)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerURL: "http://defaults"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults", cfg.ServerURL)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
