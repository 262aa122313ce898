package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
search:
  iterations: 2000
  workers: 4
  policy: optimal
log:
  level: debug
  pretty: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 2000, cfg.Search.Iterations)
	require.Equal(t, 4, cfg.Search.Workers)
	require.Equal(t, "optimal", cfg.Search.Policy)
	require.True(t, cfg.Log.Pretty)

	// Untouched fields keep their defaults.
	require.Equal(t, Default().Search.RolloutDepth, cfg.Search.RolloutDepth)
	require.Equal(t, Default().Storage.MatchDir, cfg.Storage.MatchDir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero iterations", "search:\n  iterations: 0\n"},
		{"over cap", "search:\n  iterations: 100000\n"},
		{"unknown policy", "search:\n  policy: aggressive\n"},
		{"negative exploration", "search:\n  exploration: -1\n"},
		{"zero workers", "search:\n  workers: 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/rift.yaml")
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [not-a-map"))
	require.Error(t, err)
}
