package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHostKeyPathCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host_key")

	got, err := resolveHostKeyPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveHostKeyPathDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".arcade", "host_key"), got)
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}
