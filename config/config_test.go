package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqalign/seqalign-go/internal/align"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, align.DefaultScoring(), cfg.Scoring.Scoring())
	assert.Equal(t, 80, cfg.Report.MaxWidth)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqalign.yaml")
	body := []byte(`scoring:
  match: 3
  mismatch: -3
  gap: -2
report:
  max-width: 60
server:
  port: 9999
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, align.Scoring{Match: 3, Mismatch: -3, Gap: -2}, cfg.Scoring.Scoring())
	assert.Equal(t, 60, cfg.Report.MaxWidth)
	// File sets the port, the host keeps its default.
	assert.Equal(t, "localhost:9999", cfg.Server.Addr())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
