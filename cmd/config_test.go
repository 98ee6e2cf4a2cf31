package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dt-pm-tools/ticket-transfer/internal/config"
)

func TestConfigCommandSavesAnswers(t *testing.T) {
	t.Setenv("TICKET_RESOLVED_DIR", "")
	t.Setenv("TICKET_CONVERTED_DIR", "")

	path := filepath.Join(t.TempDir(), "cfg.yaml")

	stdout, _, err := execute(t, "tickets/resolved\n\n", "config", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Resolved tickets directory [./resolved-tickets]: ")
	assert.Contains(t, stdout, "Configuration saved to "+path)

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{ResolvedDir: "tickets/resolved", ConvertedDir: "./converted"}, got)
}

func TestConfigCommandKeepsDefaultsOnEOF(t *testing.T) {
	t.Setenv("TICKET_RESOLVED_DIR", "")
	t.Setenv("TICKET_CONVERTED_DIR", "")

	path := filepath.Join(t.TempDir(), "cfg.yaml")

	_, _, err := execute(t, "", "config", "--config", path)
	require.NoError(t, err)

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{ResolvedDir: "./resolved-tickets", ConvertedDir: "./converted"}, got)
}
