package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  starting_chips  = 5000
  bet_presets     = [25, 75]
  dealer_delay_ms = 250
  history_db      = "custom.db"
  log_level       = "debug"
  log_file        = "custom.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Table.StartingChips)
	assert.Equal(t, []int{25, 75}, cfg.Table.BetPresets)
	assert.Equal(t, 250, cfg.Table.DealerDelayMs)
	assert.Equal(t, "custom.db", cfg.Table.HistoryDB)
	assert.Equal(t, "debug", cfg.Table.LogLevel)
	assert.Equal(t, "custom.log", cfg.Table.LogFile)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  starting_chips = 2000
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Table.StartingChips)
	assert.Equal(t, Default().Table.BetPresets, cfg.Table.BetPresets)
	assert.Equal(t, Default().Table.DealerDelayMs, cfg.Table.DealerDelayMs)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative preset", "table {\n  bet_presets = [50, -100]\n}\n"},
		{"zero preset", "table {\n  bet_presets = [0]\n}\n"},
		{"negative delay", "table {\n  dealer_delay_ms = -1\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	_, err := Load(writeConfig(t, "table {\n  starting_chips = \n"))
	assert.Error(t, err)
}
