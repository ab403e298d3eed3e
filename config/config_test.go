// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bsfdm/config"
	"github.com/katalvlaran/bsfdm/fdm"
	"github.com/katalvlaran/bsfdm/grid"
	"github.com/katalvlaran/bsfdm/tridiag"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bsfdm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	c := cfg.Contract(fdm.Put, fdm.American)
	assert.Equal(t, 20.0, c.Spot)
	assert.Equal(t, 0.8, c.Volatility)
	assert.Equal(t, fdm.Put, c.Type)
	assert.Equal(t, fdm.American, c.Style)
	assert.Equal(t, fdm.Discretization{DX: 0.05, DTau: 0.00125}, cfg.Discretization())
	assert.Equal(t, tridiag.DefaultSOROptions(), cfg.SOROptions())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
market:
  volatility: 0.3
  rate: 0.08
grid:
  dx: 0.1
  memory: rolling
sor:
  max_iterations: 40
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Market.Volatility)
	assert.Equal(t, 0.08, cfg.Market.Rate)
	assert.Equal(t, 20.0, cfg.Market.Strike) // untouched default
	assert.Equal(t, 0.1, cfg.Grid.DX)
	assert.Equal(t, 40, cfg.SOR.MaxIterations)
	assert.Equal(t, "debug", cfg.Log.Level)

	mode, err := cfg.MemoryMode()
	require.NoError(t, err)
	assert.Equal(t, grid.RollingColumns, mode)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "market:\n  volatility: 0.3\n")
	t.Setenv("BSFDM_MARKET_VOLATILITY", "0.45")
	t.Setenv("BSFDM_GRID_DTAU", "0.002")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.45, cfg.Market.Volatility)
	assert.Equal(t, 0.002, cfg.Grid.DTau)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"zero volatility", "market:\n  volatility: 0\n", fdm.ErrBadVolatility},
		{"negative dx", "grid:\n  dx: -0.1\n", fdm.ErrBadStep},
		{"bad memory", "grid:\n  memory: sparse\n", grid.ErrBadMode},
		{"bad relaxation", "sor:\n  relaxation: 2.5\n", tridiag.ErrBadOptions},
		{"bad level", "log:\n  level: loud\n", config.ErrInvalidConfig},
		{"bad format", "log:\n  format: xml\n", config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Memory = "rolling"
	opts, err := cfg.EngineOptions()
	require.NoError(t, err)

	res, err := fdm.Solve(fdm.SchemeImplicit, cfg.Contract(fdm.Call, fdm.European), cfg.Discretization(), opts...)
	require.NoError(t, err)
	assert.Equal(t, grid.RollingColumns, res.Grid.Mode())
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Market.Volatility = 0.35
	cfg.Log.File = "/tmp/bsfdm.log"

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "volatility: 0.35")
	assert.Contains(t, buf.String(), "max_iterations: 15")

	loaded, err := config.Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
