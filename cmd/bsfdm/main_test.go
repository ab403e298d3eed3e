// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = execute(args, &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestPrice(t *testing.T) {
	out, _, err := run(t, "price", "--scheme", "implicit", "--type", "put")
	require.NoError(t, err)
	assert.Contains(t, out, "european put implicit/thomas: 6.044157")
	assert.Contains(t, out, "M=101 N=257 w=0.5000 stable=true")
}

func TestPrice_ExplicitHasNoSolver(t *testing.T) {
	out, _, err := run(t, "price", "--scheme", "explicit", "--solver", "sor")
	require.NoError(t, err)
	assert.Contains(t, out, "explicit/none: 5.858468")
}

func TestPrice_BadFlag(t *testing.T) {
	_, _, err := run(t, "price", "--scheme", "adi")
	assert.Error(t, err)
}

func TestPrice_StrictRejectsUnstable(t *testing.T) {
	t.Setenv("BSFDM_GRID_DTAU", "0.002")
	_, _, err := run(t, "price", "--scheme", "explicit", "--strict")
	assert.Error(t, err)
}

func TestCompare_CSV(t *testing.T) {
	out, _, err := run(t, "compare", "--format", "csv", "--log-level", "warn")
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 23)
}

func TestCompare_TableWithMetrics(t *testing.T) {
	out, _, err := run(t, "compare", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "Crank-Nicolson (SOR) FDM")
	assert.Contains(t, out, `bsfdm_pricings_total{scheme=implicit,solver=sor,style=american} 2`)
	assert.Contains(t, out, `bsfdm_pricings_total{scheme=explicit,solver=none,style=european} 2`)
}

func TestCompare_UnstableExplicitIsNotApplicable(t *testing.T) {
	t.Setenv("BSFDM_GRID_DX", "0.01")
	t.Setenv("BSFDM_GRID_DTAU", "0.0003")
	t.Setenv("BSFDM_GRID_MEMORY", "rolling")

	out, _, err := run(t, "compare", "--format", "csv", "--log-level", "error")
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 23)
	assert.Equal(t, []string{"Explicit FDM", "European call", "", ""}, recs[3])
	assert.Equal(t, []string{"Explicit FDM", "European put", "", ""}, recs[4])
	assert.NotEmpty(t, recs[7][2], "implicit call value")

	out, _, err = run(t, "compare", "--log-level", "error")
	require.NoError(t, err)
	assert.Regexp(t, `Explicit FDM\s*\|European put\s*\|N\.A\.`, out)
}

func TestCompare_BadFormat(t *testing.T) {
	_, _, err := run(t, "compare", "--format", "xml")
	assert.Error(t, err)
}

func TestCompare_DumpConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("market:\n  volatility: 0.3\n"), 0o600))

	out, _, err := run(t, "--config", path, "compare", "--dump-config")
	require.NoError(t, err)
	assert.Contains(t, out, "volatility: 0.3")
	assert.Contains(t, out, "dtau: 0.00125")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsfdm.log")
	_, stderr, err := run(t, "--log-level", "debug", "--log-file", path, "price")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"M":"priced"`)
}

func TestLogFile_FailedRunIsFlushed(t *testing.T) {
	t.Setenv("BSFDM_GRID_DTAU", "0.002")
	path := filepath.Join(t.TempDir(), "bsfdm.log")
	_, _, err := run(t, "--log-file", path, "price", "--scheme", "explicit", "--strict")
	require.Error(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"M":"command failed"`)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "price")
	assert.Error(t, err)
}
