package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep a stray .env in the working directory from leaking in.
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func examplePath(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "examples", name))
	require.NoError(t, err)
	return p
}

func TestComputeDefault(t *testing.T) {
	out, err := execute(t, "compute")
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline")
	assert.Contains(t, out, "North")
	assert.Contains(t, out, "₹11,760")
	assert.Contains(t, out, "N/A")
}

func TestComputeProjectJSON(t *testing.T) {
	out, err := execute(t, "compute", examplePath(t, "south-solar"), "--json")
	require.NoError(t, err)

	var got struct {
		Metrics struct {
			NetEnergy     float64 `json:"net_energy"`
			SolarGain     float64 `json:"solar_gain"`
			PaybackPeriod float64 `json:"payback_period"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, -404.0, got.Metrics.NetEnergy)
	assert.Equal(t, 450.0, got.Metrics.SolarGain)
	assert.Equal(t, 0.1, got.Metrics.PaybackPeriod)
}

func TestComputeFlagOverrides(t *testing.T) {
	out, err := execute(t, "compute", "--json",
		"--orientation", "180", "--tech", "temperature-sensors", "--renewable", "solar-pv")
	require.NoError(t, err)
	assert.Contains(t, out, `"net_energy": -404`)
}

func TestComputeFlagDisablesLoadedSelection(t *testing.T) {
	out, err := execute(t, "compute", examplePath(t, "south-solar"), "--json",
		"--tech=-temperature-sensors", "--renewable=-solar-pv", "--renewable", "wind")
	require.NoError(t, err)

	var got struct {
		Configuration struct {
			Technologies []string `json:"technologies"`
			Renewables   []string `json:"renewables"`
		} `json:"configuration"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Configuration.Technologies)
	assert.Equal(t, []string{"wind"}, got.Configuration.Renewables)
}

func TestComputeInvalid(t *testing.T) {
	out, err := execute(t, "compute", "--archetype", "castle")
	assert.ErrorIs(t, err, errInvalidDesign)
	assert.Contains(t, out, "INVALID")
	assert.Contains(t, out, "unknown archetype")
}

func TestComputeMissingProject(t *testing.T) {
	_, err := execute(t, "compute", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "loading design")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", examplePath(t, "baseline"))
	require.NoError(t, err)
	assert.Contains(t, out, "VALID")

	_, err = execute(t, "validate", "--orientation", "400")
	assert.ErrorIs(t, err, errInvalidDesign)
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	for _, id := range []string{"smart-net-zero", "ai-hvac", "geothermal"} {
		assert.Contains(t, out, id)
	}
}

func TestSolar(t *testing.T) {
	out, err := execute(t, "solar", "-o", "180")
	require.NoError(t, err)
	assert.Contains(t, out, "450 kWh/m²/year")
	assert.Contains(t, out, "(South)")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "summary.xlsx")
	_, err := execute(t, "export", examplePath(t, "south-solar"), "--out", xlsx)
	require.NoError(t, err)

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"summary", "selections"}, f.GetSheetList())

	pdf := filepath.Join(dir, "summary.pdf")
	_, err = execute(t, "export", "--format", "pdf", "--out", pdf)
	require.NoError(t, err)
	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	_, err = execute(t, "export", "--format", "docx")
	assert.ErrorContains(t, err, "unknown export format")
}
