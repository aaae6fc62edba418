package design

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProject(t *testing.T) {
	c, err := LoadProject("../../examples/south-solar")
	require.NoError(t, err)

	assert.Equal(t, 180.0, c.Orientation)
	assert.Equal(t, "baseline", c.Archetype)
	assert.Equal(t, 1000.0, c.FloorArea)
	assert.Equal(t, []string{"temperature-sensors"}, c.Technologies.IDs())
	assert.Equal(t, []string{"solar-pv"}, c.Renewables.IDs())
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading design file")
}

func TestParseFillsDefaults(t *testing.T) {
	c, err := Parse([]byte("orientation: 90\n"))
	require.NoError(t, err)

	assert.Equal(t, 90.0, c.Orientation)
	assert.Equal(t, DefaultArchetype, c.Archetype)
	assert.Equal(t, DefaultFloorArea, c.FloorArea)
	assert.Zero(t, c.Technologies.Len())
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte("  \n"))
	assert.ErrorIs(t, err, ErrEmptyDesign)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("technologies: {a: b}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing design YAML")
}

func TestParseDuplicateIDsCollapse(t *testing.T) {
	c, err := Parse([]byte("technologies: [ai-hvac, ai-hvac, smart-lighting]\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Technologies.Len())
}

func TestMarshalRoundTrip(t *testing.T) {
	orig := Default().WithOrientation(135).ToggleTechnology("ai-hvac").ToggleRenewable("wind")

	data, err := Marshal(orig)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DesignFile)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, orig.Equal(loaded))
}

func TestConfigurationJSON(t *testing.T) {
	var c Configuration
	err := json.Unmarshal([]byte(`{"orientation":45,"archetype":"net-zero","floor_area":250,"technologies":["ai-hvac"],"renewables":null}`), &c)
	require.NoError(t, err)

	assert.Equal(t, "net-zero", c.Archetype)
	assert.True(t, c.Technologies.Has("ai-hvac"))
	assert.Zero(t, c.Renewables.Len())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"orientation":45,"archetype":"net-zero","floor_area":250,"technologies":["ai-hvac"],"renewables":[]}`, string(out))
}

func TestMutationsDoNotAlterReceiver(t *testing.T) {
	base := Default()

	next := base.WithOrientation(270).
		WithArchetype("improved").
		WithFloorArea(500).
		ToggleTechnology("occupancy-sensors").
		ToggleRenewable("geothermal")

	assert.True(t, base.Equal(Default()), "receiver must be unchanged")
	assert.Equal(t, 270.0, next.Orientation)
	assert.Equal(t, "improved", next.Archetype)
	assert.Equal(t, 500.0, next.FloorArea)
	assert.True(t, next.Technologies.Has("occupancy-sensors"))
	assert.True(t, next.Renewables.Has("geothermal"))
}

func TestToggleTwiceRestores(t *testing.T) {
	base := Default().ToggleTechnology("smart-lighting")
	round := base.ToggleTechnology("ai-hvac").ToggleTechnology("ai-hvac")
	assert.True(t, base.Equal(round))
}

func TestIDSetSharingIsSafe(t *testing.T) {
	a := NewIDSet("x")
	b := a.With("y")
	c := b.Without("x")

	assert.Equal(t, []string{"x"}, a.IDs())
	assert.Equal(t, []string{"x", "y"}, b.IDs())
	assert.Equal(t, []string{"y"}, c.IDs())
}

func TestNormalizeOrientation(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-720, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeOrientation(tt.in), "NormalizeOrientation(%v)", tt.in)
	}
	assert.True(t, math.IsNaN(NormalizeOrientation(math.NaN())))
}
