package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGainCardinalValues(t *testing.T) {
	tests := []struct {
		orientation float64
		want        int
	}{
		{0, 110},
		{90, 320},
		{180, 450},
		{270, 380},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gain(tt.orientation), "Gain(%v)", tt.orientation)
	}
}

func TestGainDiagonals(t *testing.T) {
	tests := []struct {
		orientation float64
		want        int
	}{
		{45, 304},  // (110+320)·√½
		{135, 544}, // (450+320)·√½
		{225, 587}, // (450+380)·√½
		{315, 346}, // (110+380)·√½
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gain(tt.orientation), "Gain(%v)", tt.orientation)
	}
}

func TestGainNonNegative(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.25 {
		if g := Gain(deg); g < 0 {
			t.Fatalf("Gain(%v) = %d, want >= 0", deg, g)
		}
	}
}

func TestGainRearDirectionsVanish(t *testing.T) {
	// Facing exactly east, north/south/west weights are zero.
	assert.Equal(t, EastGain, RawGain(90))
	assert.Equal(t, WestGain, RawGain(270))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		orientation float64
		want        Direction
	}{
		{0, North},
		{44.9, North},
		{45, East},
		{134, East},
		{135, South},
		{224, South},
		{225, West},
		{314, West},
		{315, North},
		{359, North},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.orientation), "Label(%v)", tt.orientation)
	}
}

func TestIndicators(t *testing.T) {
	ind := Indicators(350)
	require.Len(t, ind, 4)

	assert.Equal(t, North, ind[0].Direction)
	assert.True(t, ind[0].Active, "350° should light the north indicator")
	assert.False(t, ind[1].Active)
	assert.False(t, ind[2].Active)
	assert.False(t, ind[3].Active)

	ind = Indicators(45)
	for _, i := range ind {
		assert.False(t, i.Active, "45° sits on a boundary and lights nothing (%s)", i.Direction)
	}

	ind = Indicators(180)
	assert.True(t, ind[2].Active)
	assert.Equal(t, SouthGain, ind[2].Gain)
}

func TestReferencesMatchGain(t *testing.T) {
	for _, ref := range References() {
		assert.Equal(t, int(ref.Gain), Gain(ref.Angle), "reference %s", ref.Direction)
	}
}
