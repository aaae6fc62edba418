package design

import (
	"math"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
)

// Default start state for a new design.
const (
	DefaultOrientation = 0.0
	DefaultFloorArea   = 1000.0
	DefaultArchetype   = catalog.ArchetypeBaseline
)

// Configuration is the complete set of user choices for one building design.
// It is a value: every mutation returns a new Configuration.
type Configuration struct {
	Orientation  float64 `yaml:"orientation" json:"orientation"` // degrees, [0,360)
	Archetype    string  `yaml:"archetype" json:"archetype"`
	FloorArea    float64 `yaml:"floor_area" json:"floor_area"` // m²
	Technologies IDSet   `yaml:"technologies" json:"technologies"`
	Renewables   IDSet   `yaml:"renewables" json:"renewables"`
}

// Default returns the initial design: a north-facing 1000 m² baseline
// building with nothing enabled.
func Default() Configuration {
	return Configuration{
		Orientation: DefaultOrientation,
		Archetype:   DefaultArchetype,
		FloorArea:   DefaultFloorArea,
	}
}

// WithOrientation returns c facing deg degrees, normalised into [0,360).
func (c Configuration) WithOrientation(deg float64) Configuration {
	c.Orientation = NormalizeOrientation(deg)
	return c
}

// WithArchetype returns c with a different archetype.
func (c Configuration) WithArchetype(id string) Configuration {
	c.Archetype = id
	return c
}

// WithFloorArea returns c with a different floor area.
func (c Configuration) WithFloorArea(m2 float64) Configuration {
	c.FloorArea = m2
	return c
}

// ToggleTechnology returns c with technology id switched on or off.
func (c Configuration) ToggleTechnology(id string) Configuration {
	c.Technologies = c.Technologies.Toggle(id)
	return c
}

// ToggleRenewable returns c with renewable id switched on or off.
func (c Configuration) ToggleRenewable(id string) Configuration {
	c.Renewables = c.Renewables.Toggle(id)
	return c
}

// Equal reports whether two configurations describe the same design.
func (c Configuration) Equal(other Configuration) bool {
	return c.Orientation == other.Orientation &&
		c.Archetype == other.Archetype &&
		c.FloorArea == other.FloorArea &&
		c.Technologies.Equal(other.Technologies) &&
		c.Renewables.Equal(other.Renewables)
}

// NormalizeOrientation wraps deg into [0,360). NaN and infinities are
// returned unchanged so validation can reject them.
func NormalizeOrientation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return deg
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 0 || deg == 360 {
		return 0
	}
	return deg
}
