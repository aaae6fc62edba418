package catalog

// Archetype is a building construction standard with fixed baseline energy
// and cost rates.
type Archetype struct {
	ID                string  `yaml:"id" json:"id"`
	Name              string  `yaml:"name" json:"name"`
	EnergyConsumption float64 `yaml:"energy_consumption" json:"energy_consumption"` // kWh/m²/year
	ConstructionCost  float64 `yaml:"construction_cost" json:"construction_cost"`   // currency/m²
	Description       string  `yaml:"description" json:"description"`

	// Tier orders archetypes from least to most efficient. The scene builder
	// adds a roof slab from tier 2 and roof-mounted panels from tier 4.
	Tier  int `yaml:"tier" json:"tier"`
	Color int `yaml:"color" json:"color"`
}

// Technology is a smart building technology that reduces energy consumption.
type Technology struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Cost          float64 `yaml:"cost" json:"cost"`
	EnergySavings float64 `yaml:"energy_savings" json:"energy_savings"` // percentage points
	PaybackYears  float64 `yaml:"payback_years" json:"payback_years"`   // nominal, display only
	Description   string  `yaml:"description" json:"description"`
}

// Renewable is an on-site renewable energy system.
type Renewable struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Generation  float64 `yaml:"generation" json:"generation"` // kWh/m²/year
	Cost        float64 `yaml:"cost" json:"cost"`
	Description string  `yaml:"description" json:"description"`
}
