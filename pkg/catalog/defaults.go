package catalog

// Archetype IDs.
const (
	ArchetypeBaseline        = "baseline"
	ArchetypeImproved        = "improved"
	ArchetypeHighPerformance = "high-performance"
	ArchetypeLowEnergy       = "low-energy"
	ArchetypeNetZero         = "net-zero"
	ArchetypeSmartNetZero    = "smart-net-zero"
)

// Technology IDs.
const (
	TechTemperatureSensors = "temperature-sensors"
	TechOccupancySensors   = "occupancy-sensors"
	TechSmartLighting      = "smart-lighting"
	TechAIHVAC             = "ai-hvac"
	TechEnergyManagement   = "energy-management"
	TechBuildingAutomation = "building-automation"
)

// Renewable IDs.
const (
	RenewableSolarPV      = "solar-pv"
	RenewableSolarThermal = "solar-thermal"
	RenewableGeothermal   = "geothermal"
	RenewableWind         = "wind"
)

var defaultArchetypes = []Archetype{
	{
		ID:                ArchetypeBaseline,
		Name:              "Baseline Building",
		EnergyConsumption: 180,
		ConstructionCost:  11760,
		Description:       "Standard construction with basic efficiency",
		Tier:              0,
		Color:             0xcccccc,
	},
	{
		ID:                ArchetypeImproved,
		Name:              "Improved Building",
		EnergyConsumption: 150,
		ConstructionCost:  15680,
		Description:       "Enhanced insulation and efficient windows",
		Tier:              1,
		Color:             0xaaaaff,
	},
	{
		ID:                ArchetypeHighPerformance,
		Name:              "High-Performance Building",
		EnergyConsumption: 120,
		ConstructionCost:  19600,
		Description:       "Advanced envelope and HVAC systems",
		Tier:              2,
		Color:             0x66aa66,
	},
	{
		ID:                ArchetypeLowEnergy,
		Name:              "Low-Energy Building",
		EnergyConsumption: 90,
		ConstructionCost:  23520,
		Description:       "Optimized design with smart controls",
		Tier:              3,
		Color:             0x6666aa,
	},
	{
		ID:                ArchetypeNetZero,
		Name:              "Net Zero Building",
		EnergyConsumption: 60,
		ConstructionCost:  27440,
		Description:       "Integrated renewables achieving net zero",
		Tier:              4,
		Color:             0x336633,
	},
	{
		ID:                ArchetypeSmartNetZero,
		Name:              "Smart Net Zero Building",
		EnergyConsumption: 40,
		ConstructionCost:  31360,
		Description:       "AI-optimized systems with energy surplus",
		Tier:              5,
		Color:             0x003366,
	},
}

var defaultTechnologies = []Technology{
	{
		ID:            TechTemperatureSensors,
		Name:          "Temperature Sensors",
		Cost:          4900,
		EnergySavings: 8,
		PaybackYears:  4,
		Description:   "IoT sensors for climate optimization",
	},
	{
		ID:            TechOccupancySensors,
		Name:          "Occupancy Sensors",
		Cost:          7840,
		EnergySavings: 15,
		PaybackYears:  3,
		Description:   "Automated lighting and HVAC control",
	},
	{
		ID:            TechSmartLighting,
		Name:          "Smart Lighting Control",
		Cost:          11760,
		EnergySavings: 25,
		PaybackYears:  3,
		Description:   "Adaptive lighting with daylight harvesting",
	},
	{
		ID:            TechAIHVAC,
		Name:          "AI HVAC Control",
		Cost:          490000,
		EnergySavings: 30,
		PaybackYears:  8,
		Description:   "Machine learning HVAC optimization",
	},
	{
		ID:            TechEnergyManagement,
		Name:          "Energy Management System",
		Cost:          294000,
		EnergySavings: 20,
		PaybackYears:  6,
		Description:   "Centralized energy monitoring and control",
	},
	{
		ID:            TechBuildingAutomation,
		Name:          "Building Automation System",
		Cost:          1470000,
		EnergySavings: 35,
		PaybackYears:  10,
		Description:   "Comprehensive building intelligence platform",
	},
}

var defaultRenewables = []Renewable{
	{
		ID:          RenewableSolarPV,
		Name:        "Solar PV",
		Generation:  120,
		Cost:        245000,
		Description: "Photovoltaic panels for electricity generation",
	},
	{
		ID:          RenewableSolarThermal,
		Name:        "Solar Thermal",
		Generation:  60,
		Cost:        147000,
		Description: "Solar collectors for hot water heating",
	},
	{
		ID:          RenewableGeothermal,
		Name:        "Geothermal",
		Generation:  90,
		Cost:        490000,
		Description: "Ground source heat pump system",
	},
	{
		ID:          RenewableWind,
		Name:        "Wind Power",
		Generation:  40,
		Cost:        196000,
		Description: "Small-scale wind turbines",
	},
}
