package cost

// Unit rates used by the financial model.
const (
	TariffPerKWh         = 5.0  // currency per kWh
	CarbonFactorKgPerKWh = 0.5  // kg CO₂ per kWh of grid energy
	ReductionCapPct      = 80.0 // ceiling on combined technology savings, percentage points
)

// Display thresholds for FormatINR.
const (
	Crore    = 10_000_000.0
	Lakh     = 100_000.0
	Thousand = 1_000.0
)
