package cost

import "math"

// PaybackStatus qualifies a payback period.
type PaybackStatus string

const (
	// PaybackNone means there is no upfront investment to recover.
	PaybackNone PaybackStatus = "none"
	// PaybackYears means Years holds a finite payback period.
	PaybackYears PaybackStatus = "years"
	// PaybackNever means there is upfront investment but no projected
	// annual savings, so it is never recovered.
	PaybackNever PaybackStatus = "never"
)

// Payback is the time to recover an upfront investment from annual savings.
// Years is zero unless Status is PaybackYears.
type Payback struct {
	Years  float64       `json:"years"`
	Status PaybackStatus `json:"status"`
}

// Applicable reports whether the payback period has a finite value.
func (p Payback) Applicable() bool {
	return p.Status == PaybackYears
}

// CappedReduction sums technology savings percentages and clamps the result
// to ReductionCapPct.
func CappedReduction(savingsPct ...float64) float64 {
	total := 0.0
	for _, pct := range savingsPct {
		total += pct
	}
	return math.Min(total, ReductionCapPct)
}

// EffectiveConsumption applies a percentage reduction to a base rate.
func EffectiveConsumption(base, reductionPct float64) float64 {
	return base * (1 - reductionPct/100)
}

// OperatingCost is the annual energy bill per m² for a consumption rate.
func OperatingCost(consumption float64) float64 {
	return consumption * TariffPerKWh
}

// CarbonEmissions is kg CO₂ per m² per year for a net energy balance.
// Surplus (negative net energy) emits nothing.
func CarbonEmissions(netEnergy float64) float64 {
	return math.Max(0, netEnergy) * CarbonFactorKgPerKWh
}

// TechnologySavings is the annual saving across the whole floor area from
// each technology's share of the uncapped base consumption.
func TechnologySavings(base, floorArea float64, savingsPct ...float64) float64 {
	total := 0.0
	for _, pct := range savingsPct {
		total += (base * pct / 100) * TariffPerKWh * floorArea
	}
	return total
}

// SurplusValue is the annual value of exported surplus energy across the
// floor area. Positive net energy yields zero.
func SurplusValue(netEnergy, floorArea float64) float64 {
	return math.Max(0, -netEnergy*TariffPerKWh*floorArea)
}

// UpfrontCost sums acquisition costs.
func UpfrontCost(costs ...float64) float64 {
	total := 0.0
	for _, c := range costs {
		total += c
	}
	return total
}

// ComputePayback divides the upfront investment by annual savings
// (technology savings plus surplus value) and rounds to one decimal.
func ComputePayback(upfront, techSavings, netEnergy, floorArea float64) Payback {
	if upfront <= 0 {
		return Payback{Status: PaybackNone}
	}

	annual := techSavings + SurplusValue(netEnergy, floorArea)
	if annual <= 0 {
		return Payback{Status: PaybackNever}
	}

	years := upfront / annual
	if math.IsInf(years, 0) || math.IsNaN(years) {
		return Payback{Status: PaybackNever}
	}
	return Payback{Years: math.Floor(years*10+0.5) / 10, Status: PaybackYears}
}
