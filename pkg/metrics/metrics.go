package metrics

import (
	"math"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/cost"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/solar"
)

// Metrics holds every value derived from a configuration. Energy figures are
// kWh/m²/year, carbon is kg CO₂/m²/year, costs are in rupees.
type Metrics struct {
	EnergyConsumption   float64 `json:"energy_consumption"`
	SolarGain           float64 `json:"solar_gain"`
	RenewableGeneration float64 `json:"renewable_generation"`
	NetEnergy           float64 `json:"net_energy"`
	CarbonEmissions     float64 `json:"carbon_emissions"`
	ConstructionCost    float64 `json:"construction_cost"` // per m²
	OperatingCost       float64 `json:"operating_cost"`    // per m² per year
	TechSavings         float64 `json:"tech_savings"`      // per year, whole floor area
	PaybackPeriod       float64 `json:"payback_period"`    // years, one decimal

	PaybackStatus      cost.PaybackStatus `json:"payback_status"`
	EnergyReductionPct float64            `json:"energy_reduction_pct"`
	UpfrontCost        float64            `json:"upfront_cost"`
	OrientationLabel   solar.Direction    `json:"orientation_label"`
}

// Payback returns the payback period with its status.
func (m Metrics) Payback() cost.Payback {
	return cost.Payback{Years: m.PaybackPeriod, Status: m.PaybackStatus}
}

// Surplus reports whether the building generates more than it consumes.
func (m Metrics) Surplus() bool {
	return m.NetEnergy <= 0
}

// Compute derives all metrics for a configuration. It is pure and
// deterministic. IDs missing from the catalog contribute nothing; use
// Resolve to reject them first.
func Compute(cat *catalog.Catalog, c design.Configuration) Metrics {
	arch, _ := cat.Archetype(c.Archetype)
	base := arch.EnergyConsumption

	// 1. Technology reduction and effective consumption
	var savingsPct, techCosts []float64
	for _, id := range c.Technologies.IDs() {
		t, ok := cat.Technology(id)
		if !ok {
			continue
		}
		savingsPct = append(savingsPct, t.EnergySavings)
		techCosts = append(techCosts, t.Cost)
	}
	reduction := cost.CappedReduction(savingsPct...)
	effective := cost.EffectiveConsumption(base, reduction)

	// 2. Passive solar gain
	solarGain := solar.Gain(c.Orientation)

	// 3. Renewable generation
	generation := 0.0
	var renewableCosts []float64
	for _, id := range c.Renewables.IDs() {
		r, ok := cat.Renewable(id)
		if !ok {
			continue
		}
		generation += r.Generation
		renewableCosts = append(renewableCosts, r.Cost)
	}

	// 4. Energy balance and carbon
	net := effective - float64(solarGain) - generation
	carbon := cost.CarbonEmissions(net)

	// 5. Financials
	techSavings := cost.TechnologySavings(base, c.FloorArea, savingsPct...)
	upfront := cost.UpfrontCost(append(techCosts, renewableCosts...)...)
	payback := cost.ComputePayback(upfront, techSavings, net, c.FloorArea)

	return Metrics{
		EnergyConsumption:   roundHalfUp(effective),
		SolarGain:           float64(solarGain),
		RenewableGeneration: roundHalfUp(generation),
		NetEnergy:           roundHalfUp(net),
		CarbonEmissions:     roundHalfUp(carbon),
		ConstructionCost:    arch.ConstructionCost,
		OperatingCost:       roundHalfUp(cost.OperatingCost(effective)),
		TechSavings:         roundHalfUp(techSavings),
		PaybackPeriod:       payback.Years,
		PaybackStatus:       payback.Status,
		EnergyReductionPct:  reduction,
		UpfrontCost:         upfront,
		OrientationLabel:    solar.Label(c.Orientation),
	}
}

// roundHalfUp rounds to the nearest integer with halves going toward +∞,
// so -404.5 becomes -404 rather than -405.
func roundHalfUp(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0
	}
	return r
}
