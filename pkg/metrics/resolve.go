package metrics

import (
	"fmt"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/cost"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/validation"
)

// Resolve validates a configuration and computes its metrics.
// Returns nil metrics when schema validation fails.
func Resolve(cat *catalog.Catalog, c design.Configuration) (*Metrics, *validation.Report) {
	report := validation.ValidateDesign(cat, c)
	if !report.Valid {
		return nil, report
	}

	m := Compute(cat, c)
	validateAnalytical(cat, c, m, report)

	return &m, report
}

// validateAnalytical reports findings about a computed design.
func validateAnalytical(cat *catalog.Catalog, c design.Configuration, m Metrics, report *validation.Report) {
	validateReductionCap(cat, c, report)
	validatePayback(m, report)
	validateEnergyBalance(m, report)
}

func validateReductionCap(cat *catalog.Catalog, c design.Configuration, report *validation.Report) {
	total := 0.0
	for _, id := range c.Technologies.IDs() {
		if t, ok := cat.Technology(id); ok {
			total += t.EnergySavings
		}
	}
	if total <= cost.ReductionCapPct {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("combined technology savings of %.0f%% are capped at %.0f%%", total, cost.ReductionCapPct),
		Field:       "technologies",
		ActualValue: total,
		Expected:    fmt.Sprintf("<= %.0f", cost.ReductionCapPct),
		Suggestions: []string{"Technologies beyond the cap add cost without reducing consumption further"},
	})
}

func validatePayback(m Metrics, report *validation.Report) {
	if m.PaybackStatus != cost.PaybackNever {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("upfront investment of %s is never recovered: no projected annual savings", cost.FormatINR(m.UpfrontCost)),
		Field:       "payback_period",
		ActualValue: m.UpfrontCost,
		Suggestions: []string{
			"Enable a smart technology to generate operating savings",
			"Add renewable capacity until the building runs a surplus",
		},
	})
}

func validateEnergyBalance(m Metrics, report *validation.Report) {
	if m.NetEnergy < 0 {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("design generates a surplus of %.0f kWh/m²/year", -m.NetEnergy),
			Field:       "net_energy",
			ActualValue: m.NetEnergy,
		})
	}
}
