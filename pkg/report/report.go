// Package report turns a computed design into a downloadable summary.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/cost"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/metrics"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownFormat is returned by Render for an unsupported export format.
const ErrUnknownFormat = constError("unknown export format")

// Format is an export file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Row is one labelled figure in the summary.
type Row struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// Selection is an enabled technology or renewable system.
type Selection struct {
	Kind string  `json:"kind"`
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Report is a point-in-time summary of one configuration.
type Report struct {
	ID            string               `json:"id"`
	GeneratedAt   time.Time            `json:"generated_at"`
	ArchetypeName string               `json:"archetype_name"`
	Configuration design.Configuration `json:"configuration"`
	Metrics       metrics.Metrics      `json:"metrics"`
	Rows          []Row                `json:"rows"`
	Selections    []Selection          `json:"selections"`
}

// Build assembles a report. Selections are listed in catalog order.
func Build(cat *catalog.Catalog, c design.Configuration, m metrics.Metrics) *Report {
	arch, _ := cat.Archetype(c.Archetype)

	r := &Report{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		ArchetypeName: arch.Name,
		Configuration: c,
		Metrics:       m,
	}

	r.Rows = []Row{
		{"Orientation", c.Orientation, "°", fmt.Sprintf("%g° (%s)", c.Orientation, m.OrientationLabel)},
		{"Floor Area", c.FloorArea, "m²", fmt.Sprintf("%g m²", c.FloorArea)},
		energyRow("Energy Consumption", m.EnergyConsumption),
		energyRow("Solar Gain", m.SolarGain),
		energyRow("Renewable Generation", m.RenewableGeneration),
		energyRow("Net Energy", m.NetEnergy),
		{"Energy Reduction", m.EnergyReductionPct, "%", fmt.Sprintf("%g%%", m.EnergyReductionPct)},
		{"Carbon Emissions", m.CarbonEmissions, "kg CO₂/m²/year", fmt.Sprintf("%g kg CO₂/m²/year", m.CarbonEmissions)},
		moneyRow("Construction Cost", m.ConstructionCost, "₹/m²"),
		moneyRow("Operating Cost", m.OperatingCost, "₹/m²/year"),
		moneyRow("Technology Savings", m.TechSavings, "₹/year"),
		moneyRow("Upfront Investment", m.UpfrontCost, "₹"),
		{"Payback Period", m.PaybackPeriod, "years", cost.FormatPayback(m.Payback())},
	}

	for _, t := range cat.Technologies() {
		if c.Technologies.Has(t.ID) {
			r.Selections = append(r.Selections, Selection{Kind: "technology", ID: t.ID, Name: t.Name, Cost: t.Cost})
		}
	}
	for _, rn := range cat.Renewables() {
		if c.Renewables.Has(rn.ID) {
			r.Selections = append(r.Selections, Selection{Kind: "renewable", ID: rn.ID, Name: rn.Name, Cost: rn.Cost})
		}
	}

	return r
}

func energyRow(label string, v float64) Row {
	return Row{label, v, "kWh/m²/year", fmt.Sprintf("%g kWh/m²/year", v)}
}

func moneyRow(label string, v float64, unit string) Row {
	return Row{label, v, unit, cost.FormatINR(v)}
}

// Render encodes the report in the given format.
func Render(r *Report, f Format) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return XLSX(r)
	case FormatPDF:
		return PDF(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatXLSX, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
