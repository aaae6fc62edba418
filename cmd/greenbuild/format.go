package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/cost"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/metrics"
	"github.com/ChicagoDave/greenbuild/pkg/solar"
	"github.com/ChicagoDave/greenbuild/pkg/validation"
)

const (
	colorHeader  = lipgloss.Color("#1FB8CD")
	colorError   = lipgloss.Color("#B4413C")
	colorWarning = lipgloss.Color("#D2BA4C")
	colorOK      = lipgloss.Color("#2E8B57")
	colorMuted   = lipgloss.Color("#888888")

	labelWidth = 24
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(labelWidth)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(colorOK).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

func printRow(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label), value)
}

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("ERRORS (%d):", len(r.Errors))))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("WARNINGS (%d):", len(r.Warnings))))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: %s (%s)\n", okStyle.Render("VALID"), r.Summary)
	} else {
		fmt.Fprintf(w, "Result: %s (%s)\n", errorStyle.Render("INVALID"), r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.Field != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", res.Field, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printMetrics(w io.Writer, cat *catalog.Catalog, c design.Configuration, m metrics.Metrics) {
	arch, _ := cat.Archetype(c.Archetype)

	fmt.Fprintln(w, titleStyle.Render("GREEN BUILDING DESIGN"))
	fmt.Fprintln(w)
	printRow(w, "Archetype:", arch.Name)
	printRow(w, "Orientation:", fmt.Sprintf("%g° (%s)", c.Orientation, m.OrientationLabel))
	printRow(w, "Floor area:", fmt.Sprintf("%g m²", c.FloorArea))
	printRow(w, "Technologies:", joinOrNone(c.Technologies.IDs()))
	printRow(w, "Renewables:", joinOrNone(c.Renewables.IDs()))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("ENERGY (kWh/m²/year)"))
	printRow(w, "Consumption:", fmt.Sprintf("%g", m.EnergyConsumption))
	printRow(w, "Solar gain:", fmt.Sprintf("%g", m.SolarGain))
	printRow(w, "Renewable generation:", fmt.Sprintf("%g", m.RenewableGeneration))
	net := fmt.Sprintf("%g", m.NetEnergy)
	if m.Surplus() {
		net = okStyle.Render(net + " (surplus)")
	}
	printRow(w, "Net energy:", net)
	printRow(w, "Reduction:", fmt.Sprintf("%g%%", m.EnergyReductionPct))
	printRow(w, "Carbon (kg CO₂/m²/yr):", fmt.Sprintf("%g", m.CarbonEmissions))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("COST"))
	printRow(w, "Construction (per m²):", cost.FormatINR(m.ConstructionCost))
	printRow(w, "Operating (per m²/yr):", cost.FormatINR(m.OperatingCost))
	printRow(w, "Technology savings/yr:", cost.FormatINR(m.TechSavings))
	printRow(w, "Upfront investment:", cost.FormatINR(m.UpfrontCost))
	payback := cost.FormatPayback(m.Payback())
	if !m.Payback().Applicable() {
		payback = mutedStyle.Render(payback)
	}
	printRow(w, "Payback period:", payback)
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, sectionStyle.Render("ARCHETYPES"))
	for _, a := range cat.Archetypes() {
		fmt.Fprintf(w, "  %-18s %-28s %4g kWh/m²/yr  %s/m²\n",
			a.ID, a.Name, a.EnergyConsumption, cost.FormatINR(a.ConstructionCost))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("TECHNOLOGIES"))
	for _, t := range cat.Technologies() {
		fmt.Fprintf(w, "  %-22s %-32s %3g%% savings  %s\n",
			t.ID, t.Name, t.EnergySavings, cost.FormatINR(t.Cost))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("RENEWABLES"))
	for _, r := range cat.Renewables() {
		fmt.Fprintf(w, "  %-16s %-28s %4g kWh/m²/yr  %s\n",
			r.ID, r.Name, r.Generation, cost.FormatINR(r.Cost))
	}
}

func printSolar(w io.Writer, orientation float64) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("SOLAR GAIN AT %g° (%s)", orientation, solar.Label(orientation))))
	printRow(w, "Gain:", fmt.Sprintf("%d kWh/m²/year", solar.Gain(orientation)))
	fmt.Fprintln(w)
	for _, ind := range solar.Indicators(orientation) {
		marker := mutedStyle.Render("·")
		if ind.Active {
			marker = okStyle.Render("●")
		}
		fmt.Fprintf(w, "  %s %-6s %4g°  %g kWh/m²/year\n", marker, ind.Direction, ind.Angle, ind.Gain)
	}
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(ids, ", ")
}
