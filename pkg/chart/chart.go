// Package chart builds the datasets behind the two dashboard charts: the
// energy-balance pie and the static solar-gain-by-orientation bar chart.
// Output mirrors the Chart.js data block so a front end can pass it through.
package chart

import (
	"github.com/ChicagoDave/greenbuild/pkg/metrics"
	"github.com/ChicagoDave/greenbuild/pkg/solar"
)

// Kind is the chart type.
type Kind string

const (
	KindPie Kind = "pie"
	KindBar Kind = "bar"
)

// Dataset is one series of values.
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth"`
}

// Chart is a complete chart description.
type Chart struct {
	Type     Kind      `json:"type"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	YAxis    string    `json:"y_axis,omitempty"`
}

// Charts holds both dashboard charts.
type Charts struct {
	Energy Chart `json:"energy"`
	Solar  Chart `json:"solar"`
}

// Build derives both charts from computed metrics.
func Build(m metrics.Metrics) Charts {
	return Charts{
		Energy: EnergyBalance(m),
		Solar:  SolarByOrientation(),
	}
}

// EnergyBalance is a pie over consumption, solar gain and renewable
// generation in kWh/m²/year.
func EnergyBalance(m metrics.Metrics) Chart {
	return Chart{
		Type:   KindPie,
		Title:  "Energy Balance (kWh/m²/year)",
		Labels: []string{"Building Consumption", "Solar Gain", "Renewable Generation"},
		Datasets: []Dataset{{
			Data:            []float64{m.EnergyConsumption, m.SolarGain, m.RenewableGeneration},
			BackgroundColor: []string{"#B4413C", "#FFC185", "#1FB8CD"},
			BorderColor:     "#fff",
			BorderWidth:     2,
		}},
	}
}

// SolarByOrientation is a bar chart of the four cardinal reference gains.
// It does not depend on the configuration.
func SolarByOrientation() Chart {
	refs := solar.References()
	labels := make([]string, len(refs))
	data := make([]float64, len(refs))
	for i, ref := range refs {
		labels[i] = string(ref.Direction)
		data[i] = ref.Gain
	}

	return Chart{
		Type:   KindBar,
		Title:  "Solar Gain by Orientation",
		Labels: labels,
		Datasets: []Dataset{{
			Label:           "Solar Gain (kWh/m²/year)",
			Data:            data,
			BackgroundColor: []string{"#5D878F", "#D2BA4C", "#FFC185", "#964325"},
			BorderWidth:     1,
		}},
		YAxis: "kWh/m²/year",
	}
}
