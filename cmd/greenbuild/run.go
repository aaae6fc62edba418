package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/greenbuild/internal/server"
	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/metrics"
	"github.com/ChicagoDave/greenbuild/pkg/report"
	"github.com/ChicagoDave/greenbuild/pkg/validation"
)

var errInvalidDesign = errors.New("design has validation errors")

// loadDesign reads the project's design file, or starts from the default
// design when no project is given, then applies flag overrides.
func (a *app) loadDesign(cmd *cobra.Command, args []string, o overrides) (design.Configuration, error) {
	c := design.Default()
	if len(args) == 1 {
		loaded, err := design.LoadProject(args[0])
		if err != nil {
			return c, fmt.Errorf("loading design: %w", err)
		}
		c = loaded
		a.logger.Debug().Str("project", args[0]).Msg("design loaded")
	}

	f := cmd.Flags()
	if f.Changed("orientation") {
		c.Orientation = o.orientation
	}
	if f.Changed("archetype") {
		c = c.WithArchetype(o.archetype)
	}
	if f.Changed("area") {
		c = c.WithFloorArea(o.floorArea)
	}
	c.Technologies = applySelections(c.Technologies, o.technologies)
	c.Renewables = applySelections(c.Renewables, o.renewables)
	return c, nil
}

// applySelections enables each ID, or disables it when prefixed with '-'.
func applySelections(set design.IDSet, ids []string) design.IDSet {
	for _, id := range ids {
		if off, ok := strings.CutPrefix(id, "-"); ok {
			set = set.Without(off)
			continue
		}
		set = set.With(id)
	}
	return set
}

// resolve validates and computes, printing the report when it is invalid.
func (a *app) resolve(cmd *cobra.Command, c design.Configuration) (*metrics.Metrics, *validation.Report, error) {
	m, rep := metrics.Resolve(catalog.Default(), c)
	if m == nil {
		printValidationReport(cmd.OutOrStdout(), rep)
		return nil, rep, fmt.Errorf("%w: %w", errInvalidDesign, rep.Err())
	}
	a.logger.Debug().
		Str("archetype", c.Archetype).
		Float64("net_energy", m.NetEnergy).
		Msg("metrics computed")
	return m, rep, nil
}

func (a *app) runCompute(cmd *cobra.Command, args []string, o overrides, asJSON bool) error {
	c, err := a.loadDesign(cmd, args, o)
	if err != nil {
		return err
	}
	m, rep, err := a.resolve(cmd, c)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"configuration": c,
			"metrics":       m,
			"validation":    rep,
		})
	}

	printMetrics(w, catalog.Default(), c, *m)
	if len(rep.Warnings) > 0 || len(rep.Info) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, rep)
	}
	return nil
}

func (a *app) runValidate(cmd *cobra.Command, args []string, o overrides) error {
	c, err := a.loadDesign(cmd, args, o)
	if err != nil {
		return err
	}
	_, rep, err := a.resolve(cmd, c)
	if err != nil {
		return err
	}
	printValidationReport(cmd.OutOrStdout(), rep)
	return nil
}

func (a *app) runCatalog(cmd *cobra.Command) error {
	printCatalog(cmd.OutOrStdout(), catalog.Default())
	return nil
}

func (a *app) runSolar(cmd *cobra.Command, orientation float64) error {
	printSolar(cmd.OutOrStdout(), design.NormalizeOrientation(orientation))
	return nil
}

func (a *app) runExport(cmd *cobra.Command, args []string, o overrides, formatName, out string) error {
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	c, err := a.loadDesign(cmd, args, o)
	if err != nil {
		return err
	}
	m, _, err := a.resolve(cmd, c)
	if err != nil {
		return err
	}

	rep := report.Build(catalog.Default(), c, *m)
	data, err := report.Render(rep, format)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	if out == "" {
		out = "greenbuild-report." + string(format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	a.logger.Info().Str("report_id", rep.ID).Str("file", out).Msg("report exported")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(data))
	return nil
}

func (a *app) runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(a.config, a.logger, catalog.Default(), reg)
	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
