package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/greenbuild/internal/config"
	"github.com/ChicagoDave/greenbuild/internal/logging"
)

// app carries state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	debug  bool
	config *config.Config
	logger zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:          "greenbuild",
		Short:        "Green building design calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.debug {
				cfg.Logging.Level = "debug"
				cfg.Logging.Format = logging.FormatConsole
			}
			a.config = cfg
			a.logger = logging.New(logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(a.computeCmd())
	rootCmd.AddCommand(a.validateCmd())
	rootCmd.AddCommand(a.catalogCmd())
	rootCmd.AddCommand(a.solarCmd())
	rootCmd.AddCommand(a.exportCmd())
	rootCmd.AddCommand(a.serveCmd())

	return rootCmd
}

// overrides are the design flags shared by compute, validate and export.
type overrides struct {
	orientation  float64
	archetype    string
	floorArea    float64
	technologies []string
	renewables   []string
}

func (o *overrides) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&o.orientation, "orientation", 0, "building orientation in degrees clockwise from north")
	f.StringVar(&o.archetype, "archetype", "", "building archetype ID")
	f.Float64Var(&o.floorArea, "area", 0, "floor area in m²")
	f.StringSliceVar(&o.technologies, "tech", nil, "enable a smart technology, or disable it with a leading '-' (repeatable)")
	f.StringSliceVar(&o.renewables, "renewable", nil, "enable a renewable system, or disable it with a leading '-' (repeatable)")
}

func (a *app) computeCmd() *cobra.Command {
	var (
		o      overrides
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "compute [project-path]",
		Short: "Compute energy, carbon and cost metrics for a design",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompute(cmd, args, o, asJSON)
		},
	}
	o.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a design without printing metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args, o)
		},
	}
	o.register(cmd)
	return cmd
}

func (a *app) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List archetypes, technologies and renewable systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCatalog(cmd)
		},
	}
}

func (a *app) solarCmd() *cobra.Command {
	var orientation float64
	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Show passive solar gain for an orientation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolar(cmd, orientation)
		},
	}
	cmd.Flags().Float64VarP(&orientation, "orientation", "o", 0, "orientation in degrees clockwise from north")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		o      overrides
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Export a design summary as XLSX or PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, args, o, format, out)
		},
	}
	o.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "export format: xlsx or pdf")
	cmd.Flags().StringVar(&out, "out", "", "output file (default greenbuild-report.<format>)")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and live design session server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.config.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.config.Server.Port = port
			}
			return a.runServe(cmd)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides GREENBUILD_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides GREENBUILD_PORT)")
	return cmd
}
