package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Config sources
	configFile string
	preset     string
	verbose    bool
	// Problem
	problemName  string
	constantMode string
	constant     float64
	// Run parameters
	x0, y0, gridSize, step float64
	s0, sf, sstep          float64
	// Output
	theme      string
	plotGraph  bool
	plotWidth  int
	plotHeight int
	// Export
	format       string
	viewName     string
	exportWidth  int
	exportHeight int
	// Tolerance search
	tolerance  float64
	maxInverse float64
	// Archive
	saveDir string
	runsDir string
)

var logger = log.New(io.Discard, "odelab: ", 0)

// main registers the commands, starts the interactive app when no
// subcommand is given and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "numerical methods lab for first-order ODEs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetOutput(os.Stderr)
			}
		},
		RunE:         runInteractive,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log configuration and timings to stderr")
	pf.StringVar(&problemName, "problem", "practicum", "problem to solve")
	pf.StringVar(&constantMode, "constant-mode", "fit", "exact solution constant: fit or fixed")
	pf.Float64Var(&constant, "constant", 1, "exact solution constant in fixed mode")
	pf.Float64Var(&x0, "x0", 1, "initial x")
	pf.Float64Var(&y0, "y0", 2, "initial y")
	pf.Float64Var(&gridSize, "grid-size", 9, "length of the interval, x runs to x0 + grid-size")
	pf.Float64Var(&step, "step", 1, "step size")
	pf.Float64Var(&s0, "s0", 0.5, "first inverse step of the sweep")
	pf.Float64Var(&sf, "sf", 5, "last inverse step of the sweep")
	pf.Float64Var(&sstep, "sstep", 0.5, "sweep increment")
	pf.StringVar(&theme, "theme", "", "color theme")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "print every method's trajectory",
		Args:  cobra.NoArgs,
		RunE:  solve,
	}
	addPlotFlags(solveCmd)

	errorsCmd := &cobra.Command{
		Use:       "errors [global|local]",
		Short:     "print per-point global or local errors",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"global", "local"},
		RunE:      showErrors,
	}
	addPlotFlags(errorsCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "error at the x limit against 1/step, with estimated order",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	addPlotFlags(sweepCmd)

	toleranceCmd := &cobra.Command{
		Use:   "tolerance",
		Short: "find the coarsest step meeting an error tolerance",
		Args:  cobra.NoArgs,
		RunE:  findTolerance,
	}
	toleranceCmd.Flags().Float64Var(&tolerance, "tol", 1e-3, "error tolerance at the x limit")
	toleranceCmd.Flags().Float64Var(&maxInverse, "max-inverse", 4096, "largest inverse step to try")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a yaml scenario and summarize each run",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&saveDir, "save", "", "archive every run under this directory")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list archived runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	runsCmd.Flags().StringVar(&runsDir, "dir", "runs", "archive directory")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write results as csv, json, svg, png or html",
		Args:  cobra.ExactArgs(1),
		RunE:  exportResults,
	}
	exportCmd.Flags().StringVar(&format, "format", "", "output format (default from file extension)")
	exportCmd.Flags().StringVar(&viewName, "view", "solutions", "view for svg and png: solutions, global, local, steps")
	exportCmd.Flags().IntVar(&exportWidth, "width", 800, "chart width")
	exportCmd.Flags().IntVar(&exportHeight, "height", 500, "chart height")

	saveCmd := &cobra.Command{
		Use:   "save-config [file]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  saveConfig,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list integration methods",
		Args:  cobra.NoArgs,
		RunE:  listMethods,
	}

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list problems",
		Args:  cobra.NoArgs,
		RunE:  listProblems,
	}

	rootCmd.AddCommand(solveCmd, errorsCmd, sweepCmd, toleranceCmd, batchCmd, runsCmd, exportCmd, saveCmd, presetsCmd, methodsCmd, problemsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&plotGraph, "plot", false, "draw an ascii chart below the table")
	cmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")
	cmd.Flags().IntVar(&plotHeight, "height", 15, "chart height")
}
