package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/automation"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/optim"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	store, cfg, err := newStore(cmd)
	if err != nil {
		return err
	}
	return viz.Run(store, viz.GetTheme(cfg.Theme))
}

func solve(cmd *cobra.Command, args []string) error {
	store, cfg, err := newStore(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	curves, err := store.Trajectories()
	if err != nil {
		return err
	}
	logger.Printf("trajectories in %s", time.Since(start))

	p := store.Params()
	fmt.Printf("%s  x0=%g y0=%g x_limit=%g step=%g\n\n", store.Problem().Equation(), p.X0, p.Y0, p.XLimit(), p.Step)
	if err := printCurves("x", curves); err != nil {
		return err
	}
	if plotGraph {
		printPlot(curves, analysis.ViewSolutions, cfg)
	}
	return nil
}

func showErrors(cmd *cobra.Command, args []string) error {
	store, cfg, err := newStore(cmd)
	if err != nil {
		return err
	}

	v := analysis.ViewGlobal
	if len(args) == 1 && args[0] == "local" {
		v = analysis.ViewLocal
	}

	var curves []analysis.Curve
	if v == analysis.ViewLocal {
		curves, err = store.LocalErrors()
	} else {
		curves, err = store.GlobalErrors()
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", strings.ToLower(v.Title()), store.Problem().Equation())
	if err := printCurves("x", curves); err != nil {
		return err
	}
	if plotGraph {
		printPlot(curves, v, cfg)
	}
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	store, cfg, err := newStore(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	curves, err := store.StepErrors()
	if err != nil {
		return err
	}
	logger.Printf("sweep in %s", time.Since(start))

	p := store.Params()
	fmt.Printf("error at x_limit=%g for 1/step from %g to %g by %g\n\n", p.XLimit(), p.S0, p.Sf, p.SStep)
	if len(curves) == 0 || curves[0].Series.Len() == 0 {
		fmt.Println("empty sweep (s0 > sf)")
		return nil
	}
	if err := printCurves("1/step", curves); err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tEXPECTED\tESTIMATED")
	for _, c := range curves {
		est := "n/a"
		if order, err := analysis.EstimateOrder(analysis.StepPoints(c.Series)); err == nil {
			est = fmt.Sprintf("%.3f", order)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", c.Method.Label(), c.Method.Order(), est)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plotGraph {
		printPlot(curves, analysis.ViewSteps, cfg)
	}
	return nil
}

func findTolerance(cmd *cobra.Command, args []string) error {
	store, _, err := newStore(cmd)
	if err != nil {
		return err
	}

	p := store.Params()
	choices, err := optim.FindStep(cmd.Context(), store.Problem(), p, tolerance, optim.Doubling(1, maxInverse))
	if err != nil {
		return err
	}

	fmt.Printf("coarsest step with error <= %g at x_limit=%g\n\n", tolerance, p.XLimit())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSTEP\tSTEPS\tERROR")
	for _, c := range choices {
		if !c.Found {
			fmt.Fprintf(w, "%s\tnot found (1/step <= %g)\t-\t%.3e\n", c.Method.Label(), maxInverse, c.Error)
			continue
		}
		steps := math.Ceil(p.GridSize * c.InverseStep)
		fmt.Fprintf(w, "%s\t%g\t%.0f\t%.3e\n", c.Method.Label(), c.Step(), steps, c.Error)
	}
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(cmd.Context(), scenario, experiment.NewRegistry(), os.Stdout)
	if err != nil {
		return err
	}

	if saveDir != "" {
		archive := storage.New(saveDir)
		for _, res := range results {
			id, err := archive.Save(res)
			if err != nil {
				return err
			}
			logger.Printf("archived %s", id)
		}
		fmt.Printf("archived %d runs in %s\n", len(results), saveDir)
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tPROBLEM\tSTEP\tMETHOD\tFINAL\tMAX\tRMS\tORDER")
	for _, res := range results {
		for _, s := range res.Summaries {
			fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%.4e\t%.4e\t%.4e\t%s\n",
				res.Name,
				res.Report.Problem,
				res.Report.Params.Step,
				s.Method.Label(),
				s.Metrics["final"],
				s.Metrics["max"],
				s.Metrics["rms"],
				formatOrder(s.Order),
			)
		}
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(runsDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("no runs in %s\n", runsDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPROBLEM\tSTEP\tMETHOD\tFINAL")
	for _, r := range runs {
		for _, s := range r.Summaries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%.4e\n",
				r.ID, r.Timestamp.Format(time.DateTime), r.Problem, r.Params.Step, s.Method, s.Metrics["final"])
		}
	}
	return w.Flush()
}

func exportResults(cmd *cobra.Command, args []string) error {
	path := args[0]

	var (
		f   export.Format
		err error
	)
	if format != "" {
		f, err = export.ParseFormat(format)
	} else {
		f, err = export.FormatFromPath(path)
	}
	if err != nil {
		return err
	}

	v, err := analysis.ParseView(viewName)
	if err != nil {
		return err
	}

	store, _, err := newStore(cmd)
	if err != nil {
		return err
	}
	report, err := store.Report()
	if err != nil {
		return err
	}

	opts := export.Options{View: v, Width: exportWidth, Height: exportHeight}
	if err := export.WriteFile(path, f, report, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s)\n", path, f)
	return nil
}

func saveConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPROBLEM\tCONSTANT\tX0\tY0\tGRID\tSTEP\tSWEEP")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		c := string(cfg.Constant.Mode)
		if cfg.Constant.Mode == problems.ConstantFixed {
			c = fmt.Sprintf("fixed=%g", cfg.Constant.Value)
		}
		p := cfg.Params
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%g\t%g..%g/%g\n",
			name, cfg.Problem, c, p.X0, p.Y0, p.GridSize, p.Step, p.S0, p.Sf, p.SStep)
	}
	return w.Flush()
}

func listMethods(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tORDER")
	for _, m := range integrators.Methods() {
		order := fmt.Sprintf("%d", m.Order())
		if m == integrators.Exact {
			order = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, m.Label(), order)
	}
	return w.Flush()
}

func listProblems(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEQUATION")
	for _, name := range registry.ListProblems() {
		p, err := registry.GetProblem(name, "", 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, p.Equation())
	}
	return w.Flush()
}

// printCurves lays the curves out side by side, one column per method. All
// curves share the x grid of the first one.
func printCurves(xLabel string, curves []analysis.Curve) error {
	if len(curves) == 0 {
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := strings.ToUpper(xLabel)
	for _, c := range curves {
		header += "\t" + strings.ToUpper(c.Method.String())
	}
	fmt.Fprintln(w, header+"\t")

	n := curves[0].Series.Len()
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%g", curves[0].Series.Xs[i])
		for _, c := range curves {
			if i < c.Series.Len() {
				row += fmt.Sprintf("\t%.6g", c.Series.Ys[i])
			} else {
				row += "\t-"
			}
		}
		fmt.Fprintln(w, row+"\t")
	}
	return w.Flush()
}

func printPlot(curves []analysis.Curve, v analysis.View, cfg *config.Config) {
	fmt.Println()
	fmt.Println(viz.Plot(curves, v, plotWidth, plotHeight, viz.GetTheme(cfg.Theme)))
}

func formatOrder(order float64) string {
	if math.IsNaN(order) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", order)
}
