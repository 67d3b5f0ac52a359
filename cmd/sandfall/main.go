package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

var (
	configFile string
	seed       int64
	width      int
	height     int
	runTicks   uint
	plot       bool
	sweepTicks uint
	seeds      int
	workers    int
	column     int
	benchTicks uint
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sandfall",
		Short:         "headless falling-sand runner",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed (0 keeps the config seed)")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "grid width (0 keeps the config width)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "grid height (0 keeps the config height)")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene and print material tallies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().UintVar(&runTicks, "ticks", 300, "ticks to advance")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot moves per tick")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure left/right spread of a water column across seeds",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().UintVar(&sweepTicks, "ticks", 200, "ticks per run")
	sweepCmd.Flags().IntVar(&seeds, "seeds", 64, "number of seeds")
	sweepCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	sweepCmd.Flags().IntVar(&column, "column", 40, "released water column height")

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "measure ticks per second",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().UintVar(&benchTicks, "ticks", 500, "ticks to time")

	rootCmd.AddCommand(scenesCmd, runCmd, sweepCmd, benchCmd)
	return rootCmd
}

// loadConfig applies the config file and then any explicit overrides.
func loadConfig(args []string) (*app.Config, error) {
	cfg := app.NewConfig()
	if configFile != "" {
		loaded, err := app.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Scene = args[0]
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	sim, err := cfg.NewSim()
	if err != nil {
		return fmt.Errorf("scene %q: %w", cfg.Scene, err)
	}

	activity := make([]float64, 0, runTicks)
	for i := uint(0); i < runTicks; i++ {
		sim.Step(1)
		activity = append(activity, float64(sim.Activity()))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scene %s  %dx%d  seed %d  ticks %d\n\n", sim.Name(), sim.Width(), sim.Height(), cfg.Seed, sim.Tick())
	writeTally(out, sim)

	if plot && len(activity) > 0 {
		fmt.Fprintln(out)
		graph := asciigraph.Plot(activity,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("moves per tick"),
		)
		fmt.Fprintln(out, graph)
	}
	return nil
}

func writeTally(out io.Writer, sim *sand.Simulation) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tCLASS\tCELLS")
	counts := sim.Counts()
	for _, m := range sand.Materials() {
		props, _ := sand.Lookup(m)
		fmt.Fprintf(w, "%s\t%s\t%d\n", props.Name, props.Class, counts[m])
	}
	w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	sc := sand.FromMap(cfg.SimMap())
	summary, err := sand.SpreadSweep(sc, column, sweepTicks, seeds, workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tOFFSET\tWIDTH\tCELLS")
	for _, r := range summary.Runs {
		fmt.Fprintf(w, "%d\t%+.3f\t%d\t%d\n", r.Seed, r.Offset, r.Width, r.Cells)
	}
	w.Flush()
	fmt.Fprintf(out, "\nruns %d  mean offset %+.4f  stddev %.4f  stderr %.4f\n",
		len(summary.Runs), summary.Mean, summary.StdDev, summary.StdErr)
	return nil
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	sim, err := cfg.NewSim()
	if err != nil {
		return fmt.Errorf("scene %q: %w", cfg.Scene, err)
	}
	start := time.Now()
	sim.Step(benchTicks)
	elapsed := time.Since(start)

	rate := 0.0
	if elapsed > 0 {
		rate = float64(benchTicks) / elapsed.Seconds()
	}
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tCELLS\tTICKS\tTIME\tTICKS/SEC")
	fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%.1f\n", sim.Name(), sim.Width()*sim.Height(), benchTicks, elapsed.Round(time.Microsecond), rate)
	w.Flush()
	return nil
}
