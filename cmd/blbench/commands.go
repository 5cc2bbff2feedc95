package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/blist/bench"
	"github.com/npillmayer/blist/bench/report"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var cfg bench.Config

var (
	htmlFile     string
	baselineFile string
	noColor      bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "blbench",
	Short: "Benchmarks for the blist containers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.CoreTracer = gologadapter.New()
		level := tracing.LevelError
		if verbose {
			level = tracing.LevelDebug
		}
		gtrace.CoreTracer.SetTraceLevel(level)
		tracing.Select("blist").SetTraceLevel(level)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, sc := range bench.Scenarios() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", sc.Name, sc.Doc)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [scenario ...]",
	Short: "Run scenarios, all of them if none are named",
	RunE:  runScenarios,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace progress")
	runCmd.Flags().IntVarP(&cfg.Size, "size", "n", bench.DefaultConfig.Size, "elements per scenario")
	runCmd.Flags().Uint64Var(&cfg.Seed, "seed", bench.DefaultConfig.Seed, "seed for random keys and positions")
	runCmd.Flags().IntVarP(&cfg.Rounds, "rounds", "r", bench.DefaultConfig.Rounds, "rounds per scenario, the fastest counts")
	runCmd.Flags().StringVar(&htmlFile, "html", "", "also write an HTML report to this file")
	runCmd.Flags().StringVar(&baselineFile, "baseline", "", "compare against an HTML report of an earlier run")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "do not color console output")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

func runScenarios(cmd *cobra.Command, names []string) error {
	console := report.NewConsole(cmd.OutOrStdout(), !noColor)
	if baselineFile != "" {
		f, err := os.Open(baselineFile)
		if err != nil {
			return err
		}
		base, err := report.ReadBaseline(f)
		f.Close()
		if err != nil {
			return err
		}
		console.SetBaseline(base)
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	runner := bench.NewRunner(cfg)
	sub, ok := runner.Subscribe()
	if !ok {
		return fmt.Errorf("cannot subscribe to benchmark results")
	}
	if err := runner.Start(ctx, names); err != nil {
		return err
	}
	results := console.Follow(sub)
	if htmlFile == "" {
		return nil
	}
	f, err := os.Create(htmlFile)
	if err != nil {
		return err
	}
	if err = report.HTML(f, "blist benchmarks", runner.Config(), results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
