package main

import (
	"fmt"
	"os"
	"strings"

	"datalens/app"
	"datalens/internal"
	"datalens/internal/config"
	"datalens/internal/report"
	"datalens/ports"
)

// Runs the default pipeline: load -> analyze -> visualize, with paths and
// chart options taken from the environment. The cobra CLI under cmd/cli
// exposes the individual steps.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	internal.DefaultLogger.SetLevel(internal.ParseLogLevel(cfg.LogLevel))
	log := internal.DefaultLogger

	log.Info("starting data analysis")
	analyzer := app.NewDefaultAnalyzer()

	ds, err := analyzer.LoadData(cfg.Data.Path)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze()
	if err != nil {
		return err
	}

	rep := report.New(result)
	fmt.Println("=== ANALYSIS RESULTS ===")
	fmt.Printf("Shape: %d rows x %d columns\n", result.Rows, result.Cols)
	fmt.Printf("Columns: %s\n", strings.Join(ds.Names(), ", "))
	for _, name := range result.ColumnOrder {
		fmt.Printf("  %-16s %-12s missing=%d\n", name, result.Kinds[name], result.Missing[name])
	}
	fmt.Println(rep.Summary())

	if err := analyzer.CreateVisualizations(cfg.Output.Path, ports.RenderOptions{
		Style: cfg.Plot.Style,
		DPI:   cfg.Plot.DPI,
	}); err != nil {
		return err
	}

	log.Info("analysis completed")
	return nil
}
