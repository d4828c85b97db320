package main

import (
	"fmt"
	"math"
	"os"

	"datalens/adapters/csvfile"
	"datalens/adapters/synthetic"
	"datalens/app"
	"datalens/domain/dataset"
	"datalens/internal"
	"datalens/internal/config"
	"datalens/internal/report"
	"datalens/ports"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datalens",
		Short: "Load a CSV, compute descriptive statistics, and render charts",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newAnalyzeCmd(),
		newChartsCmd(),
		newSampleCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment configuration and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	internal.DefaultLogger.SetLevel(internal.ParseLogLevel(cfg.LogLevel))
	return cfg, nil
}

func newRunCmd() *cobra.Command {
	var dataPath, outPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: load, analyze, render charts",
		Long: `Run load -> analyze -> visualize in sequence and print a summary.

If the data file is missing, a deterministic sample dataset is used instead.

Example: datalens run --data data/sales.csv --out plots`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dataPath == "" {
				dataPath = cfg.Data.Path
			}
			if outPath == "" {
				outPath = cfg.Output.Path
			}

			analyzer := app.NewDefaultAnalyzer()
			if _, err := analyzer.LoadData(dataPath); err != nil {
				return err
			}
			result, err := analyzer.Analyze()
			if err != nil {
				return err
			}
			if err := analyzer.CreateVisualizations(outPath, ports.RenderOptions{
				Style: cfg.Plot.Style,
				DPI:   cfg.Plot.DPI,
			}); err != nil {
				return err
			}

			fmt.Println(report.New(result).Summary())
			fmt.Printf("charts written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "CSV file to analyze (default from DATA_PATH)")
	cmd.Flags().StringVar(&outPath, "out", "", "chart output directory (default from OUTPUT_PATH)")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var dataPath string
	var preview bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the descriptive-statistics report for a CSV",
		Long: `Load a CSV (or the sample dataset) and print the Markdown report.

With --preview, numeric columns also get a terminal histogram.

Example: datalens analyze --data data/sales.csv --preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dataPath == "" {
				dataPath = cfg.Data.Path
			}

			analyzer := app.NewDefaultAnalyzer()
			ds, err := analyzer.LoadData(dataPath)
			if err != nil {
				return err
			}
			result, err := analyzer.Analyze()
			if err != nil {
				return err
			}

			fmt.Print(report.New(result).Markdown())

			if preview {
				for _, col := range ds.Columns {
					if col.Kind != dataset.KindNumeric {
						continue
					}
					observed := col.Observed()
					if len(observed) == 0 {
						continue
					}
					fmt.Println(asciigraph.Plot(binCounts(observed, 20),
						asciigraph.Height(10),
						asciigraph.Caption(col.Name)))
					fmt.Println()
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "CSV file to analyze (default from DATA_PATH)")
	cmd.Flags().BoolVar(&preview, "preview", false, "render terminal histograms for numeric columns")
	return cmd
}

func newChartsCmd() *cobra.Command {
	var dataPath, outPath, style string
	var dpi int

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Render one chart per column to PNG files",
		Long: `Render a histogram per numeric column and a bar chart per categorical
column into the output directory. File names are deterministic per column,
so re-running overwrites prior output.

Example: datalens charts --data data/sales.csv --out plots --style darkgrid --dpi 150`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dataPath == "" {
				dataPath = cfg.Data.Path
			}
			if outPath == "" {
				outPath = cfg.Output.Path
			}
			if style == "" {
				style = cfg.Plot.Style
			}
			if dpi == 0 {
				dpi = cfg.Plot.DPI
			}

			analyzer := app.NewDefaultAnalyzer()
			if _, err := analyzer.LoadData(dataPath); err != nil {
				return err
			}
			if err := analyzer.CreateVisualizations(outPath, ports.RenderOptions{
				Style: style,
				DPI:   dpi,
			}); err != nil {
				return err
			}
			fmt.Printf("charts written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "CSV file to analyze (default from DATA_PATH)")
	cmd.Flags().StringVar(&outPath, "out", "", "chart output directory (default from OUTPUT_PATH)")
	cmd.Flags().StringVar(&style, "style", "", "plot theme: default|darkgrid|minimal")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "output resolution in dots per inch")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the deterministic sample dataset as CSV",
		Long: `Generate the fixed-schema sample dataset (1000 rows: id, category,
value, recorded_at, active) and write it as CSV. Reloading the file
reproduces an equivalent dataset.

Example: datalens sample --out data/sample_data.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			ds := synthetic.NewGenerator().Generate()
			if err := csvfile.NewWriter().Write(outFile, ds); err != nil {
				return err
			}
			fmt.Printf("sample dataset written to %s\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "data/sample_data.csv", "destination CSV file")
	return cmd
}

func newReportCmd() *cobra.Command {
	var dataPath, mdFile, htmlFile, xlsxFile string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the analysis report as Markdown, HTML, or XLSX",
		Long: `Analyze a CSV (or the sample dataset) and write report artifacts.

Example: datalens report --data data/sales.csv --html report.html --xlsx report.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dataPath == "" {
				dataPath = cfg.Data.Path
			}
			if mdFile == "" && htmlFile == "" && xlsxFile == "" {
				return fmt.Errorf("nothing to write: pass --md, --html, or --xlsx")
			}

			analyzer := app.NewDefaultAnalyzer()
			if _, err := analyzer.LoadData(dataPath); err != nil {
				return err
			}
			result, err := analyzer.Analyze()
			if err != nil {
				return err
			}
			rep := report.New(result)

			if mdFile != "" {
				if err := os.WriteFile(mdFile, []byte(rep.Markdown()), 0o644); err != nil {
					return err
				}
				fmt.Printf("markdown report written to %s\n", mdFile)
			}
			if htmlFile != "" {
				if err := os.WriteFile(htmlFile, rep.HTML(), 0o644); err != nil {
					return err
				}
				fmt.Printf("html report written to %s\n", htmlFile)
			}
			if xlsxFile != "" {
				if err := rep.WriteWorkbook(xlsxFile); err != nil {
					return err
				}
				fmt.Printf("xlsx report written to %s\n", xlsxFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "CSV file to analyze (default from DATA_PATH)")
	cmd.Flags().StringVar(&mdFile, "md", "", "write the Markdown report to this file")
	cmd.Flags().StringVar(&htmlFile, "html", "", "write the HTML report to this file")
	cmd.Flags().StringVar(&xlsxFile, "xlsx", "", "write the XLSX workbook to this file")
	return cmd
}

// binCounts buckets observed values into equal-width bins for the terminal
// preview.
func binCounts(observed []float64, bins int) []float64 {
	min, max := observed[0], observed[0]
	for _, v := range observed {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	counts := make([]float64, bins)
	if min == max {
		counts[0] = float64(len(observed))
		return counts
	}

	width := (max - min) / float64(bins)
	for _, v := range observed {
		idx := int(math.Floor((v - min) / width))
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}
